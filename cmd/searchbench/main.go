package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"ferz/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 6, "search depth in plies")
	maxTimeFlag := flag.Float64("maxtime", 30.0, "per-search time budget in seconds")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	cacheFlag := flag.Bool("cache", true, "enable the transposition table")
	bucketsFlag := flag.Int("order_buckets", 5, "move-ordering bucket count")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	engine.UseCache = *cacheFlag
	engine.OrderBuckets = *bucketsFlag

	fen := *fenFlag
	if fen == "" {
		fen = dragontoothmg.Startpos
	}

	for run := 1; run <= *repeatFlag; run++ {
		board := dragontoothmg.ParseFen(fen)
		engine.ResetTables()

		start := time.Now()
		move, nodes := engine.BestMove(&board, *maxTimeFlag, *depthFlag)
		elapsed := time.Since(start)

		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("run %d: bestmove %s nodes %d time %.3fs nps %.0f\n",
			run, move.String(), nodes, elapsed.Seconds(), nps)
	}
}
