package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ferz/engine"
)

func main() {
	cache := flag.Bool("cache", true, "enable the transposition table")
	killers := flag.Bool("killers", true, "enable the killer-move heuristic")
	cacheSize := flag.Int("cache_size", 1<<24, "transposition table capacity in entries")
	idfs := flag.Bool("idfs", true, "enable iterative deepening")
	orderBuckets := flag.Int("order_buckets", 5, "number of buckets for fast move ordering")
	depth := flag.Int("depth", 20, "maximum depth to search per move")
	maxTime := flag.Float64("max_time", 1.0, "maximum time to search per move, seconds")
	scaleTime := flag.Float64("scale_time", 1.0, "scale the time budget given to white")
	orderRich := flag.Bool("order_rich", false, "use the killer-aware move scorer")
	debug := flag.Bool("debug", false, "verbose search logging on stderr")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	engine.UseCache = *cache
	engine.UseKillers = *killers
	engine.CacheSize = *cacheSize
	engine.UseIterativeDeepening = *idfs
	engine.OrderBuckets = *orderBuckets
	engine.SearchDepth = *depth
	engine.MaxTime = *maxTime
	engine.ScaleTime = *scaleTime
	engine.UseRichOrdering = *orderRich

	uciLoop(os.Stdin, os.Stdout)
}
