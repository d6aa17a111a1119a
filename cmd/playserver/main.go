package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ferz/engine"
	"ferz/server"
)

func main() {
	addr := flag.String("addr", ":9999", "listen address")
	maxTime := flag.Float64("max_time", 1.0, "engine budget per move, seconds")
	depth := flag.Int("depth", 20, "engine depth limit, plies")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	engine.MaxTime = *maxTime
	engine.SearchDepth = *depth

	if err := server.Serve(*addr); err != nil {
		log.Fatal().Err(err).Msg("play server failed")
	}
}
