package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"

	"ferz/engine"
)

type goParams struct {
	wtime    int
	btime    int
	winc     int
	binc     int
	depth    int
	movetime int
	infinite bool
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name Ferz")
			fmt.Fprintln(out, "id author ferz")
			fmt.Fprintln(out, "option name Cache type check default true")
			fmt.Fprintln(out, "option name Killers type check default true")
			fmt.Fprintln(out, "option name CacheSize type spin default 16777216 min 1 max 268435456")
			fmt.Fprintln(out, "option name IDFS type check default true")
			fmt.Fprintln(out, "option name OrderBuckets type spin default 5 min 1 max 64")
			fmt.Fprintln(out, "option name Depth type spin default 20 min 1 max 64")
			fmt.Fprintln(out, "option name MaxTime type string default 1.0")
			fmt.Fprintln(out, "option name ScaleTime type string default 1.0")
			fmt.Fprintln(out, "option name OrderRich type check default false")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
			engine.ResetTables()
		case "setoption":
			if err := applyOption(tokens[1:]); err != nil {
				fmt.Fprintln(out, "info string", err)
			}
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			board = next
		case "go":
			params := parseGo(tokens[1:])
			budget, depth := searchBudget(&board, params)
			move, nodes := engine.BestMove(&board, budget, depth)
			log.Debug().Uint64("nodes", nodes).Msg("go-finished")
			if move == engine.EmptyMove {
				fmt.Fprintln(out, "bestmove 0000")
			} else {
				fmt.Fprintln(out, "bestmove", move.String())
			}
		case "stop":
			// The search runs synchronously inside "go"; by the time stop
			// arrives there is nothing left to interrupt.
		case "quit":
			return
		}
	}
}

// parsePosition handles "startpos [moves ...]" and "fen <fields> [moves ...]".
func parsePosition(tokens []string) (dragontoothmg.Board, error) {
	var board dragontoothmg.Board
	if len(tokens) == 0 {
		return board, fmt.Errorf("malformed position command")
	}
	rest := tokens
	switch tokens[0] {
	case "startpos":
		board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		rest = tokens[1:]
	case "fen":
		fields := tokens[1:]
		end := 0
		for end < len(fields) && fields[end] != "moves" {
			end++
		}
		board = dragontoothmg.ParseFen(strings.Join(fields[:end], " "))
		rest = fields[end:]
	default:
		return board, fmt.Errorf("unknown position %q", tokens[0])
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, lan := range rest[1:] {
			move, err := dragontoothmg.ParseMove(lan)
			if err != nil {
				return board, fmt.Errorf("bad move %q: %v", lan, err)
			}
			board.Apply(move)
		}
	}
	return board, nil
}

func parseGo(tokens []string) goParams {
	var params goParams
	for i := 0; i < len(tokens); i++ {
		readInt := func() int {
			if i+1 < len(tokens) {
				i++
				v, _ := strconv.Atoi(tokens[i])
				return v
			}
			return 0
		}
		switch strings.ToLower(tokens[i]) {
		case "wtime":
			params.wtime = readInt()
		case "btime":
			params.btime = readInt()
		case "winc":
			params.winc = readInt()
		case "binc":
			params.binc = readInt()
		case "depth":
			params.depth = readInt()
		case "movetime":
			params.movetime = readInt()
		case "infinite":
			params.infinite = true
		}
	}
	return params
}

// searchBudget picks the per-move time budget and depth limit for a go
// command. "infinite" searches for a day; otherwise a supplied movetime
// wins; otherwise the side to move's clock
// feeds the time manager, with white's share scaled by ScaleTime; with no
// clock at all the configured fallback applies.
func searchBudget(b *dragontoothmg.Board, params goParams) (seconds float64, depth int) {
	depth = engine.SearchDepth
	if params.depth > 0 {
		depth = params.depth
	}
	switch {
	case params.infinite:
		seconds = 86400
	case params.movetime > 0:
		seconds = float64(params.movetime) / 1000
	case b.Wtomove && params.wtime > 0:
		seconds = engine.ManageTime(params.wtime, params.winc) * engine.ScaleTime
	case !b.Wtomove && params.btime > 0:
		seconds = engine.ManageTime(params.btime, params.binc)
	default:
		seconds = engine.MaxTime
	}
	return seconds, depth
}

func applyOption(tokens []string) error {
	var name, value string
	field := ""
	for _, tok := range tokens {
		switch strings.ToLower(tok) {
		case "name":
			field = "name"
		case "value":
			field = "value"
		default:
			switch field {
			case "name":
				if name != "" {
					name += " "
				}
				name += tok
			case "value":
				if value != "" {
					value += " "
				}
				value += tok
			}
		}
	}
	switch strings.ToLower(name) {
	case "cache":
		engine.UseCache = value == "true"
	case "killers":
		engine.UseKillers = value == "true"
	case "cachesize":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad CacheSize %q", value)
		}
		engine.CacheSize = n
	case "idfs":
		engine.UseIterativeDeepening = value == "true"
	case "orderbuckets":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad OrderBuckets %q", value)
		}
		engine.OrderBuckets = n
	case "depth":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad Depth %q", value)
		}
		engine.SearchDepth = n
	case "maxtime":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("bad MaxTime %q", value)
		}
		engine.MaxTime = f
	case "scaletime":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("bad ScaleTime %q", value)
		}
		engine.ScaleTime = f
	case "orderrich":
		engine.UseRichOrdering = value == "true"
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}
