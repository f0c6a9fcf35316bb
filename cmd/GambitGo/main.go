/*
 * GambitGo - a bitboard chess move generation core in GO
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// GambitGo command line driver. Exposes the operations of the move
// generation core: set a position by fen, print the board, list legal
// moves, apply moves, run perft and divide, search a best move and
// evaluate the position.
package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	gambitgo "github.com/frankkopp/GambitGo"
	"github.com/frankkopp/GambitGo/internal/config"
	"github.com/frankkopp/GambitGo/internal/evaluator"
	"github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/movegen"
	"github.com/frankkopp/GambitGo/internal/position"
	"github.com/frankkopp/GambitGo/internal/search"
	"github.com/frankkopp/GambitGo/internal/tablecache"
	"github.com/frankkopp/GambitGo/internal/testsuite"
	"github.com/frankkopp/GambitGo/internal/types"
)

var out = message.NewPrinter(language.German)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen for the position to operate on")
	printBoard := flag.Bool("print", false, "prints the board of the given position")
	listMoves := flag.Bool("moves", false, "lists all legal moves of the given position")
	makeMoves := flag.String("makemoves", "", "space separated moves in coordinate notation (e.g. \"e2e4 e7e5\")\nto apply to the position before other operations")
	perftDepth := flag.Int("perft", 0, "starts perft on the position with the given depth")
	divideDepth := flag.Int("divide", 0, "starts a divide perft on the position with the given depth")
	searchDepth := flag.Int("search", 0, "searches the position with the given fixed depth")
	evalFlag := flag.Bool("eval", false, "evaluates the position")
	testSuite := flag.String("testsuite", "", "path to a file containing perft tests (fen ;D1 <nodes> ;D2 <nodes> ...)")
	testDepth := flag.Int("testdepth", 0, "max depth limit for the perft test suite")
	cacheTables := flag.Bool("tablecache", false, "writes the attack tables to the cache file and verifies them")
	profileFlag := flag.Bool("profile", false, "runs the cpu profiler and writes the profile to the working directory")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// set config file
	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	config.ConfFile = *configFile

	// read config file
	config.Setup()

	// set log level from cmd line options overwriting config file or defaults
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting log level of standard log - required as most packages
	// include the standard logger as a global var and therefore even
	// before main() is called.
	log := logging.GetLog()

	// attack table cache
	if *cacheTables || config.Settings.Cache.UseTableCache {
		cacheFile := config.Settings.Cache.TableCacheFile
		if err := tablecache.Save(cacheFile); err != nil {
			log.Errorf("Could not write attack table cache: %s", err)
			os.Exit(1)
		}
		identical, err := tablecache.Verify(cacheFile)
		if err != nil || !identical {
			log.Errorf("Attack table cache verification failed: %s", err)
			os.Exit(1)
		}
		out.Printf("Attack tables cached and verified: %s\n", cacheFile)
		if *cacheTables {
			return
		}
	}

	// execute test suite if the command line option is given
	if *testSuite != "" {
		ts, err := testsuite.NewTestSuite(*testSuite, *testDepth)
		if err != nil {
			out.Printf("Could not read test suite: %s\n", err)
			os.Exit(1)
		}
		_, failed := ts.RunTests()
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	// create the position
	p, err := position.NewPositionFen(*fen)
	if err != nil {
		out.Printf("Invalid fen: %s\n", err)
		os.Exit(1)
	}

	// apply given moves - an illegal move is rejected and the
	// position is left unchanged
	if *makeMoves != "" {
		mg := movegen.NewMoveGen()
		for _, moveString := range strings.Fields(*makeMoves) {
			move := mg.GetMoveFromUci(p, moveString)
			if move == types.MoveNone {
				out.Printf("Illegal move %s on position %s\n", moveString, p.StringFen())
				os.Exit(1)
			}
			p.DoMove(move)
		}
	}

	// perft
	if *perftDepth > 0 {
		var perft movegen.Perft
		perft.StartPerft(p.StringFen(), *perftDepth)
		return
	}

	// divide
	if *divideDepth > 0 {
		var perft movegen.Perft
		if _, err := perft.Divide(p.StringFen(), *divideDepth); err != nil {
			out.Printf("Divide error: %s\n", err)
			os.Exit(1)
		}
		return
	}

	// search
	if *searchDepth != 0 {
		depth := *searchDepth
		if depth < 0 {
			depth = config.Settings.Search.DefaultDepth
		}
		s := search.NewSearch()
		result := s.StartSearch(p, depth)
		out.Printf("Best move: %s (%s)\n", result.BestMove.StringUci(), result.Value.String())
		return
	}

	// evaluate
	if *evalFlag {
		e := evaluator.NewEvaluator()
		out.Printf("Evaluation: %s\n", e.Evaluate(p).String())
		return
	}

	// legal moves
	if *listMoves {
		mg := movegen.NewMoveGen()
		moves := mg.GenerateLegalMoves(p)
		out.Printf("Legal moves (%d): %s\n", moves.Len(), moves.StringUci())
		return
	}

	// print board as default action
	if *printBoard || flag.NFlag() == 0 {
		out.Printf("%s\n", p.String())
	}
}

func printVersionInfo() {
	out.Printf("GambitGo %s\n", gambitgo.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
