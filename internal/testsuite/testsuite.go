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

// Package testsuite runs perft test suites from EPD like files.
// Each line contains a fen and a list of expected perft node counts:
//  <fen> ;D1 <nodes> ;D2 <nodes> ...
// Lines starting with # are ignored.
//
// Positions run concurrently with a bounded number of workers. Each
// worker owns its Position and Perft instance - the pre-computed
// attack tables are immutable and shared without synchronisation.
package testsuite

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/movegen"
	"github.com/frankkopp/GambitGo/internal/position"
	"github.com/frankkopp/GambitGo/internal/util"
)

var out = message.NewPrinter(language.German)

// DepthResult is one expected and actual perft result for a depth
type DepthResult struct {
	Depth    int
	Expected uint64
	Actual   uint64
	Passed   bool
}

// PerftTest is one test suite entry with a position and the expected
// perft results per depth
type PerftTest struct {
	Fen     string
	Results []*DepthResult
	Passed  bool
	RunTime time.Duration
}

// TestSuite is a data structure to run a series of perft tests
// on positions read from a file
type TestSuite struct {
	FilePath string
	MaxDepth int
	Tests    []*PerftTest

	log *logging.Logger
}

// NewTestSuite creates a new instance of a TestSuite from the given
// file. maxDepth limits the depth of the run (0 = no limit).
func NewTestSuite(filePath string, maxDepth int) (*TestSuite, error) {
	path, err := util.ResolveFile(filePath)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ts := &TestSuite{
		FilePath: filePath,
		MaxDepth: maxDepth,
		log:      myLogging.GetLog(),
	}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		test, err := parseLine(scanner.Text(), maxDepth)
		if err != nil {
			ts.log.Warningf("Skipping line %d: %s", lineNo, err)
			continue
		}
		if test != nil {
			ts.Tests = append(ts.Tests, test)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ts, nil
}

// RunTests runs all tests of the suite and reports the results.
// Returns the number of passed and failed tests.
func (ts *TestSuite) RunTests() (passed int, failed int) {
	if len(ts.Tests) == 0 {
		out.Printf("Test suite %s is empty\n", ts.FilePath)
		return 0, 0
	}

	out.Printf("Running perft test suite %s with %d positions\n", ts.FilePath, len(ts.Tests))
	start := time.Now()

	// bounded number of concurrent workers - each worker has its own
	// position so no synchronisation on board state is needed
	sem := semaphore.NewWeighted(int64(util.Max(1, runtime.NumCPU()-1)))
	ctx := context.Background()
	var wg sync.WaitGroup

	for _, test := range ts.Tests {
		if err := sem.Acquire(ctx, 1); err != nil {
			ts.log.Errorf("Failed to acquire semaphore: %s", err)
			break
		}
		wg.Add(1)
		go func(t *PerftTest) {
			defer sem.Release(1)
			defer wg.Done()
			runPerftTest(t)
		}(test)
	}
	wg.Wait()
	elapsed := time.Since(start)

	for _, test := range ts.Tests {
		result := "PASSED"
		if !test.Passed {
			result = "FAILED"
			failed++
		} else {
			passed++
		}
		out.Printf("%-6s %-75s (%s)\n", result, test.Fen, test.RunTime)
		for _, dr := range test.Results {
			if !dr.Passed {
				out.Printf("       D%-2d expected %d got %d\n", dr.Depth, dr.Expected, dr.Actual)
			}
		}
	}
	out.Printf("Test suite finished in %s - %d passed, %d failed\n", elapsed, passed, failed)
	return passed, failed
}

// runPerftTest runs all depths of a single test entry
func runPerftTest(t *PerftTest) {
	start := time.Now()
	t.Passed = true
	perft := movegen.NewPerft()
	for _, dr := range t.Results {
		p, err := position.NewPositionFen(t.Fen)
		if err != nil {
			t.Passed = false
			return
		}
		dr.Actual = perft.Perft(p, dr.Depth)
		dr.Passed = dr.Actual == dr.Expected
		if !dr.Passed {
			t.Passed = false
		}
	}
	t.RunTime = time.Since(start)
}

// parseLine parses one line of a perft test suite file.
// Returns nil for empty and comment lines.
func parseLine(line string, maxDepth int) (*PerftTest, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	parts := strings.Split(line, ";")
	if len(parts) < 2 {
		return nil, fmt.Errorf("no depth entries in line: %s", line)
	}
	test := &PerftTest{Fen: strings.TrimSpace(parts[0])}
	if _, err := position.NewPositionFen(test.Fen); err != nil {
		return nil, err
	}
	for _, entry := range parts[1:] {
		fields := strings.Fields(strings.TrimSpace(entry))
		if len(fields) != 2 || !strings.HasPrefix(fields[0], "D") {
			return nil, fmt.Errorf("invalid depth entry %q in line: %s", entry, line)
		}
		depth, err := strconv.Atoi(fields[0][1:])
		if err != nil {
			return nil, err
		}
		nodes, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, err
		}
		if maxDepth > 0 && depth > maxDepth {
			continue
		}
		test.Results = append(test.Results, &DepthResult{Depth: depth, Expected: nodes})
	}
	if len(test.Results) == 0 {
		return nil, fmt.Errorf("no usable depth entries in line: %s", line)
	}
	return test, nil
}
