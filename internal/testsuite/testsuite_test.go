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

package testsuite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSuiteContent = `# standard perft positions
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;D1 20 ;D2 400 ;D3 8902
8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1 ;D1 14 ;D2 191 ;D3 2812

r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1 ;D1 48 ;D2 2039
`

func writeSuiteFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "perftsuite.epd")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTestSuite(t *testing.T) {
	assert := assert.New(t)

	ts, err := NewTestSuite(writeSuiteFile(t, testSuiteContent), 0)
	assert.NoError(err)
	assert.Equal(3, len(ts.Tests))
	assert.Equal(3, len(ts.Tests[0].Results))
	assert.Equal(uint64(8_902), ts.Tests[0].Results[2].Expected)
}

func TestReadTestSuiteDepthLimit(t *testing.T) {
	assert := assert.New(t)

	ts, err := NewTestSuite(writeSuiteFile(t, testSuiteContent), 2)
	assert.NoError(err)
	assert.Equal(3, len(ts.Tests))
	// depth entries above the limit are skipped
	assert.Equal(2, len(ts.Tests[0].Results))
}

func TestRunTestSuite(t *testing.T) {
	assert := assert.New(t)

	ts, err := NewTestSuite(writeSuiteFile(t, testSuiteContent), 2)
	assert.NoError(err)

	passed, failed := ts.RunTests()
	assert.Equal(3, passed)
	assert.Equal(0, failed)
	for _, test := range ts.Tests {
		assert.True(test.Passed)
	}
}

func TestRunTestSuiteFailure(t *testing.T) {
	assert := assert.New(t)

	// wrong expectation must be reported as failed
	content := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;D1 21\n"
	ts, err := NewTestSuite(writeSuiteFile(t, content), 0)
	assert.NoError(err)

	passed, failed := ts.RunTests()
	assert.Equal(0, passed)
	assert.Equal(1, failed)
}

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	// comments and empty lines are skipped
	test, err := parseLine("# comment", 0)
	assert.NoError(err)
	assert.Nil(test)
	test, err = parseLine("   ", 0)
	assert.NoError(err)
	assert.Nil(test)

	// invalid fen
	_, err = parseLine("not-a-fen ;D1 20", 0)
	assert.Error(err)

	// missing depth entries
	_, err = parseLine("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 0)
	assert.Error(err)

	// invalid depth entry
	_, err = parseLine("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;X1 20", 0)
	assert.Error(err)
}

func TestMissingSuiteFile(t *testing.T) {
	assert := assert.New(t)

	_, err := NewTestSuite(filepath.Join(t.TempDir(), "missing.epd"), 0)
	assert.Error(err)
}
