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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/GambitGo/internal/position"
)

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

//noinspection GoImportUsedAsName
func TestStandardPerft(t *testing.T) {
	assert := assert.New(t)

	var results = []uint64{1, 20, 400, 8_902, 197_281}
	perft := NewPerft()
	for depth := 1; depth < len(results); depth++ {
		p := position.NewPosition()
		assert.Equal(results[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}

//noinspection GoImportUsedAsName
func TestKiwipetePerft(t *testing.T) {
	assert := assert.New(t)

	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	var results = []uint64{1, 48, 2_039, 97_862}
	perft := NewPerft()
	for depth := 1; depth < len(results); depth++ {
		p := position.NewPosition(fen)
		assert.Equal(results[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}

//noinspection GoImportUsedAsName
func TestPos3Perft(t *testing.T) {
	assert := assert.New(t)

	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	var results = []uint64{1, 14, 191, 2_812, 43_238}
	perft := NewPerft()
	for depth := 1; depth < len(results); depth++ {
		p := position.NewPosition(fen)
		assert.Equal(results[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}

//noinspection GoImportUsedAsName
func TestPos4Perft(t *testing.T) {
	assert := assert.New(t)

	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	var results = []uint64{1, 6, 264, 9_467, 422_333}
	perft := NewPerft()
	for depth := 1; depth < len(results); depth++ {
		p := position.NewPosition(fen)
		assert.Equal(results[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}

//noinspection GoImportUsedAsName
func TestPos5Perft(t *testing.T) {
	assert := assert.New(t)

	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	var results = []uint64{1, 44, 1_486, 62_379}
	perft := NewPerft()
	for depth := 1; depth < len(results); depth++ {
		p := position.NewPosition(fen)
		assert.Equal(results[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}

//noinspection GoImportUsedAsName
func TestPos6Perft(t *testing.T) {
	assert := assert.New(t)

	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	var results = []uint64{1, 46, 2_079, 89_890}
	perft := NewPerft()
	for depth := 1; depth < len(results); depth++ {
		p := position.NewPosition(fen)
		assert.Equal(results[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}

// perft counters on depth 2 of the start position after 1. e4 are
// not interesting - use a position with captures, ep, castling and
// promotions to check the counters
func TestPerftCounters(t *testing.T) {
	assert := assert.New(t)

	// kiwipete depth 2: 2039 nodes
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	perft := NewPerft()
	p := position.NewPosition(fen)
	nodes := perft.Perft(p, 2)
	assert.Equal(uint64(2_039), nodes)
	assert.Equal(uint64(351), perft.CaptureCounter)
	assert.Equal(uint64(1), perft.EnpassantCounter)
	assert.Equal(uint64(91), perft.CastleCounter)
	assert.Equal(uint64(3), perft.CheckCounter)
}

func TestDivide(t *testing.T) {
	assert := assert.New(t)

	perft := NewPerft()

	// divide on the start position depth 2 - 20 root moves with 20
	// nodes each
	nodes, err := perft.Divide(position.StartFen, 2)
	assert.NoError(err)
	assert.Equal(uint64(400), nodes)

	// depth below 1 is an argument error
	_, err = perft.Divide(position.StartFen, 0)
	assert.Error(err)

	// invalid fen is rejected
	_, err = perft.Divide("invalid", 2)
	assert.Error(err)
}
