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
	"errors"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/GambitGo/internal/position"
)

var out = message.NewPrinter(language.German)

// Perft is a class to test move generation of the chess engine
// by counting the leaf nodes of the move tree to a given depth.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started
// in a goroutine to stop the currently running
// perft test
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs perft on the given position for each depth from
// start to end depth.
// If this has been started in a go routine it can be stopped via Stop()
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs a perft on the given position to the given depth
// and reports the results.
// If this has been started in a go routine it can be stopped via Stop()
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false

	// set 1 as minimum
	if depth <= 0 {
		depth = 1
	}

	// prepare
	perft.resetCounter()
	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Perft error: %s\n", err)
		return
	}
	// one move generator for each depth to not overwrite the
	// reused move lists during recursion
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	// the actual perft call
	start := time.Now()
	result := perft.perft(depth, p, &mgList)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// Perft runs a perft on the given position to the given depth and
// returns the number of leaf nodes without reporting.
func (perft *Perft) Perft(p *position.Position, depth int) uint64 {
	perft.stopFlag = false
	perft.resetCounter()
	if depth <= 0 {
		return 1
	}
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}
	nodes := perft.perft(depth, p, &mgList)
	perft.Nodes = nodes
	return nodes
}

// Divide runs a perft on the position and reports the number of leaf
// nodes for each root move separately. Returns the total node count.
// A depth below 1 is an argument error.
func (perft *Perft) Divide(fen string, depth int) (uint64, error) {
	if depth < 1 {
		return 0, errors.New("divide requires a depth of at least 1")
	}
	perft.stopFlag = false
	perft.resetCounter()

	p, err := position.NewPositionFen(fen)
	if err != nil {
		return 0, err
	}
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	out.Printf("Performing DIVIDE for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	totalNodes := uint64(0)
	moveCount := 0
	moves := mgList[depth].GeneratePseudoLegalMoves(p)
	for _, move := range *moves {
		p.DoMove(move)
		if p.WasLegalMove() {
			moveCount++
			nodes := uint64(1)
			if depth > 1 {
				nodes = perft.perft(depth-1, p, &mgList)
			}
			totalNodes += nodes
			out.Printf("%-6s: %d\n", move.StringUci(), nodes)
		}
		p.UndoMove()
	}

	out.Printf("-----------------------------------------\n")
	out.Printf("Moves: %d  Nodes: %d\n\n", moveCount, totalNodes)
	perft.Nodes = totalNodes
	return totalNodes, nil
}

// perft is the recursive part of the perft test. Legality of the
// pseudo legal moves is checked after making the move via king
// safety which is the idiomatic bitboard perft loop.
func (perft *Perft) perft(depth int, p *position.Position, mgListPtr *[]*Movegen) uint64 {
	totalNodes := uint64(0)
	movegens := *mgListPtr
	// moves to search recursively
	movesPtr := movegens[depth].GeneratePseudoLegalMoves(p)
	for _, move := range *movesPtr {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			p.DoMove(move)
			if p.WasLegalMove() {
				totalNodes += perft.perft(depth-1, p, mgListPtr)
			}
			p.UndoMove()
		} else {
			p.DoMove(move)
			if p.WasLegalMove() {
				totalNodes++
				if move.IsEnPassant() {
					perft.EnpassantCounter++
				}
				if move.IsCapture() {
					perft.CaptureCounter++
				}
				if move.IsCastling() {
					perft.CastleCounter++
				}
				if move.IsPromotion() {
					perft.PromotionCounter++
				}
				if p.HasCheck() {
					perft.CheckCounter++
				}
			}
			p.UndoMove()
		}
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
