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

// Package search implements a fixed depth negamax search with
// alpha-beta pruning on top of the pseudo legal move generator.
// There is no move ordering, no quiescence search and no
// transposition table - the search serves to validate the move
// generation core against the evaluation.
package search

import (
	"fmt"
	"time"

	"github.com/op/go-logging"

	"github.com/frankkopp/GambitGo/internal/evaluator"
	myLogging "github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/movegen"
	"github.com/frankkopp/GambitGo/internal/position"
	. "github.com/frankkopp/GambitGo/internal/types"
)

var log *logging.Logger

// Search represents the data structure for a fixed depth search.
// Create a new instance with NewSearch()
type Search struct {
	log       *logging.Logger
	mgList    []*movegen.Movegen
	evaluator *evaluator.Evaluator

	nodes    uint64
	bestMove Move
}

// Result stores the result of a search
type Result struct {
	BestMove   Move
	Value      Value
	Depth      int
	Nodes      uint64
	SearchTime time.Duration
}

// String returns a string representation of the search result
func (r *Result) String() string {
	return fmt.Sprintf("best move %s value %s depth %d nodes %d time %s",
		r.BestMove.StringUci(), r.Value.String(), r.Depth, r.Nodes, r.SearchTime)
}

// NewSearch creates a new Search instance
func NewSearch() *Search {
	if log == nil {
		log = myLogging.GetLog()
	}
	s := &Search{
		log:       log,
		mgList:    make([]*movegen.Movegen, MaxDepth),
		evaluator: evaluator.NewEvaluator(),
	}
	for i := 0; i < MaxDepth; i++ {
		s.mgList[i] = movegen.NewMoveGen()
	}
	return s
}

// StartSearch searches the given position to a fixed depth and returns
// the best move found and its value. The position is unchanged after
// the search.
func (s *Search) StartSearch(p *position.Position, depth int) Result {
	if depth < 1 {
		depth = 1
	}
	if depth >= MaxDepth {
		depth = MaxDepth - 1
	}

	s.nodes = 0
	s.bestMove = MoveNone

	s.log.Debugf("Searching depth %d on %s", depth, p.StringFen())

	start := time.Now()
	value := s.alphaBeta(p, -ValueInf, ValueInf, depth, true)
	elapsed := time.Since(start)

	result := Result{
		BestMove:   s.bestMove,
		Value:      value,
		Depth:      depth,
		Nodes:      s.nodes,
		SearchTime: elapsed,
	}

	s.log.Infof("Search result: %s", result.String())

	return result
}

// alphaBeta is a textbook negamax search with alpha-beta pruning and
// fail-hard cutoffs. Pseudo legal moves which leave the own king in
// check are skipped after making them.
func (s *Search) alphaBeta(p *position.Position, alpha Value, beta Value, depth int, root bool) Value {
	if depth == 0 {
		s.nodes++
		return s.evaluator.Evaluate(p)
	}

	moves := s.mgList[depth].GeneratePseudoLegalMoves(p)
	for _, move := range *moves {
		p.DoMove(move)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}
		score := -s.alphaBeta(p, -beta, -alpha, depth-1, false)
		p.UndoMove()
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			if root {
				s.bestMove = move
			}
		}
	}
	return alpha
}
