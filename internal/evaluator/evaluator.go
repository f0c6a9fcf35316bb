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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
// The evaluation is a plain material count plus piece-square values.
package evaluator

import (
	"github.com/frankkopp/GambitGo/internal/position"
	. "github.com/frankkopp/GambitGo/internal/types"
)

// Evaluator represents a data structure and functionality to
// evaluate chess positions.
//  Create a new instance with NewEvaluator()
type Evaluator struct{}

// NewEvaluator creates a new instance of an Evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate calculates a value for the chess position from
// material and piece-square values. The value is returned from
// the view of the next player (negated for black).
// The position keeps material and positional values up to date
// incrementally during DoMove/UndoMove.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	value := p.Material(White) - p.Material(Black) +
		p.PsqValue(White) - p.PsqValue(Black)
	if p.NextPlayer() == Black {
		return -value
	}
	return value
}
