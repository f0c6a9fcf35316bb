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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/GambitGo/internal/position"
	. "github.com/frankkopp/GambitGo/internal/types"
)

func TestEvaluateStartPosition(t *testing.T) {
	assert := assert.New(t)

	e := NewEvaluator()
	p := position.NewPosition()
	// the start position is symmetric
	assert.Equal(ValueZero, e.Evaluate(p))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	assert := assert.New(t)

	e := NewEvaluator()
	// black queen missing - white is up about a queen
	p := position.NewPosition("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	v := e.Evaluate(p)
	assert.True(v > Value(800), "value was %d", v)
}

func TestEvaluateSideToMoveView(t *testing.T) {
	assert := assert.New(t)

	e := NewEvaluator()
	// the same board from white's and from black's view - the
	// values negate each other
	pw := position.NewPosition("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	pb := position.NewPosition("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	assert.Equal(e.Evaluate(pw), -e.Evaluate(pb))
}

func TestEvaluatePieceSquareValues(t *testing.T) {
	assert := assert.New(t)

	e := NewEvaluator()
	// same material - white knight developed to f3, black knight
	// still on b8. White is positionally better.
	p := position.NewPosition("rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 0 1")
	pRef := position.NewPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.True(e.Evaluate(p) > e.Evaluate(pRef))
}

func TestEvaluateIncremental(t *testing.T) {
	assert := assert.New(t)

	e := NewEvaluator()
	p := position.NewPosition()
	before := e.Evaluate(p)

	// do and undo a move - the incremental values are restored
	m := CreateMove(SqE2, SqE4, DoublePawnPush, WhitePawn, PieceNone)
	p.DoMove(m)
	p.UndoMove()
	assert.Equal(before, e.Evaluate(p))
}
