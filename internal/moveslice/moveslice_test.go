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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/GambitGo/internal/types"
)

func TestMoveSliceBasics(t *testing.T) {
	assert := assert.New(t)

	ms := NewMoveSlice(MaxMoves)
	assert.Equal(0, ms.Len())
	assert.Equal(MaxMoves, ms.Cap())

	m1 := CreateMove(SqE2, SqE4, DoublePawnPush, WhitePawn, PieceNone)
	m2 := CreateMove(SqG1, SqF3, Quiet, WhiteKnight, PieceNone)

	ms.PushBack(m1)
	ms.PushBack(m2)
	assert.Equal(2, ms.Len())
	assert.Equal(m1, ms.At(0))
	assert.Equal(m2, ms.At(1))
	assert.True(ms.Contains(m1))

	back := ms.PopBack()
	assert.Equal(m2, back)
	assert.Equal(1, ms.Len())
	assert.False(ms.Contains(m2))

	ms.Clear()
	assert.Equal(0, ms.Len())
	assert.False(ms.Contains(m1))
}

func TestMoveSliceFilterCopy(t *testing.T) {
	assert := assert.New(t)

	ms := NewMoveSlice(16)
	ms.PushBack(CreateMove(SqE2, SqE4, DoublePawnPush, WhitePawn, PieceNone))
	ms.PushBack(CreateMove(SqE4, SqD5, Capture, WhitePawn, BlackPawn))
	ms.PushBack(CreateMove(SqG1, SqF3, Quiet, WhiteKnight, PieceNone))

	dest := NewMoveSlice(16)
	ms.FilterCopy(dest, func(i int) bool {
		return !ms.At(i).IsCapture()
	})
	assert.Equal(2, dest.Len())
	assert.Equal(3, ms.Len())
}

func TestMoveSliceString(t *testing.T) {
	assert := assert.New(t)

	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, DoublePawnPush, WhitePawn, PieceNone))
	ms.PushBack(CreateMove(SqA7, SqA8, PromoQueen, WhitePawn, PieceNone))

	assert.Equal("e2e4 a7a8q", ms.StringUci())
	assert.Contains(ms.String(), "[2]")
}
