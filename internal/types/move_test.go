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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveEncoding(t *testing.T) {
	assert := assert.New(t)

	m := CreateMove(SqE2, SqE4, DoublePawnPush, WhitePawn, PieceNone)
	assert.Equal(SqE2, m.From())
	assert.Equal(SqE4, m.To())
	assert.Equal(DoublePawnPush, m.Flag())
	assert.Equal(WhitePawn, m.MovingPiece())
	assert.Equal(PieceNone, m.CapturedPiece())
	assert.True(m.IsDoublePush())
	assert.False(m.IsCapture())
	assert.False(m.IsPromotion())
	assert.False(m.IsCastling())
	assert.False(m.IsEnPassant())
	assert.Equal("e2e4", m.StringUci())

	m = CreateMove(SqE4, SqD5, Capture, WhitePawn, BlackPawn)
	assert.True(m.IsCapture())
	assert.Equal(BlackPawn, m.CapturedPiece())

	m = CreateMove(SqE1, SqG1, KingCastle, WhiteKing, PieceNone)
	assert.True(m.IsCastling())
	assert.False(m.IsCapture())
	assert.Equal("e1g1", m.StringUci())

	m = CreateMove(SqD5, SqE6, EnPassantCapture, WhitePawn, BlackPawn)
	assert.True(m.IsEnPassant())
	assert.True(m.IsCapture())
	assert.Equal(BlackPawn, m.CapturedPiece())
}

func TestMovePromotions(t *testing.T) {
	assert := assert.New(t)

	m := CreateMove(SqA7, SqA8, PromoQueen, WhitePawn, PieceNone)
	assert.True(m.IsPromotion())
	assert.False(m.IsCapture())
	assert.Equal(Queen, m.PromotionType())
	assert.Equal(WhiteQueen, m.PromotedPiece())
	assert.Equal("a7a8q", m.StringUci())

	m = CreateMove(SqA2, SqB1, PromoKnightCap, BlackPawn, WhiteRook)
	assert.True(m.IsPromotion())
	assert.True(m.IsCapture())
	assert.Equal(Knight, m.PromotionType())
	assert.Equal(BlackKnight, m.PromotedPiece())
	assert.Equal(WhiteRook, m.CapturedPiece())
	assert.Equal("a2b1n", m.StringUci())

	// all four promotion piece types from the low two flag bits
	assert.Equal(Knight, CreateMove(SqA7, SqA8, PromoKnight, WhitePawn, PieceNone).PromotionType())
	assert.Equal(Bishop, CreateMove(SqA7, SqA8, PromoBishop, WhitePawn, PieceNone).PromotionType())
	assert.Equal(Rook, CreateMove(SqA7, SqA8, PromoRook, WhitePawn, PieceNone).PromotionType())
	assert.Equal(Queen, CreateMove(SqA7, SqA8, PromoQueen, WhitePawn, PieceNone).PromotionType())
}

func TestPromotionFlag(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(PromoKnight, PromotionFlag(Knight, false))
	assert.Equal(PromoQueen, PromotionFlag(Queen, false))
	assert.Equal(PromoRookCap, PromotionFlag(Rook, true))
	assert.Equal(PromoBishopCap, PromotionFlag(Bishop, true))
}

func TestMoveNone(t *testing.T) {
	assert := assert.New(t)

	assert.False(MoveNone.IsValid())
	assert.Equal("NoMove", MoveNone.StringUci())
}

func TestPiece(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(WhiteKnight, MakePiece(White, Knight))
	assert.Equal(BlackQueen, MakePiece(Black, Queen))
	assert.Equal(White, WhiteRook.ColorOf())
	assert.Equal(Black, BlackRook.ColorOf())
	assert.Equal(Rook, BlackRook.TypeOf())
	assert.Equal(Value(500), BlackRook.ValueOf())
	assert.Equal(Value(10_000), WhiteKing.ValueOf())
	assert.Equal(WhitePawn, PieceFromChar("P"))
	assert.Equal(BlackPawn, PieceFromChar("p"))
	assert.Equal(PieceNone, PieceFromChar("x"))
	assert.Equal("Q", WhiteQueen.String())
	assert.Equal("q", BlackQueen.String())
}

func TestPosValue(t *testing.T) {
	assert := assert.New(t)

	// black values mirror the white values vertically
	assert.Equal(PosValue(WhitePawn, SqE4), PosValue(BlackPawn, SqE5))
	assert.Equal(PosValue(WhiteKnight, SqD4), PosValue(BlackKnight, SqD5))
	assert.Equal(PosValue(WhiteKing, SqG1), PosValue(BlackKing, SqG8))
	// central pawns on the fourth rank are preferred over the base rank
	assert.True(PosValue(WhitePawn, SqD4) > PosValue(WhitePawn, SqD2))
}
