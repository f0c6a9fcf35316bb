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
	"fmt"
	"strings"
)

// Move is a 32bit unsigned int type for encoding chess moves as a
// primitive data type.
//  BITMAP 32-bit
//  2 2 2 2 | 1 1 1 1 | 1 1 1 1 | 1 1
//  3 2 1 0 | 9 8 7 6 | 5 4 3 2 | 1 0 9 8 7 6 | 5 4 3 2 1 0
//  --------|---------|---------|-------------|------------
//          |         |         |             | 1 1 1 1 1 1  to
//          |         |         | 1 1 1 1 1 1 |              from
//          |         | 1 1 1 1 |             |              move flag
//          | 1 1 1 1 |         |             |              moving piece
//  1 1 1 1 |         |         |             |              captured piece
type Move uint32

const (
	// MoveNone is an empty non valid move
	MoveNone Move = 0
)

// MoveFlag is the 4-bit move classification.
// Bit 2 flags a capture, bit 3 a promotion. The lower two bits of a
// promotion flag encode the promoted piece type.
// See https://www.chessprogramming.org/Encoding_Moves
type MoveFlag uint8

// MoveFlag constants
const (
	Quiet            MoveFlag = 0b0000
	DoublePawnPush   MoveFlag = 0b0001
	KingCastle       MoveFlag = 0b0010
	QueenCastle      MoveFlag = 0b0011
	Capture          MoveFlag = 0b0100
	EnPassantCapture MoveFlag = 0b0101
	PromoKnight      MoveFlag = 0b1000
	PromoBishop      MoveFlag = 0b1001
	PromoRook        MoveFlag = 0b1010
	PromoQueen       MoveFlag = 0b1011
	PromoKnightCap   MoveFlag = 0b1100
	PromoBishopCap   MoveFlag = 0b1101
	PromoRookCap     MoveFlag = 0b1110
	PromoQueenCap    MoveFlag = 0b1111
)

// PromotionFlag returns the promotion move flag for the given promotion
// piece type, with the capture bit set when capture is true.
func PromotionFlag(pt PieceType, capture bool) MoveFlag {
	f := PromoKnight | MoveFlag(pt-Knight)
	if capture {
		f |= Capture
	}
	return f
}

// CreateMove returns an encoded Move instance
func CreateMove(from Square, to Square, flag MoveFlag, moving Piece, captured Piece) Move {
	return Move(to) |
		Move(from)<<fromShift |
		Move(flag)<<flagShift |
		Move(moving)<<movingShift |
		Move(captured)<<capturedShift
}

// From returns the start square of the move
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the end square of the move
func (m Move) To() Square {
	return Square(m & toMask)
}

// Flag returns the 4-bit move flag
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & flagMask) >> flagShift)
}

// MovingPiece returns the piece making the move
func (m Move) MovingPiece() Piece {
	return Piece((m & movingMask) >> movingShift)
}

// CapturedPiece returns the piece captured by the move or PieceNone
func (m Move) CapturedPiece() Piece {
	return Piece((m & capturedMask) >> capturedShift)
}

// IsCapture returns true for captures incl. en passant and
// promotion captures
func (m Move) IsCapture() bool {
	return m.Flag()&Capture != 0
}

// IsPromotion returns true for promotions and promotion captures
func (m Move) IsPromotion() bool {
	return m.Flag()&PromoKnight != 0
}

// IsCastling returns true for king side and queen side castle moves
func (m Move) IsCastling() bool {
	return m.Flag() == KingCastle || m.Flag() == QueenCastle
}

// IsEnPassant returns true for en passant captures
func (m Move) IsEnPassant() bool {
	return m.Flag() == EnPassantCapture
}

// IsDoublePush returns true for pawn double pushes
func (m Move) IsDoublePush() bool {
	return m.Flag() == DoublePawnPush
}

// PromotionType returns the PieceType the pawn promotes to.
// Must be ignored when the move is not a promotion.
func (m Move) PromotionType() PieceType {
	return Knight + PieceType(m.Flag()&0b0011)
}

// PromotedPiece returns the piece the pawn promotes to colored
// with the mover's color. PieceNone when not a promotion.
func (m Move) PromotedPiece() Piece {
	if !m.IsPromotion() {
		return PieceNone
	}
	return MakePiece(m.MovingPiece().ColorOf(), m.PromotionType())
}

// IsValid checks if the move has valid squares and a valid flag.
// MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MovingPiece() != PieceNone
}

// String returns a string representation of a move with its details
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s flag:%-0.4b moving:%s captured:%s }",
		m.StringUci(), m.Flag(), m.MovingPiece().String(), m.CapturedPiece().String())
}

// StringUci returns the move in coordinate notation (e.g. e2e4) with
// the promotion piece letter appended lowercase for promotions (a7a8q)
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}

/* @formatter:off
   BITMAP 32-bit
   2 2 2 2 | 1 1 1 1 | 1 1 1 1 | 1 1
   3 2 1 0 | 9 8 7 6 | 5 4 3 2 | 1 0 9 8 7 6 | 5 4 3 2 1 0
   --------|---------|---------|-------------|------------
           |         |         |             | 1 1 1 1 1 1  to
           |         |         | 1 1 1 1 1 1 |              from
           |         | 1 1 1 1 |             |              move flag
           | 1 1 1 1 |         |             |              moving piece
   1 1 1 1 |         |         |             |              captured piece
*/ // @formatter:on

const (
	fromShift     uint = 6
	flagShift     uint = 12
	movingShift   uint = 16
	capturedShift uint = 20

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	flagMask     Move = 0xF << flagShift
	movingMask   Move = 0xF << movingShift
	capturedMask Move = 0xF << capturedShift
)
