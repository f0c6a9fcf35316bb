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

// Package movegen contains functionality to create moves on a
// chess position. It implements the generation of pseudo legal
// moves and a legality filter on top of it.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/moveslice"
	"github.com/frankkopp/GambitGo/internal/position"
	. "github.com/frankkopp/GambitGo/internal/types"
)

var log *logging.Logger

// Movegen data structure. Create a new move generator via
//  movegen.NewMoveGen()
// The generator reuses its internal move lists between calls to
// avoid allocations.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
	}
}

// GeneratePseudoLegalMoves generates all moves for the next player which
// follow the piece movement rules. It does not check if the king is left
// in check after the move. For castling moves the squares the king
// passes are checked to not be attacked as these squares are not
// verified anywhere else.
//
// Moves are emitted in a deterministic order: pawn moves, knight,
// bishop, rook and queen moves, king moves and finally castling.
// Pawn moves are grouped by kind (promotions, single pushes, double
// pushes, captures per direction, en passant) and iterated LSB first
// over the target squares; for the other pieces the source squares
// are iterated LSB first.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	mg.generatePawnMoves(p, mg.pseudoLegalMoves)
	mg.generatePieceMoves(p, mg.pseudoLegalMoves)
	mg.generateKingMoves(p, mg.pseudoLegalMoves)
	mg.generateCastling(p, mg.pseudoLegalMoves)
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates legal moves for the next player.
// Uses GeneratePseudoLegalMoves and filters out all moves which
// leave the mover's king in check.
func (mg *Movegen) GenerateLegalMoves(p *position.Position) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(p)
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return p.IsLegalMove(mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// HasLegalMove determines if the next player has at least one legal
// move. Generation stops at the first legal move found.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	mg.GeneratePseudoLegalMoves(p)
	for _, m := range *mg.pseudoLegalMoves {
		if p.IsLegalMove(m) {
			return true
		}
	}
	return false
}

// Regex for move coordinate notation
var regexUciMove = regexp.MustCompile("^([a-h][1-8])([a-h][1-8])([NBRQnbrq])?$")

// GetMoveFromUci generates all legal moves and matches the given move
// string in coordinate notation (e.g. e2e4, a7a8q) against them.
// If there is a match the actual move is returned.
// Otherwise MoveNone is returned.
//
// As this uses string creation and comparison this is not very efficient.
// Use only when performance is not critical.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	// we allow lower and upper case promotion letters
	moveString := matches[1] + matches[2] + strings.ToLower(matches[3])

	// check against all legal moves on the position
	mg.GenerateLegalMoves(p)
	for _, m := range *mg.legalMoves {
		if m.StringUci() == moveString {
			return m
		}
	}
	// move not found
	return MoveNone
}

// ValidateMove validates if a move is a legal move on the given position.
// The position is not changed.
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	ml := mg.GenerateLegalMoves(p)
	return ml.Contains(move)
}

// String returns a string representation of a MoveGen instance
func (mg *Movegen) String() string {
	return fmt.Sprintf("MoveGen: { pseudo legal: %d, legal: %d }",
		mg.pseudoLegalMoves.Len(), mg.legalMoves.Len())
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// generatePawnMoves creates all pawn moves: single and double pushes,
// captures, en passant captures and all their promotion variants.
//
// The algorithm shifts the own pawn bitboard in the direction of the
// pawn move or capture and ANDs it with the target squares. The from
// square is recovered with the backward shift.
func (mg *Movegen) generatePawnMoves(p *position.Position, ml *moveslice.MoveSlice) {

	us := p.NextPlayer()
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	oppPieces := p.OccupiedBb(them)
	occupied := p.OccupiedAll()
	piece := MakePiece(us, Pawn)

	up := us.MoveDirection()
	down := them.MoveDirection()

	// pawns - check step one to unoccupied squares
	tmpMoves := ShiftBitboard(myPawns, up) &^ occupied
	// pawns double - check step two to unoccupied squares
	// only pawns who reached the third (sixth) rank with the single
	// step can do a double step
	tmpMovesDouble := ShiftBitboard(tmpMoves&us.PawnDoubleRank(), up) &^ occupied

	// single pawn steps - promotions first
	promMoves := tmpMoves & us.PromotionRankBb()
	for promMoves != 0 {
		toSquare := promMoves.PopLsb()
		fromSquare := toSquare.To(down)
		ml.PushBack(CreateMove(fromSquare, toSquare, PromoKnight, piece, PieceNone))
		ml.PushBack(CreateMove(fromSquare, toSquare, PromoBishop, piece, PieceNone))
		ml.PushBack(CreateMove(fromSquare, toSquare, PromoRook, piece, PieceNone))
		ml.PushBack(CreateMove(fromSquare, toSquare, PromoQueen, piece, PieceNone))
	}
	// normal single pawn steps
	tmpMoves &^= us.PromotionRankBb()
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(down)
		ml.PushBack(CreateMove(fromSquare, toSquare, Quiet, piece, PieceNone))
	}
	// double pawn steps
	for tmpMovesDouble != 0 {
		toSquare := tmpMovesDouble.PopLsb()
		fromSquare := toSquare.To(down).To(down)
		ml.PushBack(CreateMove(fromSquare, toSquare, DoublePawnPush, piece, PieceNone))
	}

	// normal pawn captures to the west and east - promotions first
	for _, dir := range []Direction{West, East} {
		tmpCaptures := ShiftBitboard(myPawns, up+dir) & oppPieces
		promCaptures := tmpCaptures & us.PromotionRankBb()
		for promCaptures != 0 {
			toSquare := promCaptures.PopLsb()
			fromSquare := toSquare.To(down - dir)
			target := p.GetPiece(toSquare)
			ml.PushBack(CreateMove(fromSquare, toSquare, PromoKnightCap, piece, target))
			ml.PushBack(CreateMove(fromSquare, toSquare, PromoBishopCap, piece, target))
			ml.PushBack(CreateMove(fromSquare, toSquare, PromoRookCap, piece, target))
			ml.PushBack(CreateMove(fromSquare, toSquare, PromoQueenCap, piece, target))
		}
		tmpCaptures &^= us.PromotionRankBb()
		for tmpCaptures != 0 {
			toSquare := tmpCaptures.PopLsb()
			fromSquare := toSquare.To(down - dir)
			ml.PushBack(CreateMove(fromSquare, toSquare, Capture, piece, p.GetPiece(toSquare)))
		}
	}

	// en passant captures. The captured piece is the opponent's pawn
	// which is not on the target square itself.
	enPassantSquare := p.GetEnPassantSquare()
	if enPassantSquare != SqNone {
		for _, dir := range []Direction{West, East} {
			tmpCaptures := ShiftBitboard(enPassantSquare.Bb(), down+dir) & myPawns
			if tmpCaptures != 0 {
				fromSquare := tmpCaptures.PopLsb()
				ml.PushBack(CreateMove(fromSquare, enPassantSquare, EnPassantCapture, piece, MakePiece(them, Pawn)))
			}
		}
	}
}

// generatePieceMoves creates the moves of knights, bishops, rooks and
// queens using the pre-computed attacks from the magic bitboards
func (mg *Movegen) generatePieceMoves(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	occupied := p.OccupiedAll()
	oppPieces := p.OccupiedBb(us.Flip())

	// loop through all piece types, get the attacks for the piece and
	// AND-NOT them with the own pieces
	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(us, pt)
		piece := MakePiece(us, pt)

		for pieces != 0 {
			fromSquare := pieces.PopLsb()

			moves := GetAttacksBb(pt, fromSquare, occupied) &^ p.OccupiedBb(us)

			captures := moves & oppPieces
			for captures != 0 {
				toSquare := captures.PopLsb()
				ml.PushBack(CreateMove(fromSquare, toSquare, Capture, piece, p.GetPiece(toSquare)))
			}

			nonCaptures := moves &^ occupied
			for nonCaptures != 0 {
				toSquare := nonCaptures.PopLsb()
				ml.PushBack(CreateMove(fromSquare, toSquare, Quiet, piece, PieceNone))
			}
		}
	}
}

// generateKingMoves creates the non castling king moves
func (mg *Movegen) generateKingMoves(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	piece := MakePiece(us, King)
	kingSquareBb := p.PiecesBb(us, King)
	fromSquare := kingSquareBb.PopLsb()

	// pseudo attacks include all moves no matter if the king would be in check
	pseudoMoves := GetPseudoAttacks(King, fromSquare)

	captures := pseudoMoves & p.OccupiedBb(us.Flip())
	for captures != 0 {
		toSquare := captures.PopLsb()
		ml.PushBack(CreateMove(fromSquare, toSquare, Capture, piece, p.GetPiece(toSquare)))
	}

	nonCaptures := pseudoMoves &^ p.OccupiedAll()
	for nonCaptures != 0 {
		toSquare := nonCaptures.PopLsb()
		ml.PushBack(CreateMove(fromSquare, toSquare, Quiet, piece, PieceNone))
	}
}

// generateCastling creates the castling moves. Castling requires the
// right to still be set, the squares between king and rook to be empty
// and the king's origin square, the transit square and the destination
// square to not be attacked by the opponent. The attack conditions are
// checked here as they are not verified anywhere else.
func (mg *Movegen) generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	them := us.Flip()
	occupied := p.OccupiedAll()

	if p.CastlingRights() == CastlingNone {
		return
	}
	cr := p.CastlingRights()
	if us == White { // white
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupied == 0 &&
			!p.IsAttacked(SqE1, them) && !p.IsAttacked(SqF1, them) && !p.IsAttacked(SqG1, them) {
			ml.PushBack(CreateMove(SqE1, SqG1, KingCastle, WhiteKing, PieceNone))
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupied == 0 &&
			!p.IsAttacked(SqE1, them) && !p.IsAttacked(SqD1, them) && !p.IsAttacked(SqC1, them) {
			ml.PushBack(CreateMove(SqE1, SqC1, QueenCastle, WhiteKing, PieceNone))
		}
	} else { // black
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupied == 0 &&
			!p.IsAttacked(SqE8, them) && !p.IsAttacked(SqF8, them) && !p.IsAttacked(SqG8, them) {
			ml.PushBack(CreateMove(SqE8, SqG8, KingCastle, BlackKing, PieceNone))
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupied == 0 &&
			!p.IsAttacked(SqE8, them) && !p.IsAttacked(SqD8, them) && !p.IsAttacked(SqC8, them) {
			ml.PushBack(CreateMove(SqE8, SqC8, QueenCastle, BlackKing, PieceNone))
		}
	}
}
