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

// Package position represents data structures and functions for a chess board
// and its position.
// It uses a 8x8 piece board and bitboards, a fixed size history stack for
// undoing moves and incremental material and positional value counters.
//
// Create a new instance with NewPosition(...) with no parameters to get the
// chess start position.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/GambitGo/internal/logging"
	. "github.com/frankkopp/GambitGo/internal/types"
)

var log *logging.Logger

const (
	// StartFen is a string with the fen position for a standard chess game
	StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Position
// This struct represents the chess board and its position.
// It uses a 8x8 piece board and bitboards, a fixed size history stack
// for undoing moves and incremental material and positional value
// counters.
//
// Needs to be created with NewPosition() or NewPosition(fen string)
type Position struct {

	// Board State
	// unique chess position
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	// Extended Board State
	// not necessary for a unique position
	// special for king squares
	kingSquare [ColorLength]Square
	// half move number - the actual half move number to determine the full move number
	nextHalfMoveNumber int
	// piece bitboards - the side occupancies are addressed by color,
	// single pieces by color and type
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	// history information for undo
	historyCounter int
	history        [maxHistory]historyState

	// Calculated by doMove/undoMove

	// Material and positional values will always be up to date
	material [ColorLength]Value
	psqValue [ColorLength]Value
}

// historyState stores the destroyed state of a position before a move
// so UndoMove can restore it from the stack instead of recomputing it
type historyState struct {
	move            Move
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

const maxHistory int = MaxMoves

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewPosition creates a new position.
// When called without an argument the position will have the start position
// When a fen string is given it will create a position based on this fen.
// Additional fens/strings are ignored
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		f, _ := NewPositionFen(StartFen)
		return f
	}
	f, _ := NewPositionFen(fen[0])
	return f
}

// NewPositionFen creates a new position with the given fen string
// as board position
// It returns nil and an error if the fen was invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// DoMove commits a move to the board. Due to performance there is no check if this
// move is legal on the current position. Legal check needs to be done
// beforehand or after in case of pseudo legal moves. Usually the move will be
// generated by a MoveGenerator and therefore the move will be assumed legal anyway.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	toSq := m.To()
	myColor := p.nextPlayer

	// Save state of board for undo.
	// this helps the compiler to prove that it is in bounds for the
	// several updates we do after
	tmpHistoryCounter := p.historyCounter
	// update the existing history entry to not allocate a new one
	p.history[tmpHistoryCounter].move = m
	p.history[tmpHistoryCounter].castlingRights = p.castlingRights
	p.history[tmpHistoryCounter].enPassantSquare = p.enPassantSquare
	p.history[tmpHistoryCounter].halfMoveClock = p.halfMoveClock
	p.historyCounter++

	// do move according to the move flag
	switch {
	case m.IsCastling():
		p.doCastlingMove(fromSq, toSq, myColor)
	case m.IsEnPassant():
		p.doEnPassantMove(fromSq, toSq, myColor)
	case m.IsPromotion():
		p.doPromotionMove(m, fromSq, toSq, myColor)
	default:
		p.doNormalMove(m, fromSq, toSq, myColor)
	}

	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
}

// UndoMove resets the position to a state before the last move was made.
// The restored state is taken from the history stack, not recomputed.
func (p *Position) UndoMove() {
	// Restore state part 1
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	// this helps the compiler to prove that it is in bounds
	tmpHistoryCounter := p.historyCounter
	move := p.history[tmpHistoryCounter].move

	// undo piece move / restore board
	switch {
	case move.IsCastling():
		p.movePiece(move.To(), move.From()) // King
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1) // Rook
		case SqC1:
			p.movePiece(SqD1, SqA1) // Rook
		case SqG8:
			p.movePiece(SqF8, SqH8) // Rook
		case SqC8:
			p.movePiece(SqD8, SqA8) // Rook
		default:
			panic("Invalid castle move!")
		}
	case move.IsEnPassant():
		p.movePiece(move.To(), move.From())
		// the captured pawn is restored one square behind the end square
		p.putPiece(move.CapturedPiece(), move.To().To(p.nextPlayer.Flip().MoveDirection()))
	case move.IsPromotion():
		// the pawn bit was never set at the end square so only the
		// promoted piece needs clearing and the pawn re-setting at start
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if move.CapturedPiece() != PieceNone {
			p.putPiece(move.CapturedPiece(), move.To())
		}
	default:
		p.movePiece(move.To(), move.From())
		if move.CapturedPiece() != PieceNone {
			p.putPiece(move.CapturedPiece(), move.To())
		}
	}

	// restore state part 2
	p.castlingRights = p.history[tmpHistoryCounter].castlingRights
	p.enPassantSquare = p.history[tmpHistoryCounter].enPassantSquare
	p.halfMoveClock = p.history[tmpHistoryCounter].halfMoveClock
}

// IsAttacked checks if the given square is attacked by a piece
// of the given color.
func (p *Position) IsAttacked(sq Square, by Color) bool {

	// to test if a square is attacked we do a reverse attack from the
	// target square to see if we hit a piece of the same or similar type

	// non sliding pieces
	if (GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) || // check pawns
		(GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0) || // check knights
		(GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0) { // check king
		return true
	}

	// sliding pieces via magic lookups on the current occupancy.
	// queens are tested together with bishops on the diagonals and
	// together with rooks on files and ranks
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) > 0 ||
		GetAttacksBb(Rook, sq, occ)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) > 0 {
		return true
	}

	return false
}

// IsLegalMove tests a move if it is legal on the current position.
// Basically tests if the king would be left in check after the move.
// Castling moves have their attacked square conditions already checked
// by the move generator.
func (p *Position) IsLegalMove(move Move) bool {
	// make the move on the position
	// then check if the move leaves the king in check
	p.DoMove(move)
	legal := !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
	p.UndoMove()
	return legal
}

// WasLegalMove tests if the last move was legal e.g. has not left
// the mover's king in check
func (p *Position) WasLegalMove() bool {
	return !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
}

// HasCheck returns true if the next player is threatened by a check
// (king is attacked)
func (p *Position) HasCheck() bool {
	return p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
}

// String returns a string representing the board instance. This
// includes the fen, a board matrix, material and positional values.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Next Player    : %s\n", p.nextPlayer.String()))
	os.WriteString(fmt.Sprintf("Material White : %d\n", p.material[White]))
	os.WriteString(fmt.Sprintf("Material Black : %d\n", p.material[Black]))
	os.WriteString(fmt.Sprintf("Pos value White: %d\n", p.psqValue[White]))
	os.WriteString(fmt.Sprintf("Pos value Black: %d\n", p.psqValue[Black]))
	return os.String()
}

// StringFen returns a string with the FEN of the current position
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns a visual matrix of the board and pieces
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, Rank8-r)].Char())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// //////////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////////

// doNormalMove handles quiet moves, double pawn pushes and captures
func (p *Position) doNormalMove(m Move, fromSq Square, toSq Square, myColor Color) {
	// If we still have castling rights and the move touches castling
	// squares then invalidate the corresponding castling right. This
	// also covers captures of a rook on its home square.
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.castlingRights.Remove(cr)
		}
	}
	p.enPassantSquare = SqNone
	switch {
	case m.IsCapture():
		p.removePiece(toSq)
		p.halfMoveClock = 0 // reset half move clock because of capture
	case m.MovingPiece().TypeOf() == Pawn:
		p.halfMoveClock = 0 // reset half move clock because of pawn move
		if m.IsDoublePush() {
			// set the en passant target square - always the square
			// jumped over e.g. one behind the pawn's destination
			p.enPassantSquare = toSq.To(myColor.Flip().MoveDirection())
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doCastlingMove(fromSq Square, toSq Square, myColor Color) {
	p.movePiece(fromSq, toSq) // King
	switch toSq {
	case SqG1:
		p.movePiece(SqH1, SqF1) // Rook
	case SqC1:
		p.movePiece(SqA1, SqD1) // Rook
	case SqG8:
		p.movePiece(SqH8, SqF8) // Rook
	case SqC8:
		p.movePiece(SqA8, SqD8) // Rook
	default:
		panic("Invalid castle move!")
	}
	if myColor == White {
		p.castlingRights.Remove(CastlingWhite)
	} else {
		p.castlingRights.Remove(CastlingBlack)
	}
	p.enPassantSquare = SqNone
	p.halfMoveClock++
}

func (p *Position) doEnPassantMove(fromSq Square, toSq Square, myColor Color) {
	// the captured pawn is not on the end square but one square
	// behind it from the mover's view
	capSq := toSq.To(myColor.Flip().MoveDirection())
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.enPassantSquare = SqNone
	// reset half move clock because of pawn move
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m Move, fromSq Square, toSq Square, myColor Color) {
	if m.IsCapture() {
		p.removePiece(toSq)
	}
	// a capture on a rook home square invalidates the corresponding right
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.castlingRights.Remove(cr)
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.enPassantSquare = SqNone
	p.halfMoveClock = 0 // reset half move clock because of pawn move
}

func (p *Position) movePiece(fromSq Square, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()
	// update board
	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	// update bitboards
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	// material
	p.material[color] += pieceType.ValueOf()
	// positional value
	p.psqValue[color] += PosValue(piece, square)
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()
	// update board
	p.board[square] = PieceNone
	// update bitboards
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	// material
	p.material[color] -= pieceType.ValueOf()
	// positional value
	p.psqValue[color] -= PosValue(removed, square)
	return removed
}

func (p *Position) fen() string {
	var fen strings.Builder
	// pieces
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	// next player
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	// castling
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	// en passant
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	// half move clock
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	// full move number
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))

	return fen.String()
}

// regex for first part of fen (position of pieces)
var regexFenPos = regexp.MustCompile("[0-8pPnNbBrRqQkK/]+")

// regex for next player color in fen
var regexWorB = regexp.MustCompile("^[w|b]$")

// regex for castling rights in fen
var regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")

// regex for en passant square in fen
var regexEnPassant = regexp.MustCompile("^([a-h][1-8]|-)$")

// setupBoard sets up a board based on a fen. This is basically
// the only way to get a valid Position instance. Internal state
// will be set up as all struct data is initialized to 0.
func (p *Position) setupBoard(fen string) error {

	// we will analyse the fen and only require the initial board layout part
	// All other parts will have defaults. E.g. next player is white, no castling, etc.
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 {
		return errors.New("fen must not be empty")
	}

	// make sure only valid chars are used
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	// fen string starts at a8 and runs to h8
	// with / jumping to file A of next lower rank
	currentSquare := SqA8

	// loop over fen and check and execute information
	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil { // is number
			currentSquare = Square(int(currentSquare) + (number * int(East)))
		} else if string(c) == "/" { // find rank separator
			// jump two ranks down from the square after h of the previous rank
			currentSquare = Square(int(currentSquare) + 2*int(South))
		} else { // find piece type
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return errors.New(fmt.Sprintf("invalid piece character: %s", string(c)))
			}
			if !currentSquare.IsValid() {
				return errors.New("fen position has too many squares")
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 { // after h1++ we reach a2 - a2 needs to be the last current square
		return errors.New("not reached last square (h1) after reading fen")
	}

	// set defaults
	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	// everything below is optional as we can apply defaults

	// next player
	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen next player contains invalid characters")
		}
		switch fenParts[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			p.nextPlayer = Black
			p.nextHalfMoveNumber++
		}
	}

	// castling rights
	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		// are there rights to be encoded?
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch string(c) {
				case "K":
					p.castlingRights.Add(CastlingWhiteOO)
				case "Q":
					p.castlingRights.Add(CastlingWhiteOOO)
				case "k":
					p.castlingRights.Add(CastlingBlackOO)
				case "q":
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
	}

	// en passant
	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
		}
	}

	// half move clock (50 moves rule)
	if len(fenParts) >= 5 {
		if number, e := strconv.Atoi(fenParts[4]); e == nil { // is number
			p.halfMoveClock = number
		} else {
			return e
		}
	}

	// move number
	if len(fenParts) >= 6 {
		// game move number - to be converted into next half move number (ply)
		if moveNumber, e := strconv.Atoi(fenParts[5]); e == nil { // is number
			if moveNumber == 0 {
				moveNumber = 1
			}
			p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
		} else {
			return e
		}
	}

	// return without error
	return nil
}

// //////////////////////////////////////////////////////
// // Getter and Setter functions
// //////////////////////////////////////////////////////

// NextPlayer returns the next player as Color for the position
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on the given square. Empty
// squares are initialized with PieceNone and return the same.
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the Bitboard for the given piece type of the given color
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns a Bitboard of all pieces currently on the board
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// OccupiedBb returns a Bitboard of all pieces of Color c
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// GetEnPassantSquare returns the en passant square or SqNone if not set
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the castling rights instance of the position
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the current square of the king of color c
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the positions half move clock
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the full move number of the game.
// Incremented after each black move.
func (p *Position) FullMoveNumber() int {
	return (p.nextHalfMoveNumber + 1) / 2
}

// Material returns the material value for the given color
// on this position
func (p *Position) Material(c Color) Value {
	return p.material[c]
}

// PsqValue returns the positional piece-square value for the
// given color on this position
func (p *Position) PsqValue(c Color) Value {
	return p.psqValue[c]
}

// LastMove returns the last move made on the position or
// MoveNone if the position has no history of earlier moves.
func (p *Position) LastMove() Move {
	if p.historyCounter <= 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the captured piece of the last
// move made on the position or PieceNone if the move was
// non-capturing or the position has no history of earlier moves.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter <= 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].move.CapturedPiece()
}
