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

// MagicData is the serializable part of a Magic without the slice
// window into the shared attack table
type MagicData struct {
	Mask  Bitboard
	Magic Bitboard
	Shift uint
}

// TableData holds a serializable copy of the pre-computed magic
// attack tables. As table generation is deterministic a regenerated
// TableData always equals a previously serialized one.
type TableData struct {
	RookMagics   [SqLength]MagicData
	BishopMagics [SqLength]MagicData
	RookTable    []Bitboard
	BishopTable  []Bitboard
}

// AttackTableData returns a copy of the pre-computed magic attack
// tables for serialization
func AttackTableData() *TableData {
	td := &TableData{
		RookTable:   make([]Bitboard, len(rookTable)),
		BishopTable: make([]Bitboard, len(bishopTable)),
	}
	copy(td.RookTable, rookTable)
	copy(td.BishopTable, bishopTable)
	for sq := SqA1; sq <= SqH8; sq++ {
		td.RookMagics[sq] = MagicData{
			Mask:  rookMagics[sq].Mask,
			Magic: rookMagics[sq].Magic,
			Shift: rookMagics[sq].Shift,
		}
		td.BishopMagics[sq] = MagicData{
			Mask:  bishopMagics[sq].Mask,
			Magic: bishopMagics[sq].Magic,
			Shift: bishopMagics[sq].Shift,
		}
	}
	return td
}
