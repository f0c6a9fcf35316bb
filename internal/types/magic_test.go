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

// The magic lookups must return exactly the attacks a ray walk
// computes for any occupancy.
func TestMagicAgainstRayWalk(t *testing.T) {
	assert := assert.New(t)

	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rng := newPrnG(951413)
	for i := 0; i < 1_000; i++ {
		occ := Bitboard(rng.rand64() & rng.rand64())
		for sq := SqA1; sq <= SqH8; sq++ {
			assert.Equal(slidingAttack(&rookDirections, sq, occ),
				GetAttacksBb(Rook, sq, occ), "rook sq %s occ %d", sq.String(), occ)
			assert.Equal(slidingAttack(&bishopDirections, sq, occ),
				GetAttacksBb(Bishop, sq, occ), "bishop sq %s occ %d", sq.String(), occ)
		}
	}
}

// Occupancy bits outside the relevant mask must not change the result
func TestMagicMaskIrrelevantBits(t *testing.T) {
	assert := assert.New(t)

	// edge squares are not part of the mask
	occEdges := Rank1_Bb | Rank8_Bb | FileA_Bb | FileH_Bb
	assert.Equal(GetAttacksBb(Rook, SqD4, BbZero), GetAttacksBb(Rook, SqD4, occEdges&^SqD4.RankOf().Bb()&^SqD4.FileOf().Bb()))
}

// Table sizes match the worst case bounds for the per square subsets
func TestMagicTableSizes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0x19000, len(rookTable))
	assert.Equal(0x1480, len(bishopTable))
	for sq := SqA1; sq <= SqH8; sq++ {
		assert.True(rookMagics[sq].Mask.PopCount() <= 12)
		assert.True(bishopMagics[sq].Mask.PopCount() <= 9)
		assert.NotEqual(BbZero, rookMagics[sq].Magic)
		assert.NotEqual(BbZero, bishopMagics[sq].Magic)
	}
}

// Generation is deterministic - a second table build must produce the
// identical magics
func TestMagicDeterministic(t *testing.T) {
	assert := assert.New(t)

	first := AttackTableData()
	initMagicBitboards()
	second := AttackTableData()
	assert.Equal(first, second)
}
