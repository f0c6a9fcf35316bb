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

package tablecache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/GambitGo/internal/types"
)

func TestSaveLoadVerify(t *testing.T) {
	assert := assert.New(t)

	cacheFile := filepath.Join(t.TempDir(), "attacktables.cache")

	err := Save(cacheFile)
	assert.NoError(err)

	td, err := Load(cacheFile)
	assert.NoError(err)
	assert.Equal(0x19000, len(td.RookTable))
	assert.Equal(0x1480, len(td.BishopTable))

	// a regenerated table set is identical to the cached one
	identical, err := Verify(cacheFile)
	assert.NoError(err)
	assert.True(identical)
}

func TestLoadMissingFile(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.cache"))
	assert.Error(err)

	_, err = Verify(filepath.Join(t.TempDir(), "does-not-exist.cache"))
	assert.Error(err)
}

func TestTableDataIsACopy(t *testing.T) {
	assert := assert.New(t)

	td1 := types.AttackTableData()
	td2 := types.AttackTableData()
	assert.Equal(td1, td2)

	// changing the copy does not change the live tables
	td1.RookTable[0] = ^td1.RookTable[0]
	assert.NotEqual(td1.RookTable[0], td2.RookTable[0])
}
