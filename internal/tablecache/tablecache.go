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

// Package tablecache serializes the pre-computed magic attack tables
// to disk. As the table generation is deterministic a cache file can
// be verified against a freshly regenerated table set - they must be
// identical.
package tablecache

import (
	"encoding/gob"
	"os"
	"reflect"

	"github.com/frankkopp/GambitGo/internal/types"
)

// Save writes the current attack tables to the given cache file
func Save(path string) error {
	encodeFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer encodeFile.Close()
	enc := gob.NewEncoder(encodeFile)
	return enc.Encode(types.AttackTableData())
}

// Load reads attack tables from the given cache file
func Load(path string) (*types.TableData, error) {
	decodeFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer decodeFile.Close()
	dec := gob.NewDecoder(decodeFile)
	td := &types.TableData{}
	if err := dec.Decode(td); err != nil {
		return nil, err
	}
	return td, nil
}

// Verify compares the cache file content with the freshly generated
// attack tables and returns true when they are identical
func Verify(path string) (bool, error) {
	cached, err := Load(path)
	if err != nil {
		return false, err
	}
	return reflect.DeepEqual(cached, types.AttackTableData()), nil
}
