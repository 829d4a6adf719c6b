// pfamdiv: a pipeline for diversifying protein-family alignments.
// Copyright (c) 2024 the pfamdiv authors.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License along with this program. If not, see
// <https://github.com/pfamtools/pfamdiv/blob/master/LICENSE.txt>.

package msa

import (
	"github.com/willf/bitset"
)

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// alignedColumns computes the set of columns that are fully aligned: a
// column qualifies when it contains at least one residue letter and no
// lowercase (insert-state) letter. Gap-only columns do not qualify.
func alignedColumns(a *Alignment) *bitset.BitSet {
	columns := a.Columns()
	keep := bitset.New(uint(columns))
COLUMNS:
	for col := 0; col < columns; col++ {
		aligned := false
		for _, record := range a.Records {
			c := record.Seq[col]
			if isLower(c) {
				continue COLUMNS
			}
			if isUpper(c) {
				aligned = true
			}
		}
		if aligned {
			keep.Set(uint(col))
		}
	}
	return keep
}

// RemoveLowercaseColumns returns a new alignment containing only the fully
// aligned columns of a. The set of records is left untouched; only columns
// are dropped, so the result has the same number of records and at most as
// many columns as the input.
func RemoveLowercaseColumns(a *Alignment) *Alignment {
	keep := alignedColumns(a)
	kept := int(keep.Count())
	result := &Alignment{Records: make([]Record, len(a.Records))}
	for i, record := range a.Records {
		seq := make([]byte, 0, kept)
		for col, ok := keep.NextSet(0); ok; col, ok = keep.NextSet(col + 1) {
			seq = append(seq, record.Seq[col])
		}
		result.Records[i] = Record{
			Name:        record.Name,
			Description: record.Description,
			Seq:         seq,
		}
	}
	return result
}
