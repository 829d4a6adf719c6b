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
	"log"
	"path/filepath"
	"strings"

	"github.com/pfamtools/pfamdiv/internal"
)

// Format identifies an alignment file format.
type Format string

// The alignment file formats the converter understands. Afa (aligned fasta)
// shares the fasta reader and writer; it exists as a separate name because
// the pipeline's artifact naming distinguishes the two.
const (
	Stockholm Format = "stockholm"
	Fasta     Format = "fasta"
	Afa       Format = "afa"
)

var extToFormat = map[string]Format{
	".sto":       Stockholm,
	".stk":       Stockholm,
	".stockholm": Stockholm,
	".fasta":     Fasta,
	".fa":        Fasta,
	".fas":       Fasta,
	".afa":       Afa,
}

// FormatForFile infers an alignment format from a file extension.
func FormatForFile(path string) (Format, bool) {
	format, ok := extToFormat[strings.ToLower(filepath.Ext(path))]
	return format, ok
}

// CheckFormat reports whether a format name is valid.
func CheckFormat(format Format) bool {
	switch format {
	case Stockholm, Fasta, Afa:
		return true
	default:
		return false
	}
}

// Parse reads an alignment in the given format.
func Parse(filename string, format Format) *Alignment {
	switch format {
	case Stockholm:
		return ParseStockholm(filename)
	case Fasta, Afa:
		return ParseFasta(filename)
	default:
		log.Panicf("invalid alignment format %v", format)
		return nil
	}
}

// Write writes an alignment in the given format.
func Write(filename string, format Format, a *Alignment) {
	file := internal.FileCreate(filename)
	defer internal.Close(file)
	switch format {
	case Stockholm:
		WriteStockholm(file, a)
	case Fasta, Afa:
		WriteFasta(file, a)
	default:
		log.Panicf("invalid alignment format %v", format)
	}
}

// Convert reads the alignment in input, optionally removes columns that are
// not fully aligned, and writes the result to output. The same input always
// produces the same output.
func Convert(input string, inFormat Format, output string, outFormat Format, removeLowercase bool) {
	aln := Parse(input, inFormat)
	if removeLowercase {
		aln = RemoveLowercaseColumns(aln)
	}
	Write(output, outFormat, aln)
}
