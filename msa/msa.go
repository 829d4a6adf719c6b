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

// Package msa reads, transforms, and writes multiple sequence alignments in
// the block-annotated (Stockholm) and flat aligned-fasta formats handled by
// the pipeline.
package msa

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pfamtools/pfamdiv/internal"
)

// Record is a single named, aligned sequence.
type Record struct {
	Name        string
	Description string
	Seq         []byte
}

// Alignment is an ordered set of records of equal length.
type Alignment struct {
	Records []Record
}

// Len returns the number of records in the alignment.
func (a *Alignment) Len() int {
	return len(a.Records)
}

// Columns returns the number of columns in the alignment.
func (a *Alignment) Columns() int {
	if len(a.Records) == 0 {
		return 0
	}
	return len(a.Records[0].Seq)
}

func checkRectangular(a *Alignment, filename string) {
	columns := a.Columns()
	for _, record := range a.Records {
		if len(record.Seq) != columns {
			log.Panicf("alignment %v is not rectangular: sequence %v has %v columns instead of %v", filename, record.Name, len(record.Seq), columns)
		}
	}
}

// ParseFasta parses an alignment in (aligned) fasta format.
func ParseFasta(filename string) *Alignment {
	file := internal.FileOpen(filename)
	defer internal.Close(file)

	aln := new(Alignment)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			header := strings.TrimSpace(string(line[1:]))
			if header == "" {
				log.Panicf("badly formatted fasta file %v - empty header", filename)
			}
			record := Record{Name: header}
			if sep := strings.IndexAny(header, " \t"); sep >= 0 {
				record.Name = header[:sep]
				record.Description = strings.TrimSpace(header[sep+1:])
			}
			aln.Records = append(aln.Records, record)
			continue
		}
		if len(aln.Records) == 0 {
			log.Panicf("badly formatted fasta file %v - sequence data before first header", filename)
		}
		last := &aln.Records[len(aln.Records)-1]
		last.Seq = append(last.Seq, bytes.TrimSpace(line)...)
	}
	if err := scanner.Err(); err != nil {
		log.Panic(err)
	}
	checkRectangular(aln, filename)
	return aln
}

// ParseStockholm parses an alignment in Stockholm format. Markup lines are
// ignored; sequence lines from multiple blocks belonging to the same name
// are concatenated.
func ParseStockholm(filename string) *Alignment {
	file := internal.FileOpen(filename)
	defer internal.Close(file)

	aln := new(Alignment)
	index := make(map[string]int)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if line == "//" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Panicf("badly formatted stockholm file %v - invalid sequence line %q", filename, line)
		}
		name, seq := fields[0], fields[1]
		i, ok := index[name]
		if !ok {
			i = len(aln.Records)
			index[name] = i
			aln.Records = append(aln.Records, Record{Name: name})
		}
		aln.Records[i].Seq = append(aln.Records[i].Seq, seq...)
	}
	if err := scanner.Err(); err != nil {
		log.Panic(err)
	}
	if len(aln.Records) == 0 {
		log.Panicf("no sequences found in stockholm file %v", filename)
	}
	checkRectangular(aln, filename)
	return aln
}

// fastaLineWidth is the column at which sequence lines are wrapped.
const fastaLineWidth = 60

// WriteFasta writes an alignment in (aligned) fasta format.
func WriteFasta(file *os.File, a *Alignment) {
	out := bufio.NewWriter(file)
	for _, record := range a.Records {
		if record.Description != "" {
			fmt.Fprintf(out, ">%v %v\n", record.Name, record.Description)
		} else {
			fmt.Fprintf(out, ">%v\n", record.Name)
		}
		for start := 0; start < len(record.Seq); start += fastaLineWidth {
			end := start + fastaLineWidth
			if end > len(record.Seq) {
				end = len(record.Seq)
			}
			out.Write(record.Seq[start:end])
			out.WriteByte('\n')
		}
	}
	if err := out.Flush(); err != nil {
		log.Panic(err)
	}
}

// WriteStockholm writes an alignment as a single Stockholm block.
func WriteStockholm(file *os.File, a *Alignment) {
	width := 0
	for _, record := range a.Records {
		if len(record.Name) > width {
			width = len(record.Name)
		}
	}
	out := bufio.NewWriter(file)
	fmt.Fprint(out, "# STOCKHOLM 1.0\n\n")
	for _, record := range a.Records {
		fmt.Fprintf(out, "%-*v %s\n", width, record.Name, record.Seq)
	}
	fmt.Fprint(out, "//\n")
	if err := out.Flush(); err != nil {
		log.Panic(err)
	}
}
