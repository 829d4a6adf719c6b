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

// Package pfam downloads family alignments from the InterPro annotation API.
package pfam

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
)

// AlignmentKind selects which alignment of a family to download.
type AlignmentKind string

// The alignment kinds served by the annotation API.
const (
	Seed AlignmentKind = "seed"
	Full AlignmentKind = "full"
)

// BaseURL is the entry endpoint of the annotation API. Tests point this at a
// local server.
var BaseURL = "https://www.ebi.ac.uk/interpro/api/entry/pfam"

// CheckAlignmentKind reports whether an alignment kind is valid.
func CheckAlignmentKind(kind AlignmentKind) bool {
	switch kind {
	case Seed, Full:
		return true
	default:
		return false
	}
}

// FetchError reports a non-success response from the annotation API.
type FetchError struct {
	Accession  string
	Kind       AlignmentKind
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %v alignment for %v: server responded with status %v", e.Kind, e.Accession, e.StatusCode)
}

// FetchAlignment downloads the given alignment of a family and writes the
// decompressed bytes to output. The transfer goes through a uniquely named
// temporary file in the destination directory that is renamed into place
// only after a complete write, so a failed transfer never leaves a truncated
// output file behind.
func FetchAlignment(accession string, kind AlignmentKind, output string) (err error) {
	url := fmt.Sprintf("%v/%v/?annotation=alignment:%v", BaseURL, accession, kind)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer func() {
		nerr := resp.Body.Close()
		if err == nil {
			err = nerr
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{Accession: accession, Kind: kind, StatusCode: resp.StatusCode}
	}

	body, err := gzip.NewReader(resp.Body)
	if err != nil {
		return err
	}

	tmp := fmt.Sprintf("%v.%v.tmp", output, uuid.New())
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err = io.Copy(file, body); err == nil {
		err = body.Close()
	} else {
		body.Close()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, output)
}
