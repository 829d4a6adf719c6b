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

package pfam

import (
	"compress/gzip"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const stockholmBody = "# STOCKHOLM 1.0\nseq1 MKVL\n//\n"

func alignmentServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/PF00001/":
			if r.URL.RawQuery != "annotation=alignment:seed" && r.URL.RawQuery != "annotation=alignment:full" {
				http.NotFound(w, r)
				return
			}
			gz := gzip.NewWriter(w)
			if _, err := gz.Write([]byte(stockholmBody)); err != nil {
				t.Error(err)
			}
			if err := gz.Close(); err != nil {
				t.Error(err)
			}
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestFetchAlignment(t *testing.T) {
	server := alignmentServer(t)
	defer server.Close()
	defer func(url string) { BaseURL = url }(BaseURL)
	BaseURL = server.URL

	dir, err := ioutil.TempDir("", "pfam-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	output := filepath.Join(dir, "PF00001_seed.sto")
	if err := FetchAlignment("PF00001", Seed, output); err != nil {
		t.Fatal("fetch failed:", err)
	}
	contents, err := ioutil.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != stockholmBody {
		t.Errorf("wrong decompressed contents: %q", contents)
	}

	// The temporary download file must be gone.
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("unexpected leftover files: %v", files)
	}
}

func TestFetchAlignmentNotFound(t *testing.T) {
	server := alignmentServer(t)
	defer server.Close()
	defer func(url string) { BaseURL = url }(BaseURL)
	BaseURL = server.URL

	dir, err := ioutil.TempDir("", "pfam-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	output := filepath.Join(dir, "PF99999_seed.sto")
	err = FetchAlignment("PF99999", Seed, output)
	if err == nil {
		t.Fatal("fetch of unknown accession should fail")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected a FetchError, got %T", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("wrong status code: %v", fetchErr.StatusCode)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("failed fetch must not leave an output file behind")
	}
}

func TestCheckAlignmentKind(t *testing.T) {
	if !CheckAlignmentKind(Seed) || !CheckAlignmentKind(Full) {
		t.Error("seed and full are valid alignment kinds")
	}
	if CheckAlignmentKind("rp75") {
		t.Error("unknown alignment kinds must be rejected")
	}
}
