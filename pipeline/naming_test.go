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

package pipeline

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestArtifactName(t *testing.T) {
	for _, test := range []struct {
		variant Variant
		ext     string
		name    string
	}{
		{SeedAln, ExtStockholm, "PF00001_seed.sto"},
		{SeedAln, ExtAligned, "PF00001_seed.afa"},
		{FullAln, ExtAligned, "PF00001_full.afa"},
		{Identity50, ExtAligned, "PF00001_50.afa"},
		{Identity90, ExtAligned, "PF00001_90.afa"},
		{Enriched, ExtAligned, "PF00001_enriched.afa"},
		{Base, ExtAligned, "PF00001.afa"},
	} {
		if name := ArtifactName("PF00001", test.variant, test.ext); name != test.name {
			t.Errorf("ArtifactName(%q) = %v, expected %v", test.variant, name, test.name)
		}
	}
}

func TestClusterPrefix(t *testing.T) {
	if prefix := ClusterPrefix("PF00001", SeedAln); prefix != "PF00001_seed" {
		t.Errorf("wrong cluster prefix: %v", prefix)
	}
	if prefix := ClusterPrefix("query", Base); prefix != "query" {
		t.Errorf("wrong base cluster prefix: %v", prefix)
	}
}

func TestModelInputs(t *testing.T) {
	dir, err := ioutil.TempDir("", "pipeline-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// Created out of order on purpose; discovery must sort.
	for _, name := range []string{
		"PF00001_seed.afa",
		"PF00001_90.afa",
		"PF00001_50.afa",
		"PF00001_full.afa",
		"PF00001_seed_cluster_1.afa",
		"PF00001_seed.sto",  // wrong extension
		"PF99999_seed.afa",  // different family
		"unrelated.afa",     // different family
	} {
		if err := ioutil.WriteFile(filepath.Join(dir, name), nil, 0666); err != nil {
			t.Fatal(err)
		}
	}

	inputs, err := ModelInputs(dir, "PF00001")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		filepath.Join(dir, "PF00001_50.afa"),
		filepath.Join(dir, "PF00001_90.afa"),
		filepath.Join(dir, "PF00001_full.afa"),
		filepath.Join(dir, "PF00001_seed.afa"),
		filepath.Join(dir, "PF00001_seed_cluster_1.afa"),
	}
	if len(inputs) != len(expected) {
		t.Fatalf("wrong model inputs: %v", inputs)
	}
	for i, path := range expected {
		if inputs[i] != path {
			t.Errorf("model input %v is %v, expected %v", i, inputs[i], path)
		}
	}
}
