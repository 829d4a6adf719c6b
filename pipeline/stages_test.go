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
	"errors"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func accessionConfig() *Config {
	return &Config{
		Family:          "PF00001",
		OutputDir:       "out",
		OutputHMM:       "out/PF00001.hmm",
		Databases:       []string{"uniref30"},
		GatheringCutoff: math.NaN(),
	}
}

func enabledStages(cfg *Config) []string {
	var names []string
	for _, stage := range Stages() {
		if stage.Enabled(cfg) {
			names = append(names, stage.Name)
		}
	}
	return names
}

func namesEqual(names, expected []string) bool {
	if len(names) != len(expected) {
		return false
	}
	for i, name := range expected {
		if names[i] != name {
			return false
		}
	}
	return true
}

func TestStageGatingAccessionMode(t *testing.T) {
	names := enabledStages(accessionConfig())
	expected := []string{
		"create output directory",
		"acquire base alignments",
		"reduce redundancy",
		"enrich",
		"cluster",
		"generate models",
	}
	if !namesEqual(names, expected) {
		t.Errorf("wrong enabled stages: %v", names)
	}
}

func TestStageGatingDisabledFeatures(t *testing.T) {
	cfg := accessionConfig()
	cfg.Databases = nil
	cfg.DisableEnrichment = true
	cfg.DisableClustering = true
	names := enabledStages(cfg)
	expected := []string{
		"create output directory",
		"acquire base alignments",
		"reduce redundancy",
		"generate models",
	}
	if !namesEqual(names, expected) {
		t.Errorf("wrong enabled stages: %v", names)
	}
}

func TestStageGatingMSAFileMode(t *testing.T) {
	cfg := accessionConfig()
	cfg.MSAFile = "query.afa"
	cfg.Family = "query"
	names := enabledStages(cfg)
	for _, name := range names {
		if name == "reduce redundancy" {
			t.Error("redundancy reduction must be skipped in msa-file mode")
		}
	}
}

func TestValidateEnrichmentNeedsDatabases(t *testing.T) {
	cfg := accessionConfig()
	cfg.Databases = nil
	err := Validate(cfg)
	if err == nil {
		t.Fatal("enrichment without databases must fail validation")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Errorf("expected a UsageError, got %T", err)
	}
	cfg.DisableEnrichment = true
	if err := Validate(cfg); err != nil {
		t.Error("disabling enrichment should make the config valid:", err)
	}
}

func TestValidateMSAFileMustExist(t *testing.T) {
	cfg := accessionConfig()
	cfg.MSAFile = "no-such-alignment.afa"
	cfg.Family = "no-such-alignment"
	var usageErr *UsageError
	if err := Validate(cfg); !errors.As(err, &usageErr) {
		t.Error("missing msa file must fail validation")
	}

	dir, err := ioutil.TempDir("", "pipeline-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	cfg.MSAFile = filepath.Join(dir, "query.afa")
	if err := ioutil.WriteFile(cfg.MSAFile, []byte(">a\nMKVL\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := Validate(cfg); err != nil {
		t.Error("existing msa file should pass validation:", err)
	}
}

func TestRunFailsValidationBeforeSideEffects(t *testing.T) {
	dir, err := ioutil.TempDir("", "pipeline-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	cfg := accessionConfig()
	cfg.Databases = nil
	cfg.OutputDir = filepath.Join(dir, "out")
	if err := Run(cfg); err == nil {
		t.Fatal("run with invalid config must fail")
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Error("validation failure must precede output directory creation")
	}
}
