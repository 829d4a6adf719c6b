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

// Package pipeline sequences the stages that turn a Pfam accession (or a
// pre-supplied alignment) into a set of diversified alignments and an
// aggregate profile HMM file. All sequence analysis is delegated to external
// collaborator tools; the pipeline builds their argument lists, chains their
// standard streams, and enforces the artifact naming convention the stages
// communicate through.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Stage is one gated step of the pipeline: a name, a precondition deciding
// whether the step runs for a given configuration, and the action itself.
type Stage struct {
	Name    string
	Enabled func(*Config) bool
	Run     func(*Config) error
}

func always(*Config) bool { return true }

// Stages returns the pipeline's stages in their fixed traversal order.
func Stages() []Stage {
	return []Stage{
		{"create output directory", always, ensureOutputDir},
		{"acquire base alignments", always, acquireBase},
		{"reduce redundancy", func(cfg *Config) bool { return cfg.MSAFile == "" }, reduceRedundancy},
		{"enrich", func(cfg *Config) bool { return !cfg.DisableEnrichment }, enrich},
		{"cluster", func(cfg *Config) bool { return !cfg.DisableClustering }, cluster},
		{"generate models", always, generateModels},
	}
}

// Run validates the configuration and executes every enabled stage in order.
// The first failing stage aborts the run; there is no retry and no
// partial-success continuation, since each stage's artifacts are hard
// preconditions of the later ones.
func Run(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	for _, stage := range Stages() {
		if !stage.Enabled(cfg) {
			if cfg.Verbose {
				log.Println("Skipping stage:", stage.Name)
			}
			continue
		}
		if cfg.Verbose || cfg.Timed {
			log.Println("Stage:", stage.Name)
		}
		start := time.Now()
		if err := stage.Run(cfg); err != nil {
			return fmt.Errorf("%v: %w", stage.Name, err)
		}
		if cfg.Timed {
			log.Println("Elapsed time: ", time.Since(start))
		}
	}
	return nil
}

func ensureOutputDir(cfg *Config) error {
	return os.MkdirAll(cfg.OutputDir, 0700)
}
