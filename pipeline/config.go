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
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

// Config is the full configuration of one pipeline run.
type Config struct {
	// Family is the Pfam accession, or the stem of MSAFile when a
	// pre-supplied alignment replaces the downloaded ones. It prefixes
	// every artifact file name.
	Family string

	// MSAFile is the path of a pre-supplied alignment. Empty in accession
	// mode.
	MSAFile string

	OutputDir string
	OutputHMM string

	// Databases are the reference databases searched during enrichment.
	Databases []string

	DisableEnrichment bool
	DisableClustering bool

	// ClusteringThreshold is the numeric value of --disable-clustering.
	// Reserved; currently unused beyond disabling the stage.
	ClusteringThreshold float64

	// GatheringCutoff is recorded in every emitted model. NaN when unset.
	GatheringCutoff float64

	// ASCIIHMM selects ASCII instead of binary model output.
	ASCIIHMM bool

	Verbose bool
	Timed   bool
}

// toolStderr returns the stream that external collaborators' diagnostics go
// to: discarded by default, surfaced under --verbose.
func (cfg *Config) toolStderr() io.Writer {
	if cfg.Verbose {
		return os.Stderr
	}
	return ioutil.Discard
}

// UsageError is a configuration problem detected before any side effect. The
// command layer maps it to exit code 1.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// Validate checks a configuration for usage errors. It performs no network
// calls and launches no processes.
func Validate(cfg *Config) error {
	if cfg.Family == "" {
		return usageErrorf("no family name given")
	}
	if cfg.OutputDir == "" || cfg.OutputHMM == "" {
		return usageErrorf("output directory and output HMM file must be given")
	}
	if cfg.MSAFile != "" {
		if _, err := os.Stat(cfg.MSAFile); err != nil {
			return usageErrorf("alignment file %v not readable: %v", cfg.MSAFile, err)
		}
	}
	if !cfg.DisableEnrichment && len(cfg.Databases) == 0 {
		return usageErrorf("enrichment is enabled but no --database is given; pass at least one database or --disable-enrichment")
	}
	return nil
}
