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
	"io/ioutil"
	"log"
	"math"
	"strconv"

	"github.com/pfamtools/pfamdiv/proc"
)

// modelSpec builds the invocation of the model builder: the aggregate output
// file followed by every discovered alignment in sorted order, one model per
// alignment, plus the optional gathering cutoff and output-format flags.
func modelSpec(cfg *Config, inputs []string) proc.Spec {
	args := append([]string{cfg.OutputHMM}, inputs...)
	if !math.IsNaN(cfg.GatheringCutoff) {
		args = append(args, "--set-ga", strconv.FormatFloat(cfg.GatheringCutoff, 'f', -1, 64))
	}
	if cfg.ASCIIHMM {
		args = append(args, "--ascii-hmm")
	}
	return proc.Command("generate_hmms", args...)
}

func generateModels(cfg *Config) error {
	inputs, err := ModelInputs(cfg.OutputDir, cfg.Family)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no alignments for %v found in %v", cfg.Family, cfg.OutputDir)
	}
	spec := modelSpec(cfg, inputs)
	if cfg.Verbose {
		log.Println("Generating models:", spec)
	}
	return spec.Run(ioutil.Discard, cfg.toolStderr())
}
