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
	"log"

	"github.com/pfamtools/pfamdiv/proc"
)

// Fixed parameters of the profile search.
const (
	searchIdentity    = "90"
	searchProbability = "90"
	searchIterations  = "3"
	searchEvalue      = "1e-6"
	searchThreads     = "4"
)

// enrichmentChain builds the chain that searches the given databases with
// the seed alignment's profile and normalizes the hits through the same
// reformat/mask/dedup tail as the redundancy reduction. All databases are
// searched in one invocation, each passed as its own -d argument.
func enrichmentChain(input string, databases []string) proc.Chain {
	args := []string{"-v", "0", "-i", input}
	for _, db := range databases {
		args = append(args, "-d", db)
	}
	args = append(args,
		"-cov", filterCoverage,
		"-id", searchIdentity,
		"-p", searchProbability,
		"-n", searchIterations,
		"-e", searchEvalue,
		"-cpu", searchThreads,
		"-oa3m", "stdout")
	return proc.Chain{
		proc.Command("hhblits", args...),
		reformatSpec(),
		maskSpec(),
		dedupSpec(),
	}
}

// enrich derives the homology-enriched artifact from the seed alignment.
// Validate has already guaranteed a non-empty database list.
func enrich(cfg *Config) error {
	input := seedArtifact(cfg)
	output := ArtifactPath(cfg.OutputDir, cfg.Family, Enriched, ExtAligned)
	if cfg.Verbose {
		log.Println("Enriching", input, "to", output)
	}
	return runChainToFile(enrichmentChain(input, cfg.Databases), output, cfg.toolStderr())
}
