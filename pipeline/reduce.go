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
	"io"
	"log"
	"os"
	"strconv"

	"github.com/exascience/pargo/parallel"

	"github.com/pfamtools/pfamdiv/proc"
)

// Fixed parameters of the filter chains. Changing any of these changes the
// contents of every derived artifact, so they are constants, not flags.
const (
	filterCoverage   = "75"
	filterMinSeqLen  = "50"
	maskGapThreshold = "0.5"
)

// reformatSpec converts the identity filter's block output to the flat
// aligned-fasta format, uppercasing match states.
func reformatSpec() proc.Spec {
	return proc.Command("reformat.pl", "-v", "0", "-uc", "a3m", "fas", "-", "-")
}

// maskSpec drops columns whose gap fraction exceeds the threshold.
func maskSpec() proc.Spec {
	return proc.Command("esl-alimask", "--amino", "-g", "--gapthresh", maskGapThreshold, "-")
}

// dedupSpec removes records with byte-identical sequences.
func dedupSpec() proc.Spec {
	return proc.Command("seqkit", "rmdup", "-s", "-w", "0")
}

// reductionChain builds the four-element chain that reduces input to at most
// the given pairwise identity: identity filter, reformat, gap-column mask,
// de-duplication. The chain is a pure function of (input, identity); chains
// for different thresholds share nothing and may run concurrently.
func reductionChain(input string, identity int) proc.Chain {
	return proc.Chain{
		proc.Command("hhfilter",
			"-v", "0",
			"-id", strconv.Itoa(identity),
			"-cov", filterCoverage,
			"-minseqlen", filterMinSeqLen,
			"-i", input,
			"-o", "stdout"),
		reformatSpec(),
		maskSpec(),
		dedupSpec(),
	}
}

// runChainToFile streams a chain's final output into a newly created file.
func runChainToFile(chain proc.Chain, output string, stderr io.Writer) error {
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	err = chain.Run(file, stderr)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// reduceRedundancy derives the 90% and 50% identity artifacts from the full
// alignment. The two chains are independent and write to distinct outputs,
// so they run concurrently; the stage completes when both have terminated.
func reduceRedundancy(cfg *Config) error {
	input := ArtifactPath(cfg.OutputDir, cfg.Family, FullAln, ExtAligned)
	var err90, err50 error
	parallel.Do(
		func() {
			output := ArtifactPath(cfg.OutputDir, cfg.Family, Identity90, ExtAligned)
			if cfg.Verbose {
				log.Println("Reducing", input, "to", output)
			}
			err90 = runChainToFile(reductionChain(input, 90), output, cfg.toolStderr())
		},
		func() {
			output := ArtifactPath(cfg.OutputDir, cfg.Family, Identity50, ExtAligned)
			if cfg.Verbose {
				log.Println("Reducing", input, "to", output)
			}
			err50 = runChainToFile(reductionChain(input, 50), output, cfg.toolStderr())
		},
	)
	if err90 != nil {
		return err90
	}
	return err50
}
