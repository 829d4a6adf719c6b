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

package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfamtools/pfamdiv/internal"
	"github.com/pfamtools/pfamdiv/pipeline"
)

// RunHelp is the help string for this command.
const RunHelp = "\nrun parameters:\n" +
	"pfamdiv run (family-accession | alignment-file) output-dir output-hmm-file\n" +
	"[--msa-file]\n" +
	"[--database file]...\n" +
	"[--disable-enrichment]\n" +
	"[--disable-clustering nr]\n" +
	"[--set-ga nr]\n" +
	"[--ascii-hmm]\n" +
	"[--verbose]\n" +
	"[--timed]\n" +
	"[--log-path path]\n"

// databaseList collects the values of a repeatable --database flag.
type databaseList []string

func (d *databaseList) String() string {
	return strings.Join(*d, ",")
}

func (d *databaseList) Set(value string) error {
	*d = append(*d, value)
	return nil
}

// Run implements the pfamdiv run command.
func Run() error {
	var (
		msaFile           bool
		databases         databaseList
		disableEnrichment bool
		disableClustering float64
		gatheringCutoff   float64
		asciiHMM          bool
		verbose           bool
		timed             bool
		logPath           string
	)

	var flags flag.FlagSet

	flags.BoolVar(&msaFile, "msa-file", false, "treat the first parameter as a pre-supplied alignment file instead of a Pfam accession")
	flags.Var(&databases, "database", "reference database for the enrichment search; may be given multiple times")
	flags.BoolVar(&disableEnrichment, "disable-enrichment", false, "skip the homology enrichment stage")
	flags.Float64Var(&disableClustering, "disable-clustering", math.NaN(), "skip the clustering stage; the numeric value is reserved")
	flags.Float64Var(&gatheringCutoff, "set-ga", math.NaN(), "gathering cutoff recorded in the generated models")
	flags.BoolVar(&asciiHMM, "ascii-hmm", false, "generate ASCII models instead of the binary format")
	flags.BoolVar(&verbose, "verbose", false, "surface progress messages and external tool diagnostics")
	flags.BoolVar(&timed, "timed", false, "measure the runtime per stage")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 5, RunHelp)

	input := getFilename(os.Args[2], RunHelp)
	outputDir := getFilename(os.Args[3], RunHelp)
	outputHMM := getFilename(os.Args[4], RunHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if msaFile && !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !msaFile && !strings.HasPrefix(input, "PF") {
		log.Printf("Warning: %v does not look like a Pfam accession; use --msa-file for alignment files.\n", input)
	}
	if !checkCreate("", outputHMM) {
		sanityChecksFailed = true
	}
	if !disableEnrichment && len(databases) == 0 {
		sanityChecksFailed = true
		log.Println("Error: Enrichment is enabled but no --database is given. Pass at least one database or use --disable-enrichment.")
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, RunHelp)
		os.Exit(1)
	}

	family := input
	if msaFile {
		base := filepath.Base(input)
		family = base[:len(base)-len(filepath.Ext(base))]
	}

	fullOutputDir, err := internal.FullPathname(outputDir)
	if err != nil {
		return err
	}
	fullOutputHMM, err := internal.FullPathname(outputHMM)
	if err != nil {
		return err
	}

	cfg := &pipeline.Config{
		Family:              family,
		OutputDir:           fullOutputDir,
		OutputHMM:           fullOutputHMM,
		Databases:           databases,
		DisableEnrichment:   disableEnrichment,
		DisableClustering:   !math.IsNaN(disableClustering),
		ClusteringThreshold: disableClustering,
		GatheringCutoff:     gatheringCutoff,
		ASCIIHMM:            asciiHMM,
		Verbose:             verbose,
		Timed:               timed,
	}
	if msaFile {
		cfg.MSAFile = input
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " run ", input, " ", outputDir, " ", outputHMM)
	if msaFile {
		fmt.Fprint(&command, " --msa-file")
	}
	for _, db := range databases {
		fmt.Fprint(&command, " --database ", db)
	}
	if disableEnrichment {
		fmt.Fprint(&command, " --disable-enrichment")
	}
	if cfg.DisableClustering {
		fmt.Fprint(&command, " --disable-clustering ", disableClustering)
	}
	if !math.IsNaN(gatheringCutoff) {
		fmt.Fprint(&command, " --set-ga ", gatheringCutoff)
	}
	if asciiHMM {
		fmt.Fprint(&command, " --ascii-hmm")
	}

	// executing command

	log.Println("Executing command:\n", command.String())

	return pipeline.Run(cfg)
}
