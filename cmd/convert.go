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
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pfamtools/pfamdiv/msa"
)

// ConvertHelp is the help string for this command.
const ConvertHelp = "convert parameters:\n" +
	"pfamdiv convert alignment-file output-file\n" +
	"[--in-format [stockholm | fasta | afa]]\n" +
	"[--out-format [stockholm | fasta | afa]]\n" +
	"[--remove-lowercase-columns]\n" +
	"[--log-path path]\n"

// Convert implements the pfamdiv convert command. Formats not given
// explicitly are inferred from the file extensions.
func Convert() error {
	var (
		inFormat        string
		outFormat       string
		removeLowercase bool
		logPath         string
	)

	var flags flag.FlagSet
	flags.StringVar(&inFormat, "in-format", "", "force the format of the input file")
	flags.StringVar(&outFormat, "out-format", "", "force the format of the output file")
	flags.BoolVar(&removeLowercase, "remove-lowercase-columns", false, "remove columns that contain lowercase characters")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 4, ConvertHelp)

	input := getFilename(os.Args[2], ConvertHelp)
	output := getFilename(os.Args[3], ConvertHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}

	in, out := msa.Format(inFormat), msa.Format(outFormat)
	if in == "" {
		var ok bool
		if in, ok = msa.FormatForFile(input); !ok {
			sanityChecksFailed = true
			log.Printf("Error: Cannot detect the format of %v; use --in-format.\n", input)
		}
	} else if !msa.CheckFormat(in) {
		sanityChecksFailed = true
		log.Printf("Error: Invalid input format %v.\n", in)
	}
	if out == "" {
		var ok bool
		if out, ok = msa.FormatForFile(output); !ok {
			sanityChecksFailed = true
			log.Printf("Error: Cannot detect the format of %v; use --out-format.\n", output)
		}
	} else if !msa.CheckFormat(out) {
		sanityChecksFailed = true
		log.Printf("Error: Invalid output format %v.\n", out)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, ConvertHelp)
		os.Exit(1)
	}

	log.Println("Converting", input, "to", output)
	msa.Convert(input, in, output, out, removeLowercase)
	return nil
}
