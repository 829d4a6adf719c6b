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

	"github.com/pfamtools/pfamdiv/pfam"
)

// FetchHelp is the help string for this command.
const FetchHelp = "fetch parameters:\n" +
	"pfamdiv fetch family-accession output-file\n" +
	"[--alignment [seed | full]]\n" +
	"[--log-path path]\n"

// Fetch implements the pfamdiv fetch command.
func Fetch() error {
	var (
		alignment string
		logPath   string
	)

	var flags flag.FlagSet
	flags.StringVar(&alignment, "alignment", string(pfam.Seed), "alignment kind to download, one of seed or full")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 4, FetchHelp)

	accession := getFilename(os.Args[2], FetchHelp)
	output := getFilename(os.Args[3], FetchHelp)

	setLogOutput(logPath)

	kind := pfam.AlignmentKind(alignment)
	if !pfam.CheckAlignmentKind(kind) {
		log.Printf("Error: Invalid alignment kind %v.\n", alignment)
		fmt.Fprint(os.Stderr, FetchHelp)
		os.Exit(1)
	}

	log.Println("Fetching", kind, "alignment for", accession)
	return pfam.FetchAlignment(accession, kind, output)
}
