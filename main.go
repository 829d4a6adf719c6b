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

// pfamdiv derives a set of diversified multiple sequence alignments from a
// Pfam family (or a pre-supplied alignment) and builds one profile HMM per
// derived alignment.
//
// Please see https://github.com/pfamtools/pfamdiv for a documentation of the
// tool.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/pfamtools/pfamdiv/cmd"
	"github.com/pfamtools/pfamdiv/proc"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: run, fetch, convert")
	fmt.Fprint(os.Stderr, "\n", cmd.RunHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.FetchHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.ConvertHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = cmd.Run()
	case "fetch":
		err = cmd.Fetch()
	case "convert":
		err = cmd.Convert()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command:", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Println(err)
		// A failing external collaborator determines the exit status of the
		// whole run.
		var chainErr *proc.ChainError
		if errors.As(err, &chainErr) {
			if code := chainErr.ExitCode(); code > 0 {
				os.Exit(code)
			}
		}
		os.Exit(1)
	}
}
