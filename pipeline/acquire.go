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
	"os"

	"github.com/pfamtools/pfamdiv/msa"
	"github.com/pfamtools/pfamdiv/pfam"
)

// acquireBase puts the base alignment artifacts in place. In accession mode
// the seed and full alignments are downloaded and converted; in msa-file
// mode the supplied file is converted to the single base artifact. Every
// conversion removes columns that are not fully aligned, which is what all
// later stages expect of their inputs.
func acquireBase(cfg *Config) error {
	if cfg.MSAFile != "" {
		format, ok := msa.FormatForFile(cfg.MSAFile)
		if !ok {
			format = msa.Fasta
		}
		output := ArtifactPath(cfg.OutputDir, cfg.Family, Base, ExtAligned)
		if cfg.Verbose {
			log.Println("Converting", cfg.MSAFile, "to", output)
		}
		msa.Convert(cfg.MSAFile, format, output, msa.Afa, true)
		return nil
	}
	for _, kind := range []pfam.AlignmentKind{pfam.Seed, pfam.Full} {
		variant := Variant(kind)
		stockholm := ArtifactPath(cfg.OutputDir, cfg.Family, variant, ExtStockholm)
		aligned := ArtifactPath(cfg.OutputDir, cfg.Family, variant, ExtAligned)
		if cfg.Verbose {
			log.Println("Fetching", kind, "alignment for", cfg.Family)
		}
		if err := pfam.FetchAlignment(cfg.Family, kind, stockholm); err != nil {
			return err
		}
		msa.Convert(stockholm, msa.Stockholm, aligned, msa.Afa, true)
		// The stockholm intermediates have served their purpose.
		if err := os.Remove(stockholm); err != nil {
			return err
		}
	}
	return nil
}

// seedArtifact returns the alignment that enrichment starts from: the seed
// alignment in accession mode, the base artifact otherwise.
func seedArtifact(cfg *Config) string {
	if cfg.MSAFile != "" {
		return ArtifactPath(cfg.OutputDir, cfg.Family, Base, ExtAligned)
	}
	return ArtifactPath(cfg.OutputDir, cfg.Family, SeedAln, ExtAligned)
}
