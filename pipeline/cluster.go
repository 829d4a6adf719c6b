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
	"io/ioutil"
	"log"

	"github.com/pfamtools/pfamdiv/proc"
)

// clusterTargets returns the variants that get split into subalignments:
// every non-enriched artifact that exists in the given mode.
func clusterTargets(cfg *Config) []Variant {
	if cfg.MSAFile != "" {
		return []Variant{Base}
	}
	return []Variant{SeedAln, FullAln, Identity50, Identity90}
}

// clusterSpec builds the invocation that splits one alignment into
// subalignment files named {prefix}_cluster_{n}.afa in the output directory.
// How many files appear is the tool's decision; the model-generation stage
// discovers them by name.
func clusterSpec(cfg *Config, variant Variant) proc.Spec {
	return proc.Command("cluster_msa",
		"--gap-threshold", maskGapThreshold,
		"--output-dir", cfg.OutputDir,
		"--prefix", ClusterPrefix(cfg.Family, variant),
		ArtifactPath(cfg.OutputDir, cfg.Family, variant, ExtAligned))
}

func cluster(cfg *Config) error {
	for _, variant := range clusterTargets(cfg) {
		spec := clusterSpec(cfg, variant)
		if cfg.Verbose {
			log.Println("Clustering:", spec)
		}
		if err := spec.Run(ioutil.Discard, cfg.toolStderr()); err != nil {
			return err
		}
	}
	return nil
}
