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
	"path/filepath"
	"sort"
)

// Variant names a derived alignment of a family. Every producer and consumer
// of artifact files goes through ArtifactPath, so the naming convention
// lives in exactly one place.
type Variant string

// The alignment variants the pipeline can produce. Base is the unnamed
// variant used when a pre-supplied alignment file replaces the seed/full
// pair.
const (
	Base       Variant = ""
	SeedAln    Variant = "seed"
	FullAln    Variant = "full"
	Identity50 Variant = "50"
	Identity90 Variant = "90"
	Enriched   Variant = "enriched"
)

// Artifact file extensions.
const (
	ExtStockholm = ".sto"
	ExtAligned   = ".afa"
)

// ArtifactName returns the file name of a family's variant artifact,
// {family}_{variant}{ext}, or {family}{ext} for the base variant.
func ArtifactName(family string, variant Variant, ext string) string {
	if variant == Base {
		return family + ext
	}
	return family + "_" + string(variant) + ext
}

// ArtifactPath returns the full path of a variant artifact under the output
// directory.
func ArtifactPath(dir, family string, variant Variant, ext string) string {
	return filepath.Join(dir, ArtifactName(family, variant, ext))
}

// ClusterPrefix returns the file-name prefix handed to the clustering tool,
// which appends _cluster_{n}.afa to it for every subalignment it writes.
func ClusterPrefix(family string, variant Variant) string {
	return ArtifactName(family, variant, "")
}

// ModelInputs discovers the alignment files of a family in the output
// directory, in lexicographic path order. The order is a property of the
// file names, not of the directory listing, so an identical file-system
// snapshot always yields the identical list.
func ModelInputs(dir, family string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, family+"*"+ExtAligned))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
