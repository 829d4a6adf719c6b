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

package utils

const (
	// ProgramName is "pfamdiv"
	ProgramName = "pfamdiv"

	// ProgramVersion is the version of the pfamdiv binary
	ProgramVersion = "1.0.2"

	// ProgramURL is the repository for the pfamdiv source code
	ProgramURL = "http://github.com/pfamtools/pfamdiv"
)
