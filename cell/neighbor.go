/*
 * Copyright 2025 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cell

import (
	"math"

	"github.com/pkg/errors"
)

// sizeIJ is the edge length of a cell at the given level, in leaf cells.
func sizeIJ(level int) int {
	return 1 << uint(MaxLevel-level)
}

// fromFaceIJWrap encodes (face, i, j) where i or j may lie up to one cell
// outside [0, maxSize), wrapping the coordinates onto the adjacent face.
//
// The step coordinates are converted back to (u,v) with the linear si/ti
// projection and re-projected through XYZ, so a point past the face edge
// lands on the neighboring face under the same dominant-axis rule used when
// encoding. This is the face-adjacency transform: which face is crossed and
// how the axes swap or invert falls out of the per-face UV component tables.
// The linear projection is inverted on the way back in, before the cell ID
// is built on the destination face.
func fromFaceIJWrap(f, i, j int) CellID {
	// Clamp to the coordinates of a leaf cell just past the boundary.
	i = clampInt(i, -1, maxSize)
	j = clampInt(j, -1, maxSize)

	// The (u,v) of the leaf cell center under the linear projection. The
	// limit keeps coordinates on the boundary itself from rounding onto
	// the wrong side of the face edge.
	const scale = 1.0 / maxSize
	limit := math.Nextafter(1, 2)
	u := math.Max(-limit, math.Min(limit, scale*float64((i<<1)+1-maxSize)))
	v := math.Max(-limit, math.Min(limit, scale*float64((j<<1)+1-maxSize)))

	// Re-project onto the face now under the dominant axis, and invert
	// the linear projection. The vector always has a unit component, so
	// the unchecked projection is safe.
	f, u, v = faceUV(faceUVToXYZ(f, u, v))
	return fromFaceIJ(f, stToIJ(0.5*(u+1)), stToIJ(0.5*(v+1)), MaxLevel)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EdgeNeighbors returns the four cells sharing an edge with this cell, at
// the cell's own level, in the order (i-1,j), (i+1,j), (i,j-1), (i,j+1).
// Steps that leave the face wrap onto the adjacent face.
func (ci CellID) EdgeNeighbors() ([4]CellID, error) {
	var nbrs [4]CellID
	level, err := ci.Level()
	if err != nil {
		return nbrs, err
	}
	size := sizeIJ(level)
	f, i, j := ci.faceIJ()
	nbrs[0] = fromFaceIJWrap(f, i-size, j).parentAt(level)
	nbrs[1] = fromFaceIJWrap(f, i+size, j).parentAt(level)
	nbrs[2] = fromFaceIJWrap(f, i, j-size).parentAt(level)
	nbrs[3] = fromFaceIJWrap(f, i, j+size).parentAt(level)
	return nbrs, nil
}

// neighborSteps orders the edge steps first, then the diagonals, so the
// edge neighbors keep their canonical positions in AllNeighbors output.
var neighborSteps = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// AllNeighbors returns the edge neighbors plus the four vertex-adjacent
// diagonal cells, normalized to the given level, which must be coarser than
// or equal to the cell's own. Duplicates are removed: at the eight cube
// corners a diagonal step coincides with an edge neighbor, and normalizing
// to a coarser level can merge cells as well. At the cell's own level the
// result holds between four and eight cells.
func (ci CellID) AllNeighbors(level int) ([]CellID, error) {
	own, err := ci.Level()
	if err != nil {
		return nil, err
	}
	if level < 0 || level > MaxLevel {
		return nil, errors.Wrapf(ErrInvalidLevel, "cannot normalize neighbors to level %d", level)
	}
	if level > own {
		return nil, errors.Wrapf(ErrTruncation,
			"cannot get level %d neighbors of cell ID with level %d", level, own)
	}

	size := sizeIJ(own)
	f, i, j := ci.faceIJ()
	nbrs := make([]CellID, 0, 8)
	for _, step := range neighborSteps {
		n := fromFaceIJWrap(f, i+step[0]*size, j+step[1]*size).parentAt(level)
		if !containsCellID(nbrs, n) {
			nbrs = append(nbrs, n)
		}
	}
	return nbrs, nil
}

func containsCellID(cells []CellID, ci CellID) bool {
	for _, c := range cells {
		if c == ci {
			return true
		}
	}
	return false
}
