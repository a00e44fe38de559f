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

// Package cell converts between lat/lon pairs, 64-bit S2 cell identifiers
// and their compact hex tokens, and derives levels, ancestors and neighbors
// from cell IDs, without depending on a full S2 geometry library. The
// encoding matches the reference C++ implementation bit for bit.
package cell

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// CellID is a 64-bit S2 cell identifier: 3 face bits, up to 60 bits of
// Hilbert curve position, and a single trailing one bit whose position
// encodes the level. It identifies one cell of the hierarchical subdivision
// of the six faces of a cube projected onto the unit sphere.
type CellID uint64

const (
	// MaxLevel is the finest subdivision level. A cell at MaxLevel is a
	// leaf cell.
	MaxLevel = 30

	// faceBits is the number of cell ID bits that hold the cube face.
	faceBits = 3

	// posBits is the number of cell ID bits holding the curve position,
	// including the trailing one bit.
	posBits = 2*MaxLevel + 1

	// maxSize is the width of the leaf cell grid on one face.
	maxSize = 1 << MaxLevel

	// maxSiTi is the width of the doubled si/ti grid, which addresses leaf
	// cell edges and centers rather than just leaf cells.
	maxSiTi = 1 << (MaxLevel + 1)

	numFaces = 6
)

const (
	// None is the reserved zero cell ID. It is invalid and sorts below
	// every valid cell ID.
	None CellID = 0

	// Sentinel is the reserved all-ones cell ID. It is invalid and sorts
	// above every valid cell ID.
	Sentinel CellID = ^CellID(0)
)

// degrees per radian
const degrees = 180 / math.Pi

// FromLatLng returns the cell ID containing the given point at the given
// level. Lat and lng are in degrees; lat is expected to be normalized into
// [-90, 90]. Level must be in [0, MaxLevel].
func FromLatLng(lat, lng float64, level int) (CellID, error) {
	if level < 0 || level > MaxLevel {
		return None, errors.Wrapf(ErrInvalidLevel, "cannot encode at level %d", level)
	}

	x, y, z := latLngToXYZ(lat/degrees, lng/degrees)
	f, u, v, err := xyzToFaceUV(x, y, z)
	if err != nil {
		return None, err
	}
	i := stToIJ(uvToST(u))
	j := stToIJ(uvToST(v))
	return fromFaceIJ(f, i, j, level), nil
}

// fromFaceIJ encodes (face, i, j) into the cell ID at the given level.
//
// Each step looks up 4 bits of I and 4 bits of J, together with the 2
// orientation bits carried over from the previous step, and gets back 8 bits
// of curve position plus the orientation of the curve within the next level
// of sub-cells. Steps whose output would be wiped entirely by the truncation
// below are skipped; each step covers 4 levels, plus 2 extra levels to
// account for the face bits, so ceil((level+2)/4) steps are needed. The
// result is identical to encoding to a leaf and truncating.
func fromFaceIJ(f, i, j, level int) CellID {
	b := uint64(f) & swapMask
	id := uint64(f) << (posBits - 1)
	steps := 0
	if level > 0 {
		steps = (level + 5) / 4 // ceil((level+2)/4)
	}
	for k := 7; k >= 8-steps; k-- {
		off := uint(k) * lookupBits
		b += ((uint64(i) >> off) & lookupMask) << (lookupBits + 2)
		b += ((uint64(j) >> off) & lookupMask) << 2
		b = lookupPos[b]
		id |= (b >> 2) << (uint(k) * 2 * lookupBits)
		b &= swapMask | invertMask
	}

	// Make room for the trailing bit, then truncate to the level. The
	// truncation also sets the trailing bit itself, so the shifted-in zero
	// is never wrong, and it completes partially-overwritten steps.
	return CellID(id << 1).parentAt(level)
}

// faceIJ decodes the cell ID into (face, i, j) of a leaf cell inside it.
// For non-leaf cells the leaf is one of the two diagonal neighbors of the
// cell center; LatLng applies the center correction.
func (ci CellID) faceIJ() (f, i, j int) {
	f = int(uint64(ci) >> posBits)
	b := uint64(f) & swapMask
	for k := 7; k >= 0; k-- {
		// The first iteration covers only 2 levels: the top 4 bits hold
		// the face, not curve position.
		nbits := lookupBits
		if k == 7 {
			nbits = MaxLevel - 7*lookupBits
		}
		extractMask := uint64(1)<<(2*uint(nbits)) - 1
		b += ((uint64(ci) >> (uint(k)*2*lookupBits + 1)) & extractMask) << 2
		b = lookupIJ[b]
		i += int(b>>(lookupBits+2)) << (uint(k) * lookupBits)
		j += int((b>>2)&lookupMask) << (uint(k) * lookupBits)
		b &= swapMask | invertMask
	}
	return f, i, j
}

// LatLng returns the center of the cell in degrees.
func (ci CellID) LatLng() (lat, lng float64, err error) {
	if !ci.IsValid() {
		return 0, 0, errors.Wrapf(ErrInvalidCellID,
			"cannot decode invalid S2 cell ID: %d", uint64(ci))
	}

	f, i, j := ci.faceIJ()

	// The raw decode lands on one of the two leaf cells diagonally
	// adjacent to the cell center: the trailing "10" of a non-leaf ID
	// first selects the upper-right sub-cell and the zeros below it then
	// walk to the lower left, except within a swapped-and-inverted curve
	// segment where the walk runs the other way and leaves us offset by
	// one leaf cell in both axes. That case is detected by an odd decoded
	// I -- inverted at level 29, where no zero pairs follow the "10" and
	// an even I marks the offset instead. Checking bit 2 of the ID is the
	// level-29 test; the initial isLeaf guard keeps it from firing on
	// leaves. The delta is applied on the doubled si/ti grid.
	isLeaf := uint64(ci)&1 != 0
	delta := uint64(0)
	if isLeaf {
		delta = 1
	} else if (uint64(i)^(uint64(ci)>>2))&1 != 0 {
		delta = 2
	}
	si := uint64(i)<<1 + delta
	ti := uint64(j)<<1 + delta

	u := stToUV(siTiToST(si))
	v := stToUV(siTiToST(ti))
	x, y, z := faceUVToXYZ(f, u, v)

	// No need to normalize: lat/lon are component ratios.
	latRad, lngRad := xyzToLatLng(x, y, z)
	return latRad * degrees, lngRad * degrees, nil
}

// IsValid reports whether the cell ID has a legal face and its trailing one
// bit in one of the even positions allowed for the 31 levels. None and
// Sentinel are both invalid.
func (ci CellID) IsValid() bool {
	if uint64(ci)>>posBits > numFaces-1 {
		return false
	}
	// Lowest set bit via two's complement; zero for the None ID.
	lowestSetBit := uint64(ci) & (^uint64(ci) + 1)
	return lowestSetBit&0x1555555555555555 != 0
}

// Level returns the subdivision level of the cell ID, in [0, MaxLevel].
func (ci CellID) Level() (int, error) {
	if !ci.IsValid() {
		return 0, errors.Wrapf(ErrInvalidCellID,
			"cannot decode invalid S2 cell ID: %d", uint64(ci))
	}
	return MaxLevel - bits.TrailingZeros64(uint64(ci))>>1, nil
}

// parentAt truncates the cell ID to the given level. The caller guarantees
// the level is in range and not finer than the cell's own.
func (ci CellID) parentAt(level int) CellID {
	lsb := CellID(1) << uint(2*(MaxLevel-level))
	return ci&-lsb | lsb
}

// Parent returns the ancestor of the cell at the given level, which must
// not exceed the cell's own level. A cell is its own level-equal ancestor.
func (ci CellID) Parent(level int) (CellID, error) {
	cur, err := ci.Level()
	if err != nil {
		return None, err
	}
	if level < 0 || level > MaxLevel {
		return None, errors.Wrapf(ErrInvalidLevel, "cannot truncate to level %d", level)
	}
	if level > cur {
		return None, errors.Wrapf(ErrTruncation,
			"cannot get level %d parent of cell ID with level %d", level, cur)
	}
	return ci.parentAt(level), nil
}

// ImmediateParent returns the parent one level up. It fails on a level 0
// cell, which has no parent.
func (ci CellID) ImmediateParent() (CellID, error) {
	cur, err := ci.Level()
	if err != nil {
		return None, err
	}
	if cur == 0 {
		return None, errors.Wrap(ErrInvalidLevel,
			"cannot get parent of a level 0 cell ID")
	}
	return ci.parentAt(cur - 1), nil
}
