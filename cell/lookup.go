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

const (
	// lookupBits is the number of bits each of I and J contributes to one
	// lookup step.
	lookupBits = 4

	// swapMask and invertMask are the two Hilbert curve orientation bits.
	// Swap exchanges the I and J axes, invert negates them.
	swapMask   = 1
	invertMask = 2

	lookupMask = 1<<lookupBits - 1
)

// posToIJ maps two bits of Hilbert curve position to two bits of IJ, indexed
// by the current orientation.
var posToIJ = [4][4]uint64{
	{0, 1, 3, 2}, // Normal order, no swap or invert.
	{0, 2, 3, 1}, // Swap bit set, I and J swapped.
	{3, 2, 0, 1}, // Invert bit set, bits inverted.
	{3, 1, 0, 2}, // Both bits set.
}

// posToOrientation is XOR'ed with the current orientation to get the
// orientation of the curve within each of the four sub-cells.
var posToOrientation = [4]uint64{swapMask, 0, 0, swapMask | invertMask}

// lookupPos maps 8 bits of IJ (4 each, iiiijjjj) plus 2 orientation bits to
// 8 bits of curve position plus the orientation of the next level down.
// lookupIJ is its inverse. Both are built once at startup by init and never
// written again, so concurrent readers need no locking.
var (
	lookupPos [1 << (2*lookupBits + 2)]uint64
	lookupIJ  [1 << (2*lookupBits + 2)]uint64
)

func init() {
	initLookups()
}

// initLookups generates the four variations of a 4-level deep Hilbert curve,
// one per swap/invert combination, by walking the base-4 digits of every
// position from most to least significant. The reference implementation
// builds the same tables recursively; the iterative walk is easier to check.
func initLookups() {
	for base := uint64(0); base < 4; base++ {
		for pos := uint64(0); pos < 1<<(2*lookupBits); pos++ {
			ij := uint64(0) // Accumulates as iiiijjjj, not ijijijij.
			orientation := base
			for digitPos := 3; digitPos >= 0; digitPos-- {
				// Each pair of position bits is a sub-cell index.
				subcell := (pos >> (uint(digitPos) * 2)) & 3

				// Spread the sub-cell's (i,j) pair into bit positions 4
				// and 0 of the accumulator.
				bits := posToIJ[orientation][subcell]
				ij = (ij << 1) | ((bits & 2) << 3) | (bits & 1)

				orientation ^= posToOrientation[subcell]
			}
			lookupPos[ij<<2|base] = pos<<2 | orientation
			lookupIJ[pos<<2|base] = ij<<2 | orientation
		}
	}
}
