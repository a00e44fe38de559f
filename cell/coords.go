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

// This file holds the projection chain between lat/lon and the integer cell
// grid: lat/lon <-> XYZ <-> (face, UV) <-> (face, ST) <-> (face, IJ).
//
// UV is the unwarped rectangle of one cube face in [-1, 1], ST the warped
// unit square in [0, 1], and IJ the discrete 2^30 x 2^30 leaf grid. The
// quadratic UV<->ST warp below is the one the reference C++ implementation
// uses by default; substituting the linear or tangent variants produces cell
// IDs that are internally consistent but not interchangeable with anyone
// else's.

// latLngToXYZ converts lat/lon in radians to the unit vector on the sphere.
func latLngToXYZ(lat, lng float64) (x, y, z float64) {
	cosLat := math.Cos(lat)
	return cosLat * math.Cos(lng), cosLat * math.Sin(lng), math.Sin(lat)
}

// xyzToLatLng converts a vector to lat/lon in radians. The vector need not
// be normalized: both angles are ratios of its components.
func xyzToLatLng(x, y, z float64) (lat, lng float64) {
	return math.Atan2(z, math.Sqrt(x*x+y*y)), math.Atan2(y, x)
}

// faceUV projects a vector onto the cube face under its dominant axis and
// returns the face with the (u,v) coordinates on it. The per-face component
// choices encode the transpositions that keep the Hilbert curve continuous
// across face boundaries. The caller guarantees a nonzero vector, so the
// divisor (the dominant component) is nonzero.
func faceUV(x, y, z float64) (f int, u, v float64) {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	switch {
	case ax >= ay && ax >= az:
		f = 0
	case ay >= az:
		f = 1
	default:
		f = 2
	}
	switch f {
	case 0:
		if x < 0 {
			return 3, z / x, y / x
		}
		return 0, y / x, z / x
	case 1:
		if y < 0 {
			return 4, z / y, -x / y
		}
		return 1, -x / y, z / y
	default:
		if z < 0 {
			return 5, -y / z, -x / z
		}
		return 2, -x / z, -y / z
	}
}

// xyzToFaceUV is faceUV with the domain check for callers that cannot rule
// out the zero vector.
func xyzToFaceUV(x, y, z float64) (f int, u, v float64, err error) {
	if x == 0 && y == 0 && z == 0 {
		return 0, 0, 0, errors.Wrap(ErrDomain, "cannot project point to cube face")
	}
	f, u, v = faceUV(x, y, z)
	return f, u, v, nil
}

// faceUVToXYZ is the inverse of faceUV, mapping (face, u, v) back to an
// unnormalized vector.
func faceUVToXYZ(f int, u, v float64) (x, y, z float64) {
	switch f {
	case 0:
		return 1, u, v
	case 1:
		return -u, 1, v
	case 2:
		return -u, -v, 1
	case 3:
		return -1, -v, -u
	case 4:
		return v, -1, -u
	default:
		return v, u, -1
	}
}

// uvToST applies the quadratic warp to one UV component.
func uvToST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}

// stToUV inverts uvToST.
func stToUV(s float64) float64 {
	if s >= 0.5 {
		return (1.0 / 3.0) * (4*s*s - 1)
	}
	return (1.0 / 3.0) * (1 - 4*(1-s)*(1-s))
}

// stToIJ discretizes an ST component onto the leaf grid.
func stToIJ(s float64) int {
	ij := int(math.Floor(maxSize * s))
	if ij < 0 {
		return 0
	}
	if ij > maxSize-1 {
		return maxSize - 1
	}
	return ij
}

// siTiToST converts the doubled grid coordinate si/ti, which can address
// both leaf cell edges and centers, to an ST component.
func siTiToST(si uint64) float64 {
	return (1.0 / maxSiTi) * float64(si)
}
