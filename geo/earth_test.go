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

package geo

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"
)

func TestEarthDistance(t *testing.T) {
	require.InDelta(t, float64(EarthRadiusMeters),
		float64(EarthDistance(s1.Angle(1))), 1e-6)
	require.InDelta(t, math.Pi*EarthRadiusMeters,
		float64(EarthDistance(s1.Angle(math.Pi))), 1e-6)
}

func TestEarthAngle(t *testing.T) {
	require.InDelta(t, 1.0, EarthAngle(EarthRadiusMeters).Radians(), 1e-12)
	require.InDelta(t, 1.0,
		float64(EarthDistance(EarthAngle(1.0))), 1e-9)
}

func TestCellEdgeLength(t *testing.T) {
	// A face cell edge spans roughly a quarter of the circumference, and
	// each level halves the edge.
	require.InDelta(t, 9296, float64(CellEdgeLength(0))/1000, 5)
	for level := 0; level < 30; level++ {
		require.InDelta(t, float64(CellEdgeLength(level))/2,
			float64(CellEdgeLength(level+1)), 1e-6)
	}
	// Leaf cells are centimeter scale.
	require.Less(t, float64(CellEdgeLength(30)), 0.01)
}

func TestLengthString(t *testing.T) {
	require.Equal(t, "1.500 km", Length(1500).String())
	require.Equal(t, "12.000 m", Length(12).String())
	require.Equal(t, "50.000 cm", Length(0.5).String())
}
