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
	"math/rand"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func sorted(cells []CellID) []CellID {
	out := append([]CellID(nil), cells...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestEdgeNeighbors(t *testing.T) {
	nbrs, err := CellID(0x466d319000000000).EdgeNeighbors()
	require.NoError(t, err)
	require.Equal(t, [4]CellID{
		0x466d31f000000000,
		0x466d317000000000,
		0x466d31b000000000,
		0x466d323000000000,
	}, nbrs)

	for _, nbr := range nbrs {
		level, err := nbr.Level()
		require.NoError(t, err)
		require.Equal(t, 12, level)
	}
}

func TestEdgeNeighborsAtCubeCorner(t *testing.T) {
	// A cell touching a cube corner has its four edge neighbors on three
	// different faces.
	nbrs, err := CellID(0x4aac000000000000).EdgeNeighbors()
	require.NoError(t, err)
	require.Equal(t, [4]CellID{
		0x0aac000000000000,
		0x4ab4000000000000,
		0x4aa4000000000000,
		0x8aac000000000000,
	}, nbrs)
}

func TestEdgeNeighborsSymmetric(t *testing.T) {
	// Edge adjacency is symmetric, including across face boundaries.
	rnd := rand.New(rand.NewSource(45))
	for n := 0; n < 50; n++ {
		lat := rnd.Float64()*180 - 90
		lon := rnd.Float64()*360 - 180
		level := 1 + rnd.Intn(MaxLevel)
		ci, err := FromLatLng(lat, lon, level)
		require.NoError(t, err)

		nbrs, err := ci.EdgeNeighbors()
		require.NoError(t, err)
		for _, nbr := range nbrs {
			require.NotEqual(t, ci, nbr)
			back, err := nbr.EdgeNeighbors()
			require.NoError(t, err)
			require.Contains(t, back[:], ci)
		}
	}
}

func TestEdgeNeighborsInvalid(t *testing.T) {
	_, err := None.EdgeNeighbors()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidCellID))
}

func TestAllNeighbors(t *testing.T) {
	nbrs, err := CellID(0x466d319000000000).AllNeighbors(12)
	require.NoError(t, err)
	require.Len(t, nbrs, 8)
	require.Equal(t, sorted([]CellID{
		0x466d311000000000,
		0x466d317000000000,
		0x466d31b000000000,
		0x466d31d000000000,
		0x466d31f000000000,
		0x466d321000000000,
		0x466d323000000000,
		0x466d33d000000000,
	}), sorted(nbrs))

	// The edge neighbors come first, in their canonical order.
	edge, err := CellID(0x466d319000000000).EdgeNeighbors()
	require.NoError(t, err)
	require.Equal(t, edge[:], nbrs[:4])
}

func TestAllNeighborsAcrossFaces(t *testing.T) {
	// A cell on a face edge has neighbors on the adjacent face.
	nbrs, err := CellID(0x6aa7590000000000).AllNeighbors(10)
	require.NoError(t, err)
	require.Equal(t, sorted([]CellID{
		0x2ab34b0000000000,
		0x2ab34d0000000000,
		0x2ab3530000000000,
		0x6aa7510000000000,
		0x6aa7570000000000,
		0x6aa75b0000000000,
		0x6aa75d0000000000,
		0x6aa75f0000000000,
	}), sorted(nbrs))
}

func TestAllNeighborsAtCubeCorner(t *testing.T) {
	// At a cube corner only three faces meet, so a diagonal step coincides
	// with an edge neighbor and the cell has seven distinct neighbors.
	nbrs, err := CellID(0x4aac000000000000).AllNeighbors(5)
	require.NoError(t, err)
	require.Len(t, nbrs, 7)
	require.Equal(t, sorted([]CellID{
		0x0aac000000000000,
		0x4ab4000000000000,
		0x4aa4000000000000,
		0x8aac000000000000,
		0x0ab4000000000000,
		0x4abc000000000000,
		0x8aa4000000000000,
	}), sorted(nbrs))
}

func TestAllNeighborsCoarser(t *testing.T) {
	ci := CellID(0x466d319000000000)
	own, err := ci.AllNeighbors(12)
	require.NoError(t, err)

	for level := 11; level >= 6; level-- {
		coarse, err := ci.AllNeighbors(level)
		require.NoError(t, err)
		require.NotEmpty(t, coarse)
		require.LessOrEqual(t, len(coarse), len(own))

		// Every coarse neighbor is an ancestor of some own-level neighbor,
		// and there are no duplicates.
		seen := make(map[CellID]bool)
		for _, nbr := range coarse {
			require.False(t, seen[nbr])
			seen[nbr] = true
			got, err := nbr.Level()
			require.NoError(t, err)
			require.Equal(t, level, got)
			found := false
			for _, o := range own {
				p, err := o.Parent(level)
				require.NoError(t, err)
				if p == nbr {
					found = true
					break
				}
			}
			require.True(t, found)
		}
	}
}

func TestAllNeighborsErrors(t *testing.T) {
	ci := CellID(0x466d319000000000) // level 12

	_, err := ci.AllNeighbors(13)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTruncation))

	_, err = ci.AllNeighbors(-1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidLevel))

	_, err = ci.AllNeighbors(31)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidLevel))

	_, err = Sentinel.AllNeighbors(0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidCellID))
}

func TestAllNeighborsCount(t *testing.T) {
	// At the cell's own level there are always between four and eight
	// distinct neighbors.
	rnd := rand.New(rand.NewSource(46))
	for n := 0; n < 50; n++ {
		lat := rnd.Float64()*180 - 90
		lon := rnd.Float64()*360 - 180
		level := 1 + rnd.Intn(MaxLevel)
		ci, err := FromLatLng(lat, lon, level)
		require.NoError(t, err)

		nbrs, err := ci.AllNeighbors(level)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(nbrs), 4)
		require.LessOrEqual(t, len(nbrs), 8)
		require.NotContains(t, nbrs, ci)
	}
}
