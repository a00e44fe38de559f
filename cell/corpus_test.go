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
	"encoding/csv"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// readCorpus loads one of the testdata CSVs, skipping the header row.
func readCorpus(t *testing.T, name string) [][]string {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(rows), 1)
	return rows[1:]
}

// TestEncodeCorpus encodes every corpus point at every level and compares
// against cell IDs and tokens produced by the reference implementation.
func TestEncodeCorpus(t *testing.T) {
	for _, row := range readCorpus(t, "testdata/encode_corpus.csv") {
		lat, err := strconv.ParseFloat(row[0], 64)
		require.NoError(t, err)
		lon, err := strconv.ParseFloat(row[1], 64)
		require.NoError(t, err)
		level, err := strconv.Atoi(row[2])
		require.NoError(t, err)
		want, err := strconv.ParseUint(row[3], 10, 64)
		require.NoError(t, err)

		ci, err := FromLatLng(lat, lon, level)
		require.NoError(t, err)
		require.Equal(t, CellID(want), ci,
			"encoding (%v, %v) at level %d", lat, lon, level)
		require.Equal(t, row[4], ci.Token())
	}
}

// TestDecodeCorpus decodes every corpus cell ID and compares level, token and
// center against the reference implementation. Centers are compared with a
// tolerance well below a leaf cell to allow for last-bit libm differences.
func TestDecodeCorpus(t *testing.T) {
	for _, row := range readCorpus(t, "testdata/decode_corpus.csv") {
		id, err := strconv.ParseUint(row[0], 10, 64)
		require.NoError(t, err)
		wantLat, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		wantLon, err := strconv.ParseFloat(row[3], 64)
		require.NoError(t, err)
		wantLevel, err := strconv.Atoi(row[4])
		require.NoError(t, err)

		ci := CellID(id)
		require.True(t, ci.IsValid())
		require.Equal(t, row[1], ci.Token())

		level, err := ci.Level()
		require.NoError(t, err)
		require.Equal(t, wantLevel, level, "level of cell ID %d", id)

		lat, lon, err := ci.LatLng()
		require.NoError(t, err)
		require.InDelta(t, wantLat, lat, 1e-12, "latitude of cell ID %d", id)
		require.InDelta(t, wantLon, lon, 1e-12, "longitude of cell ID %d", id)
	}
}
