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

// Package geo layers point-level conveniences over the cell package:
// straight lat/lon to token conversions, GeoJSON point input and output,
// and earth-distance helpers for cell sizes.
package geo

import (
	"github.com/pkg/errors"

	"github.com/dgraph-io/s2cell/cell"
)

// LatLonToToken converts a lat/lon in degrees to the token of the cell
// containing it at the given level.
func LatLonToToken(lat, lon float64, level int) (string, error) {
	ci, err := cell.FromLatLng(lat, lon, level)
	if err != nil {
		return "", err
	}
	return ci.Token(), nil
}

// TokenToLatLon converts a token to the lat/lon of its cell's center, in
// degrees. The token must name a valid cell ID.
func TokenToLatLon(token string) (lat, lon float64, err error) {
	if !cell.TokenIsValid(token) {
		return 0, 0, errors.Wrapf(cell.ErrInvalidToken,
			"cannot decode invalid S2 token: %q", token)
	}
	ci, err := cell.FromToken(token)
	if err != nil {
		return 0, 0, err
	}
	return ci.LatLng()
}

// GeoJSONToToken converts a GeoJSON Point to the token of the cell
// containing it at the given level.
func GeoJSONToToken(data []byte, level int) (string, error) {
	lat, lon, err := PointFromGeoJSON(data)
	if err != nil {
		return "", err
	}
	return LatLonToToken(lat, lon, level)
}

// TokenToGeoJSON converts a token to a GeoJSON Point at its cell's center.
func TokenToGeoJSON(token string) ([]byte, error) {
	lat, lon, err := TokenToLatLon(token)
	if err != nil {
		return nil, err
	}
	return PointToGeoJSON(lat, lon)
}
