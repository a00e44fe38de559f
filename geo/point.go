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
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// PointFromGeoJSON parses a GeoJSON Point geometry and returns its lat/lon
// in degrees. The geojson spec says that coordinates are specified as
// [long, lat], so the order is flipped on the way out.
func PointFromGeoJSON(data []byte) (lat, lon float64, err error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return 0, 0, errors.Wrapf(err, "cannot parse GeoJSON geometry")
	}
	p, ok := g.(*geom.Point)
	if !ok {
		return 0, 0, errors.Errorf("cannot convert geometry of type %T, need a Point", g)
	}
	if p.Stride() != 2 {
		return 0, 0, errors.Errorf("cannot convert point with %d coordinates, need 2D", p.Stride())
	}
	c := p.Coords()
	return c.Y(), c.X(), nil
}

// PointToGeoJSON renders a lat/lon pair as a GeoJSON Point geometry.
func PointToGeoJSON(lat, lon float64) ([]byte, error) {
	p := geom.NewPointFlat(geom.XY, []float64{lon, lat})
	data, err := geojson.Marshal(p)
	return data, errors.Wrapf(err, "cannot encode GeoJSON point")
}
