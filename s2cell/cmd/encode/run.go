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

package encode

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/s2cell/cell"
	"github.com/dgraph-io/s2cell/geo"
	"github.com/dgraph-io/s2cell/x"
)

// Encode is the sub-command invoked when running "s2cell encode".
var Encode x.SubCommand

var opt struct {
	lat     float64
	lon     float64
	level   int
	geojson string
}

func init() {
	Encode.Cmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode a lat/lon point as an S2 cell ID and token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Encode.EnvPrefix = "S2CELL_ENCODE"

	flag := Encode.Cmd.Flags()
	flag.Float64("lat", 0.0, "Latitude of the point, in degrees.")
	flag.Float64("lon", 0.0, "Longitude of the point, in degrees.")
	flag.Int("level", cell.MaxLevel, "Level of the cell, between 0 and 30.")
	flag.String("geojson", "",
		"GeoJSON Point to encode. Takes precedence over --lat and --lon.")
}

func run() error {
	opt.lat = Encode.GetFloat64("lat")
	opt.lon = Encode.GetFloat64("lon")
	opt.level = Encode.GetInt("level")
	opt.geojson = Encode.GetString("geojson")

	if opt.geojson != "" {
		var err error
		opt.lat, opt.lon, err = geo.PointFromGeoJSON([]byte(opt.geojson))
		if err != nil {
			return err
		}
	}

	ci, err := cell.FromLatLng(opt.lat, opt.lon, opt.level)
	if err != nil {
		return err
	}
	glog.V(2).Infof("Encoded (%.6f, %.6f) at level %d as %d",
		opt.lat, opt.lon, opt.level, uint64(ci))

	fmt.Printf("%d\t%s\n", uint64(ci), ci.Token())
	return nil
}
