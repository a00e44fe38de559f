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

package decode

import (
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/s2cell/cell"
	"github.com/dgraph-io/s2cell/geo"
	"github.com/dgraph-io/s2cell/x"
)

// Decode is the sub-command invoked when running "s2cell decode".
var Decode x.SubCommand

var opt struct {
	token   string
	cellID  string
	geojson bool
}

func init() {
	Decode.Cmd = &cobra.Command{
		Use:   "decode",
		Short: "Decode an S2 cell ID or token to its center lat/lon point",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Decode.EnvPrefix = "S2CELL_DECODE"

	flag := Decode.Cmd.Flags()
	flag.String("token", "", "Token of the cell to decode.")
	flag.String("cell-id", "",
		"Decimal cell ID of the cell to decode. Takes precedence over --token.")
	flag.Bool("geojson", false, "Print the center as a GeoJSON Point.")
}

func run() error {
	opt.token = Decode.GetString("token")
	opt.cellID = Decode.GetString("cell-id")
	opt.geojson = Decode.GetBool("geojson")

	var ci cell.CellID
	switch {
	case opt.cellID != "":
		id, err := strconv.ParseUint(opt.cellID, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing cell ID %q", opt.cellID)
		}
		ci = cell.CellID(id)
		if !ci.IsValid() {
			return errors.Wrapf(cell.ErrInvalidCellID, "%d", id)
		}
	case opt.token != "":
		var err error
		ci, err = cell.FromToken(opt.token)
		if err != nil {
			return err
		}
		if !ci.IsValid() {
			return errors.Wrapf(cell.ErrInvalidToken, "%q", opt.token)
		}
	default:
		return errors.New("one of --token or --cell-id must be set")
	}

	lat, lon, err := ci.LatLng()
	if err != nil {
		return err
	}
	glog.V(2).Infof("Decoded %d to (%.12f, %.12f)", uint64(ci), lat, lon)

	if opt.geojson {
		b, err := geo.PointToGeoJSON(lat, lon)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", b)
		return nil
	}
	fmt.Printf("%.12f\t%.12f\n", lat, lon)
	return nil
}
