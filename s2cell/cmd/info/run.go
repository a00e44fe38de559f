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

package info

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/s2cell/cell"
	"github.com/dgraph-io/s2cell/geo"
	"github.com/dgraph-io/s2cell/x"
)

// Info is the sub-command invoked when running "s2cell info".
var Info x.SubCommand

var opt struct {
	token  string
	cellID string
}

func init() {
	Info.Cmd = &cobra.Command{
		Use:   "info",
		Short: "Show level, token, ancestry and size of an S2 cell",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Info.EnvPrefix = "S2CELL_INFO"

	flag := Info.Cmd.Flags()
	flag.String("token", "", "Token of the cell to describe.")
	flag.String("cell-id", "",
		"Decimal cell ID of the cell to describe. Takes precedence over --token.")
}

func run() error {
	opt.token = Info.GetString("token")
	opt.cellID = Info.GetString("cell-id")

	var ci cell.CellID
	switch {
	case opt.cellID != "":
		id, err := strconv.ParseUint(opt.cellID, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing cell ID %q", opt.cellID)
		}
		ci = cell.CellID(id)
	case opt.token != "":
		var err error
		ci, err = cell.FromToken(opt.token)
		if err != nil {
			return err
		}
	default:
		return errors.New("one of --token or --cell-id must be set")
	}
	if !ci.IsValid() {
		return errors.Wrapf(cell.ErrInvalidCellID, "%d", uint64(ci))
	}

	level, err := ci.Level()
	if err != nil {
		return err
	}
	lat, lon, err := ci.LatLng()
	if err != nil {
		return err
	}

	fmt.Printf("Cell ID:     %d\n", uint64(ci))
	fmt.Printf("Token:       %s\n", ci.Token())
	fmt.Printf("Level:       %d\n", level)
	fmt.Printf("Center:      %.12f, %.12f\n", lat, lon)
	fmt.Printf("Edge length: %s\n", geo.CellEdgeLength(level))
	if level > 0 {
		parent, err := ci.ImmediateParent()
		if err != nil {
			return err
		}
		fmt.Printf("Parent:      %s\n", parent.Token())
	}
	return nil
}
