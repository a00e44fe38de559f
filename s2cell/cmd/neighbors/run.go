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

package neighbors

import (
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/s2cell/cell"
	"github.com/dgraph-io/s2cell/x"
)

// Neighbors is the sub-command invoked when running "s2cell neighbors".
var Neighbors x.SubCommand

var opt struct {
	token  string
	cellID string
	all    bool
	level  int
}

func init() {
	Neighbors.Cmd = &cobra.Command{
		Use:   "neighbors",
		Short: "List the neighbors of an S2 cell",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Neighbors.EnvPrefix = "S2CELL_NEIGHBORS"

	flag := Neighbors.Cmd.Flags()
	flag.String("token", "", "Token of the cell.")
	flag.String("cell-id", "",
		"Decimal cell ID of the cell. Takes precedence over --token.")
	flag.Bool("all", false,
		"List edge and vertex neighbors instead of edge neighbors only.")
	flag.Int("level", -1,
		"Level of the neighbors with --all. Defaults to the cell's own level.")
}

func run() error {
	opt.token = Neighbors.GetString("token")
	opt.cellID = Neighbors.GetString("cell-id")
	opt.all = Neighbors.GetBool("all")
	opt.level = Neighbors.GetInt("level")

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

	var nbrs []cell.CellID
	if opt.all {
		level := opt.level
		if level < 0 {
			var err error
			level, err = ci.Level()
			if err != nil {
				return err
			}
		}
		var err error
		nbrs, err = ci.AllNeighbors(level)
		if err != nil {
			return err
		}
	} else {
		edge, err := ci.EdgeNeighbors()
		if err != nil {
			return err
		}
		nbrs = edge[:]
	}
	glog.V(2).Infof("Cell %d has %d neighbors", uint64(ci), len(nbrs))

	for _, nbr := range nbrs {
		fmt.Printf("%d\t%s\n", uint64(nbr), nbr.Token())
	}
	return nil
}
