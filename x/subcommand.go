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

package x

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SubCommand ties a cobra command to the viper instance its flags are bound
// to, so flag values can be read back after env and config resolution.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// GetString reads a resolved string flag.
func (s *SubCommand) GetString(name string) string {
	return s.Conf.GetString(name)
}

// GetInt reads a resolved int flag.
func (s *SubCommand) GetInt(name string) int {
	return s.Conf.GetInt(name)
}

// GetBool reads a resolved bool flag.
func (s *SubCommand) GetBool(name string) bool {
	return s.Conf.GetBool(name)
}

// GetFloat64 reads a resolved float64 flag.
func (s *SubCommand) GetFloat64(name string) float64 {
	return s.Conf.GetFloat64(name)
}
