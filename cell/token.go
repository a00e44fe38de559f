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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxTokenLen is the length of a full cell ID in hex characters.
const maxTokenLen = 16

var tokenRegexp = regexp.MustCompile(`^[0-9a-fA-F]{1,16}$`)

// Token returns the token form of the cell ID: the 16 hex characters of the
// ID with trailing zeros stripped. The zero ID is rendered as "X" rather
// than as an empty string. Token is total; it does not require a valid ID.
func (ci CellID) Token() string {
	if ci == None {
		return "X"
	}
	return strings.TrimRight(fmt.Sprintf("%016x", uint64(ci)), "0")
}

// FromToken restores the stripped zeros and parses the token as hex. The
// tokens "x" and "X" map to the zero ID. Only the token format is checked
// here; use TokenIsValid to also check the decoded cell ID.
func FromToken(token string) (CellID, error) {
	if len(token) > maxTokenLen {
		return None, errors.Wrap(ErrInvalidToken,
			"cannot convert S2 token with length > 16 characters")
	}
	if token == "x" || token == "X" {
		return None, nil
	}
	if token == "" {
		return None, errors.Wrap(ErrInvalidToken, "cannot convert empty S2 token")
	}
	v, err := strconv.ParseUint(token+strings.Repeat("0", maxTokenLen-len(token)), 16, 64)
	if err != nil {
		return None, errors.Wrapf(ErrInvalidToken, "cannot convert S2 token %q", token)
	}
	return CellID(v), nil
}

// TokenIsValid reports whether the token is well formed and decodes to a
// valid cell ID. The "x"/"X" tokens are not valid: the ID they name is the
// reserved None.
func TokenIsValid(token string) bool {
	if !tokenRegexp.MatchString(token) {
		return false
	}
	ci, err := FromToken(token)
	return err == nil && ci.IsValid()
}

// CanonicalToken normalizes a token to the form Token produces: lower case,
// no surrounding whitespace, no trailing zeros, and "X" for the zero ID.
func CanonicalToken(token string) string {
	token = strings.ToLower(token)
	token = strings.TrimSpace(token)
	token = strings.TrimRight(token, "0")
	if token == "" || token == "x" {
		return "X"
	}
	return token
}

// validTokenCellID decodes a token and requires the result to be a valid
// cell ID. Shared by the token-level operations below.
func validTokenCellID(token string) (CellID, error) {
	if !TokenIsValid(token) {
		return None, errors.Wrapf(ErrInvalidToken, "cannot decode invalid S2 token: %q", token)
	}
	return FromToken(token)
}

// TokenLevel returns the level of the cell ID named by the token.
func TokenLevel(token string) (int, error) {
	ci, err := validTokenCellID(token)
	if err != nil {
		return 0, err
	}
	return ci.Level()
}

// TokenParent returns the token of the ancestor at the given level.
func TokenParent(token string, level int) (string, error) {
	ci, err := validTokenCellID(token)
	if err != nil {
		return "", err
	}
	p, err := ci.Parent(level)
	if err != nil {
		return "", err
	}
	return p.Token(), nil
}

// TokenImmediateParent returns the token of the parent one level up.
func TokenImmediateParent(token string) (string, error) {
	ci, err := validTokenCellID(token)
	if err != nil {
		return "", err
	}
	p, err := ci.ImmediateParent()
	if err != nil {
		return "", err
	}
	return p.Token(), nil
}
