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

import "github.com/pkg/errors"

// Every failure returned by this package wraps one of the sentinel errors
// below, so callers can classify with errors.Is. All of them indicate a
// caller input defect; none are retryable.
var (
	// ErrInvalidLevel indicates a level outside the range [0, MaxLevel].
	ErrInvalidLevel = errors.New("s2 level must be >= 0 and <= 30")

	// ErrInvalidCellID indicates a cell ID with bad face bits or a missing
	// trailing bit.
	ErrInvalidCellID = errors.New("invalid S2 cell ID")

	// ErrInvalidToken indicates a malformed token: non-hex characters, more
	// than 16 significant characters, or an empty string.
	ErrInvalidToken = errors.New("invalid S2 token")

	// ErrTruncation indicates a requested ancestor level finer than the
	// level of the cell itself.
	ErrTruncation = errors.New("requested parent level exceeds cell level")

	// ErrDomain indicates a point with no dominant axis (the zero vector).
	ErrDomain = errors.New("zero vector has no dominant axis")
)
