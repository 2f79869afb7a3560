// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merge

import "errors"

var (
	// ErrDimensionMismatch reports inputs whose width, height or sample
	// count disagree.
	ErrDimensionMismatch = errors.New("merge: dimension mismatch")

	// ErrNotImplemented reports a reserved strategy.
	ErrNotImplemented = errors.New("merge: not implemented")

	// ErrUnknown reports a strategy or operator value outside the enumeration.
	ErrUnknown = errors.New("merge: unknown value")
)
