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

// Package pixel provides helpers for flat sample buffers: a row-major 2D
// reshape and a content digest.
//
// A buffer is a flat sequence of 8-bit samples. ToRows splits it into
// height rows of equal length; ToFlat is its exact inverse:
//
//	rows, err := pixel.ToRows(buf, height)
//	// rows[i][j] == buf[i*width+j]
//	flat := pixel.ToFlat(rows) // bytes.Equal(flat, buf)
package pixel

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
)

// ErrShape reports a buffer that cannot be split into the requested rows.
var ErrShape = errors.New("pixel: buffer does not divide into rows")

// ToRows splits buf into height rows of len(buf)/height samples each.
// The rows are copies; writing to them does not modify buf.
func ToRows(buf []byte, height int) ([][]byte, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrShape, height)
	}
	if len(buf)%height != 0 {
		return nil, fmt.Errorf("%w: %d samples over %d rows", ErrShape, len(buf), height)
	}
	width := len(buf) / height
	if width == 0 {
		return make([][]byte, height), nil
	}
	return lo.Chunk(bytes.Clone(buf), width), nil
}

// ToFlat concatenates rows in order.
func ToFlat(rows [][]byte) []byte {
	return lo.Flatten(rows)
}

// Digest returns the xxhash64 fingerprint of buf.
func Digest(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}
