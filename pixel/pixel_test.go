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

package pixel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	return buf
}

func TestToRows_Layout(t *testing.T) {
	buf := ramp(12)
	rows, err := ToRows(buf, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	width := 4
	for i, row := range rows {
		require.Len(t, row, width)
		for j := range row {
			if row[j] != buf[i*width+j] {
				t.Errorf("rows[%d][%d]: got %d, want %d", i, j, row[j], buf[i*width+j])
			}
		}
	}
}

func TestToFlat_Inverse(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		height int
	}{
		{"single_row", 9, 1},
		{"square", 16, 4},
		{"one_column", 5, 5},
		{"wide", 1024, 8},
		{"empty", 0, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := ramp(tc.n)
			rows, err := ToRows(buf, tc.height)
			require.NoError(t, err)
			require.Len(t, rows, tc.height)
			flat := ToFlat(rows)
			if !bytes.Equal(flat, buf) {
				t.Errorf("ToFlat(ToRows(b, %d)) = %v, want %v", tc.height, flat, buf)
			}
		})
	}
}

func TestToRows_DoesNotAlias(t *testing.T) {
	buf := ramp(6)
	rows, err := ToRows(buf, 2)
	require.NoError(t, err)
	rows[0][0] = 255
	assert.Equal(t, byte(0), buf[0])
}

func TestToRows_BadShape(t *testing.T) {
	_, err := ToRows(ramp(10), 3)
	require.ErrorIs(t, err, ErrShape)

	_, err = ToRows(ramp(10), 0)
	require.ErrorIs(t, err, ErrShape)
}

func TestDigest(t *testing.T) {
	a := ramp(100)
	b := bytes.Clone(a)
	assert.Equal(t, Digest(a), Digest(b))

	b[50]++
	assert.NotEqual(t, Digest(a), Digest(b))
}
