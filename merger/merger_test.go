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

package merger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bmpmerge/bmp"
	"github.com/ajroetker/go-bmpmerge/merge"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	s := New(WithLogger(quietLogger()))
	t.Cleanup(s.Close)
	return s
}

func writeGray(t *testing.T, path string, width, height int32, pixels []byte) {
	t.Helper()
	c := bmp.NewCodec(bmp.WithLogger(quietLogger()))
	img := bmp.New(bmp.NewHeader(width, height, 8, len(pixels)), pixels)
	_, err := c.WriteFile(img, path)
	require.NoError(t, err)
}

func TestMerge_Scenario(t *testing.T) {
	dir := t.TempDir()
	pa, pb := filepath.Join(dir, "a.bmp"), filepath.Join(dir, "b.bmp")
	writeGray(t, pa, 2, 2, []byte{10, 20, 30, 40})
	writeGray(t, pb, 2, 2, []byte{50, 60, 70, 80})

	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	tests := []struct {
		op   merge.Operator
		want []byte
	}{
		{merge.Average, []byte{30, 40, 50, 60}},
		{merge.Max, []byte{50, 60, 70, 80}},
	}
	svc := newTestService(t)
	for _, tc := range tests {
		for _, s := range merge.Implemented() {
			t.Run(tc.op.String()+"_"+s.String(), func(t *testing.T) {
				out := filepath.Join(dir, tc.op.String()+"_"+s.String()+".bmp")
				got, err := svc.Merge(s, tc.op, pa, pb, out, DefaultWeight)
				require.NoError(t, err)
				assert.True(t, filepath.IsAbs(got))
				assert.Equal(t, filepath.Join(wantDir, filepath.Base(out)), got)

				img, err := bmp.ReadFile(got)
				require.NoError(t, err)
				assert.Equal(t, tc.want, img.Pixels())

				src, err := bmp.ReadFile(pa)
				require.NoError(t, err)
				assert.Equal(t, src.Header(), img.Header(), "output header comes from the first input")
			})
		}
	}
}

func TestMerge_RelativeOutput(t *testing.T) {
	dir := t.TempDir()
	pa := filepath.Join(dir, "a.bmp")
	writeGray(t, pa, 1, 1, []byte{9})
	t.Chdir(dir)

	got, err := newTestService(t).Merge(merge.Sequential, merge.Max, pa, pa, "rel.bmp", 0.5)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "rel.bmp", filepath.Base(got))
}

func TestMerge_DimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	pa, pb := filepath.Join(dir, "a.bmp"), filepath.Join(dir, "b.bmp")
	writeGray(t, pa, 10, 10, make([]byte, 100))
	writeGray(t, pb, 10, 20, make([]byte, 200))
	out := filepath.Join(dir, "out.bmp")

	got, err := newTestService(t).Merge(merge.Parallel, merge.Average, pa, pb, out, 0.5)
	require.ErrorIs(t, err, merge.ErrDimensionMismatch)
	assert.Empty(t, got)
	assert.NoFileExists(t, out)
}

func TestMerge_InvalidInputs(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.bmp")
	writeGray(t, good, 2, 1, []byte{1, 2})
	png := filepath.Join(dir, "b.png")
	require.NoError(t, os.WriteFile(png, []byte("png"), 0o644))

	tests := []struct {
		name string
		a, b string
		out  string
		kind error
	}{
		{"first_extension", png, good, "out1.bmp", bmp.ErrInvalidFormat},
		{"second_extension", good, png, "out2.bmp", bmp.ErrInvalidFormat},
		{"missing", good, filepath.Join(dir, "none.bmp"), "out3.bmp", bmp.ErrInvalidFormat},
		{"output_extension", good, good, "out4.png", bmp.ErrInvalidFormat},
	}
	svc := newTestService(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := filepath.Join(dir, tc.out)
			got, err := svc.Merge(merge.Sequential, merge.Average, tc.a, tc.b, out, 0.5)
			require.ErrorIs(t, err, tc.kind)
			assert.Empty(t, got)
			assert.NoFileExists(t, out)
		})
	}
}

func TestMerge_NotImplemented(t *testing.T) {
	dir := t.TempDir()
	pa := filepath.Join(dir, "a.bmp")
	writeGray(t, pa, 2, 2, []byte{1, 2, 3, 4})
	out := filepath.Join(dir, "out.bmp")

	_, err := newTestService(t).Merge(merge.Optimized, merge.Average, pa, pa, out, 0.5)
	require.ErrorIs(t, err, merge.ErrNotImplemented)
	assert.NoFileExists(t, out)
}

func TestMerge_MalformedSourceOffset(t *testing.T) {
	dir := t.TempDir()
	pa := filepath.Join(dir, "a.bmp")
	h := bmp.NewHeader(1, 1, 8, 1)
	h.Offset = 20
	data, err := h.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(pa, append(data, 7), 0o644))

	out := filepath.Join(dir, "out.bmp")
	_, err = newTestService(t).Merge(merge.Sequential, merge.Max, pa, pa, out, 0.5)
	require.ErrorIs(t, err, bmp.ErrMalformedHeader)
	assert.NoFileExists(t, out)
}

func TestMerge_MissingOutputDir(t *testing.T) {
	dir := t.TempDir()
	pa := filepath.Join(dir, "a.bmp")
	writeGray(t, pa, 1, 1, []byte{3})
	out := filepath.Join(dir, "missing", "out.bmp")

	got, err := newTestService(t).Merge(merge.Sequential, merge.Max, pa, pa, out, 0.5)
	require.ErrorIs(t, err, bmp.ErrIO)
	assert.Empty(t, got)
	assert.NoDirExists(t, filepath.Dir(out))
}

func TestMerge_SymlinkedOutput(t *testing.T) {
	dir := t.TempDir()
	pa := filepath.Join(dir, "a.bmp")
	writeGray(t, pa, 1, 1, []byte{3})

	target := filepath.Join(t.TempDir(), "target.bmp")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	link := filepath.Join(dir, "link.bmp")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)

	got, err := newTestService(t).Merge(merge.Sequential, merge.Max, pa, pa, link, 0.5)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	img, err := bmp.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, img.Pixels())
}
