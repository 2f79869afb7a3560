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

// Package merger loads two bitmaps, blends them and writes the result.
//
//	svc := merger.New()
//	defer svc.Close()
//	out, err := svc.Merge(merge.Parallel, merge.Average, "a.bmp", "b.bmp", "out.bmp", 0.5)
//
// The output takes its header from the first input. The output path is
// resolved and both inputs decoded before any blending, and the output file
// is only created once the blend has succeeded, so a failed merge leaves the
// output path untouched unless the write itself fails.
package merger

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ajroetker/go-bmpmerge/bmp"
	"github.com/ajroetker/go-bmpmerge/merge"
	"github.com/ajroetker/go-bmpmerge/pixel"
)

// DefaultWeight is the blend weight used when the caller has no preference.
const DefaultWeight = 0.5

// Service merges bitmap files.
type Service struct {
	codec     *bmp.Codec
	engine    *merge.Engine
	ownEngine bool
	log       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithEngine makes the service use an existing engine. The service does not close it.
func WithEngine(e *merge.Engine) Option {
	return func(s *Service) {
		s.engine = e
	}
}

// WithCodec sets the codec used to read and write files.
func WithCodec(c *bmp.Codec) Option {
	return func(s *Service) {
		s.codec = c
	}
}

// WithLogger sets the logger of the service and, unless they were supplied
// explicitly, of the codec and engine it creates.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// New returns a Service configured by opts.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.codec == nil {
		s.codec = bmp.NewCodec(bmp.WithLogger(s.log))
	}
	if s.engine == nil {
		s.engine = merge.New(merge.WithLogger(s.log))
		s.ownEngine = true
	}
	return s
}

// Close releases the engine if the service created it.
func (s *Service) Close() {
	if s.ownEngine {
		s.engine.Close()
	}
}

// Merge blends the bitmaps at pathA and pathB and writes the result to
// outPath, returning its absolute, symlink-free path.
func (s *Service) Merge(strategy merge.Strategy, op merge.Operator, pathA, pathB, outPath string, weight float64) (string, error) {
	log := s.log.With("strategy", strategy, "operator", op)

	if !bmp.HasExtension(outPath) {
		err := &bmp.Error{Op: "write", Path: outPath, Kind: bmp.ErrInvalidFormat,
			Err: fmt.Errorf("extension %q is not %s", filepath.Ext(outPath), bmp.Extension)}
		log.Warn("merge rejected", "err", err)
		return "", err
	}
	abs, err := canonical(outPath)
	if err != nil {
		log.Warn("merge rejected", "err", err)
		return "", err
	}

	a, err := s.codec.ReadFile(pathA)
	if err != nil {
		return "", err
	}
	b, err := s.codec.ReadFile(pathB)
	if err != nil {
		return "", err
	}
	log.Debug("inputs decoded", "a", pathA, "b", pathB, "width", a.Width(), "height", a.Height())

	pixels, err := s.engine.Blend(strategy, op, a, b, weight)
	if err != nil {
		log.Warn("blend failed", "a", pathA, "b", pathB, "err", err)
		return "", err
	}

	out := bmp.New(a.Header(), pixels)
	if _, err := s.codec.WriteFile(out, outPath); err != nil {
		return "", err
	}
	log.Info("merge written", "path", abs, "samples", len(pixels), "digest", fmt.Sprintf("%016x", pixel.Digest(pixels)))
	return abs, nil
}

// canonical returns the absolute, symlink-free path a write to path would
// land on. The parent directory must exist; the file itself need not.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &bmp.Error{Op: "write", Path: path, Kind: bmp.ErrIO, Err: err}
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", &bmp.Error{Op: "write", Path: path, Kind: bmp.ErrIO, Err: err}
	}
	target := filepath.Join(dir, filepath.Base(abs))
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		return resolved, nil
	}
	return target, nil
}
