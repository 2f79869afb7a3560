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

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ajroetker/go-bmpmerge/bmp"
	"github.com/ajroetker/go-bmpmerge/pixel"
	"github.com/ajroetker/go-bmpmerge/workerpool"
)

// DefaultBlockSize is the number of samples a Parallel worker processes per
// inner step. Blocks subdivide a worker's range and never cross it.
const DefaultBlockSize = 32 << 10

// Engine runs blends. It is safe for concurrent use; the worker pool used by
// the Parallel strategy is created on first use and shared between calls.
type Engine struct {
	workers   int
	blockSize int
	log       *slog.Logger

	poolOnce sync.Once
	pool     *workerpool.Pool
	ownsPool bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the size of the worker pool. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithPool makes the engine use an existing pool. The engine does not close it.
func WithPool(p *workerpool.Pool) Option {
	return func(e *Engine) {
		e.pool = p
	}
}

// WithBlockSize sets the batch size workers claim in the Parallel strategy.
func WithBlockSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.blockSize = n
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{blockSize: DefaultBlockSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close releases the worker pool if the engine created it. It must not run
// concurrently with Blend or BlendBuffers: a Parallel blend in flight may
// still be handing work to the pool.
func (e *Engine) Close() {
	if e.ownsPool {
		e.pool.Close()
	}
}

// Workers returns the number of workers the Parallel strategy uses.
func (e *Engine) Workers() int {
	return e.workerPool().NumWorkers()
}

func (e *Engine) workerPool() *workerpool.Pool {
	e.poolOnce.Do(func() {
		if e.pool == nil {
			e.pool = workerpool.New(e.workers)
			e.ownsPool = true
		}
	})
	return e.pool
}

func (e *Engine) logger() *slog.Logger {
	if e.log == nil {
		return slog.Default()
	}
	return e.log
}

// CheckDimensions returns ErrDimensionMismatch unless a and b agree on
// width, height and payload length.
func CheckDimensions(a, b bmp.Image) error {
	ha, hb := a.Header(), b.Header()
	if ha.Width != hb.Width || ha.Height != hb.Height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, ha.Width, ha.Height, hb.Width, hb.Height)
	}
	if na, nb := len(a.Pixels()), len(b.Pixels()); na != nb {
		return fmt.Errorf("%w: %d vs %d samples", ErrDimensionMismatch, na, nb)
	}
	return nil
}

// Blend combines the payloads of a and b sample by sample. The returned
// buffer has the length of the inputs. Nothing is computed when the images
// disagree in size.
func (e *Engine) Blend(s Strategy, op Operator, a, b bmp.Image, weight float64) ([]byte, error) {
	if err := CheckDimensions(a, b); err != nil {
		return nil, err
	}
	return e.BlendBuffers(s, op, a.Pixels(), b.Pixels(), a.Header().Rows(), weight)
}

// BlendBuffers is Blend on raw sample buffers. rows is the row count used by
// CacheReshaped; other strategies ignore it.
func (e *Engine) BlendBuffers(s Strategy, op Operator, a, b []byte, rows int, weight float64) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d samples", ErrDimensionMismatch, len(a), len(b))
	}
	k, err := op.kernel(weight)
	if err != nil {
		return nil, err
	}

	var out []byte
	switch s {
	case Sequential:
		out = sequential(k, a, b)
	case CacheReshaped:
		out, err = cacheReshaped(k, a, b, rows)
	case Parallel:
		out = e.parallel(k, a, b)
	case Optimized:
		err = fmt.Errorf("%w: %s strategy (cpu supports %s)", ErrNotImplemented, s, CurrentLevel())
	default:
		err = fmt.Errorf("%w: %s", ErrUnknown, s)
	}
	if err != nil {
		return nil, err
	}

	e.logger().Debug("blend done", "strategy", s, "operator", op, "weight", weight, "samples", len(out))
	return out, nil
}

func sequential(k kernel, a, b []byte) []byte {
	out := make([]byte, len(a))
	k(out, a, b)
	return out
}

// cacheReshaped blends rows of len(a)/rows samples. Samples past the last
// full row, if any, are blended as a flat tail.
func cacheReshaped(k kernel, a, b []byte, rows int) ([]byte, error) {
	n := len(a)
	body := 0
	if rows > 0 {
		body = n - n%rows
	}

	out := make([]byte, 0, n)
	if body > 0 {
		ra, err := pixel.ToRows(a[:body], rows)
		if err != nil {
			return nil, err
		}
		rb, err := pixel.ToRows(b[:body], rows)
		if err != nil {
			return nil, err
		}
		ro := make([][]byte, len(ra))
		for y := range ra {
			ro[y] = make([]byte, len(ra[y]))
			k(ro[y], ra[y], rb[y])
		}
		out = append(out, pixel.ToFlat(ro)...)
	}

	tail := make([]byte, n-body)
	k(tail, a[body:], b[body:])
	return append(out, tail...), nil
}

func (e *Engine) parallel(k kernel, a, b []byte) []byte {
	out := make([]byte, len(a))
	e.workerPool().ParallelForBatched(len(out), e.blockSize, func(start, end int) {
		k(out[start:end], a[start:end], b[start:end])
	})
	return out
}
