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

package bmp

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the file extension required on every path the codec reads
// or writes. The check is a format gate, not a content sniff.
const Extension = ".bmp"

// HasExtension reports whether path ends in Extension, ignoring case.
func HasExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// Decode parses a complete bitmap file held in memory.
func Decode(data []byte) (Image, error) {
	var h Header
	if err := h.UnmarshalBinary(data); err != nil {
		return Image{}, &Error{Op: "decode", Kind: ErrInvalidFormat, Err: err}
	}
	if h.Offset < HeaderSize || uint64(h.Offset) > uint64(len(data)) {
		return Image{}, &Error{
			Op:   "decode",
			Kind: ErrMalformedHeader,
			Err:  fmt.Errorf("pixel offset %d outside [%d, %d]", h.Offset, HeaderSize, len(data)),
		}
	}
	return Image{header: h, pixels: bytes.Clone(data[h.Offset:])}, nil
}

// Encode serializes img into a new byte slice.
func Encode(img Image) ([]byte, error) {
	if err := checkOffset(img.header); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(int(img.header.Offset) + len(img.pixels))
	if err := EncodeTo(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the header, the zero fill up to the header's Offset and
// the payload to w. Nothing is written if the header is malformed.
func EncodeTo(w io.Writer, img Image) error {
	h := img.header
	if err := checkOffset(h); err != nil {
		return err
	}
	hdr, _ := h.MarshalBinary()
	if _, err := w.Write(hdr); err != nil {
		return &Error{Op: "encode", Kind: ErrIO, Err: err}
	}
	if gap := int64(h.Offset) - HeaderSize; gap > 0 {
		if _, err := io.CopyN(w, zeros{}, gap); err != nil {
			return &Error{Op: "encode", Kind: ErrIO, Err: err}
		}
	}
	if _, err := w.Write(img.pixels); err != nil {
		return &Error{Op: "encode", Kind: ErrIO, Err: err}
	}
	return nil
}

func checkOffset(h Header) error {
	if h.Offset < HeaderSize {
		return &Error{
			Op:   "encode",
			Kind: ErrMalformedHeader,
			Err:  fmt.Errorf("pixel offset %d is inside the %d-byte header", h.Offset, HeaderSize),
		}
	}
	return nil
}

// zeros is an endless reader of zero bytes.
type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// Codec reads and writes bitmap files, logging every failure it returns.
type Codec struct {
	log *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger used for failures. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Codec) {
		c.log = l
	}
}

// NewCodec returns a Codec configured by opts.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) logger() *slog.Logger {
	if c == nil || c.log == nil {
		return slog.Default()
	}
	return c.log
}

// ReadFile decodes the bitmap stored at path. On failure it returns the
// zero Image and an *Error.
func (c *Codec) ReadFile(path string) (Image, error) {
	img, err := readFile(path)
	if err != nil {
		c.logger().Warn("bitmap read failed", "path", path, "err", err)
		return Image{}, err
	}
	c.logger().Debug("bitmap read",
		"path", path,
		"width", img.header.Width,
		"height", img.header.Height,
		"offset", img.header.Offset,
		"payload", len(img.pixels))
	return img, nil
}

func readFile(path string) (Image, error) {
	if !HasExtension(path) {
		return Image{}, &Error{Op: "read", Path: path, Kind: ErrInvalidFormat,
			Err: fmt.Errorf("extension %q is not %s", filepath.Ext(path), Extension)}
	}
	fi, err := os.Stat(path)
	if err != nil {
		return Image{}, &Error{Op: "read", Path: path, Kind: ErrInvalidFormat, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return Image{}, &Error{Op: "read", Path: path, Kind: ErrInvalidFormat,
			Err: errors.New("not a regular file")}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, &Error{Op: "read", Path: path, Kind: ErrIO, Err: err}
	}
	img, err := Decode(data)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Op, e.Path = "read", path
		}
		return Image{}, err
	}
	return img, nil
}

// WriteFile encodes img to path and returns path. The header and the
// extension are validated before the file is created, so a rejected image
// never leaves a file behind.
func (c *Codec) WriteFile(img Image, path string) (string, error) {
	if err := writeFile(img, path); err != nil {
		c.logger().Warn("bitmap write failed", "path", path, "err", err)
		return "", err
	}
	c.logger().Debug("bitmap written", "path", path, "bytes", int(img.header.Offset)+len(img.pixels))
	return path, nil
}

func writeFile(img Image, path string) (err error) {
	if !HasExtension(path) {
		return &Error{Op: "write", Path: path, Kind: ErrInvalidFormat,
			Err: fmt.Errorf("extension %q is not %s", filepath.Ext(path), Extension)}
	}
	if err := checkOffset(img.header); err != nil {
		e := err.(*Error)
		e.Op, e.Path = "write", path
		return e
	}

	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "write", Path: path, Kind: ErrIO, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{Op: "write", Path: path, Kind: ErrIO, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	if err := EncodeTo(w, img); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Op, e.Path = "write", path
		}
		return err
	}
	if err := w.Flush(); err != nil {
		return &Error{Op: "write", Path: path, Kind: ErrIO, Err: err}
	}
	return nil
}

var defaultCodec = NewCodec()

// ReadFile decodes the bitmap at path using a Codec that logs to slog.Default().
func ReadFile(path string) (Image, error) {
	return defaultCodec.ReadFile(path)
}

// WriteFile encodes img to path using a Codec that logs to slog.Default().
func WriteFile(img Image, path string) (string, error) {
	return defaultCodec.WriteFile(img, path)
}
