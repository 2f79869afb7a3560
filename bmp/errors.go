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
	"errors"
	"strings"
)

var (
	// ErrInvalidFormat reports a wrong file extension or a source that is
	// not a readable regular file.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrIO reports an open, read or write failure.
	ErrIO = errors.New("i/o failure")

	// ErrMalformedHeader reports a header whose Offset lies before the end
	// of the header or past the end of the data.
	ErrMalformedHeader = errors.New("malformed header")
)

// Error describes a failed codec operation.
type Error struct {
	Op   string // "read", "write", "decode" or "encode"
	Path string // empty for in-memory operations
	Kind error  // one of ErrInvalidFormat, ErrIO, ErrMalformedHeader
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("bmp: ")
	sb.WriteString(e.Op)
	if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Kind.Error())
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
