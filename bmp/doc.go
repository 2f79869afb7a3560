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

// Package bmp reads and writes uncompressed bitmap files as a fixed 54-byte
// header followed by a raw pixel payload.
//
// The codec does not interpret the payload: it is kept as a flat byte
// sequence starting at the header's Offset field. Bytes between the end of
// the header and Offset are not tracked and are written back as zeros.
//
// # Layout
//
//	[0, 54)        Header, little-endian, packed
//	[54, Offset)   zero fill on write, ignored on read
//	[Offset, EOF)  pixel payload
//
// # Usage
//
//	img, err := bmp.ReadFile("a.bmp")
//	if err != nil {
//	    return err
//	}
//	img.SetPixels(process(img.Pixels()))
//	path, err := bmp.WriteFile(img, "out.bmp")
//
// Failures are logged where they happen and returned as *Error, whose kind
// can be matched with errors.Is against ErrInvalidFormat, ErrIO and
// ErrMalformedHeader. A failed read always returns the zero Image.
package bmp
