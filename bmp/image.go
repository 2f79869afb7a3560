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

import "bytes"

// Image is a bitmap header together with the pixel payload it describes.
// The zero Image is the empty result of a failed read.
type Image struct {
	header Header
	pixels []byte
}

// New returns an image owning a copy of pixels.
func New(h Header, pixels []byte) Image {
	return Image{header: h, pixels: bytes.Clone(pixels)}
}

// Header returns the image header.
func (img Image) Header() Header {
	return img.header
}

// Pixels returns the pixel payload. The slice must not be modified.
func (img Image) Pixels() []byte {
	return img.pixels
}

// SetHeader replaces the header. Used to stage an output image.
func (img *Image) SetHeader(h Header) {
	img.header = h
}

// SetPixels replaces the payload with a copy of pixels.
func (img *Image) SetPixels(pixels []byte) {
	img.pixels = bytes.Clone(pixels)
}

// Width returns the header width.
func (img Image) Width() int {
	return int(img.header.Width)
}

// Height returns the header height as stored, including its sign.
func (img Image) Height() int {
	return int(img.header.Height)
}

// Empty reports whether img carries neither a header nor a payload.
func (img Image) Empty() bool {
	return img.header == Header{} && len(img.pixels) == 0
}

// Equal reports whether both images have identical headers and payloads.
func (img Image) Equal(other Image) bool {
	return img.header == other.header && bytes.Equal(img.pixels, other.pixels)
}
