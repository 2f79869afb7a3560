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
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the size in bytes of the serialized Header.
	HeaderSize = 54

	// Signature is the magic marker "BM" read as a little-endian uint16.
	Signature uint16 = 0x4D42

	// InfoHeaderSize is the size of the BITMAPINFOHEADER sub-header.
	InfoHeaderSize = 40
)

// Header is the fixed 54-byte bitmap header. Fields are kept verbatim so
// that a decoded header is written back byte for byte.
type Header struct {
	Signature       uint16 // offset 0
	FileSize        uint32 // offset 2
	Reserved1       uint16 // offset 6
	Reserved2       uint16 // offset 8
	Offset          uint32 // offset 10, start of pixel payload
	InfoSize        uint32 // offset 14, not validated
	Width           int32  // offset 18
	Height          int32  // offset 22, sign is kept but treated as a count
	Planes          uint16 // offset 26
	BitsPerPixel    uint16 // offset 28
	Compression     uint32 // offset 30, no decompression is performed
	ImageSize       uint32 // offset 34
	XPixelsPerMeter int32  // offset 38
	YPixelsPerMeter int32  // offset 42
	ColorsUsed      uint32 // offset 46
	ImportantColors uint32 // offset 50
}

// NewHeader returns a header for an uncompressed image whose payload of
// payloadLen bytes directly follows the header.
func NewHeader(width, height int32, bitsPerPixel uint16, payloadLen int) Header {
	return Header{
		Signature:    Signature,
		FileSize:     uint32(HeaderSize + payloadLen),
		Offset:       HeaderSize,
		InfoSize:     InfoHeaderSize,
		Width:        width,
		Height:       height,
		Planes:       1,
		BitsPerPixel: bitsPerPixel,
		ImageSize:    uint32(payloadLen),
	}
}

// Valid reports whether the header carries the "BM" signature.
func (h Header) Valid() bool {
	return h.Signature == Signature
}

// Rows returns the number of pixel rows, ignoring the top-down sign of Height.
func (h Header) Rows() int {
	if h.Height < 0 {
		return -int(h.Height)
	}
	return int(h.Height)
}

// AppendBinary appends the 54-byte little-endian encoding of h to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	le := binary.LittleEndian
	b = le.AppendUint16(b, h.Signature)
	b = le.AppendUint32(b, h.FileSize)
	b = le.AppendUint16(b, h.Reserved1)
	b = le.AppendUint16(b, h.Reserved2)
	b = le.AppendUint32(b, h.Offset)
	b = le.AppendUint32(b, h.InfoSize)
	b = le.AppendUint32(b, uint32(h.Width))
	b = le.AppendUint32(b, uint32(h.Height))
	b = le.AppendUint16(b, h.Planes)
	b = le.AppendUint16(b, h.BitsPerPixel)
	b = le.AppendUint32(b, h.Compression)
	b = le.AppendUint32(b, h.ImageSize)
	b = le.AppendUint32(b, uint32(h.XPixelsPerMeter))
	b = le.AppendUint32(b, uint32(h.YPixelsPerMeter))
	b = le.AppendUint32(b, h.ColorsUsed)
	b = le.AppendUint32(b, h.ImportantColors)
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// UnmarshalBinary decodes the first HeaderSize bytes of data into h.
// Trailing bytes are ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("header needs %d bytes, got %d", HeaderSize, len(data))
	}
	le := binary.LittleEndian
	*h = Header{
		Signature:       le.Uint16(data[0:2]),
		FileSize:        le.Uint32(data[2:6]),
		Reserved1:       le.Uint16(data[6:8]),
		Reserved2:       le.Uint16(data[8:10]),
		Offset:          le.Uint32(data[10:14]),
		InfoSize:        le.Uint32(data[14:18]),
		Width:           int32(le.Uint32(data[18:22])),
		Height:          int32(le.Uint32(data[22:26])),
		Planes:          le.Uint16(data[26:28]),
		BitsPerPixel:    le.Uint16(data[28:30]),
		Compression:     le.Uint32(data[30:34]),
		ImageSize:       le.Uint32(data[34:38]),
		XPixelsPerMeter: int32(le.Uint32(data[38:42])),
		YPixelsPerMeter: int32(le.Uint32(data[42:46])),
		ColorsUsed:      le.Uint32(data[46:50]),
		ImportantColors: le.Uint32(data[50:54]),
	}
	return nil
}
