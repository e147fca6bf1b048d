// Copyright (c) 2025 Mert Karaca
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package sniff

import (
	"fmt"
	"io"
	"strings"
)

// HeaderBytes is how much of the file the sniffer looks at.
const HeaderBytes = 2

// TypeUnknown is the classification for prefixes matching no signature.
const TypeUnknown = "Unknown"

// HeaderInfo is the classified leading bytes of a file.
type HeaderInfo struct {
	Bytes []byte // 0-2 raw bytes actually read
	Type  string // predicted type label, or TypeUnknown
}

// Empty reports whether the source had no bytes at all.
func (h *HeaderInfo) Empty() bool {
	return len(h.Bytes) == 0
}

// ASCII renders the header bytes as printable ASCII, with a dot
// standing in for everything outside the printable range.
func (h *HeaderInfo) ASCII() string {
	var sb strings.Builder
	for _, b := range h.Bytes {
		if b >= 32 && b <= 126 {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Hex renders the header bytes as space-separated uppercase hex pairs,
// e.g. "0x4D 0x5A".
func (h *HeaderInfo) Hex() string {
	parts := make([]string, len(h.Bytes))
	for i, b := range h.Bytes {
		parts[i] = fmt.Sprintf("0x%02X", b)
	}
	return strings.Join(parts, " ")
}

// Decimal renders the header bytes as space-separated decimal values,
// e.g. "77 90".
func (h *HeaderInfo) Decimal() string {
	parts := make([]string, len(h.Bytes))
	for i, b := range h.Bytes {
		parts[i] = fmt.Sprintf("%d", b)
	}
	return strings.Join(parts, " ")
}

// ReadHeader reads up to HeaderBytes bytes from r and classifies them.
// An empty source yields an empty HeaderInfo without error; a one-byte
// source is rendered but classified TypeUnknown, since no signature can
// match a partial prefix.
func ReadHeader(r io.Reader) (*HeaderInfo, error) {
	buf := make([]byte, HeaderBytes)

	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}

	return &HeaderInfo{
		Bytes: buf[:n],
		Type:  Classify(buf[:n]),
	}, nil
}

// Classify maps a leading byte pair to its type label, or TypeUnknown.
func Classify(prefix []byte) string {
	if len(prefix) < HeaderBytes {
		return TypeUnknown
	}

	label := TypeUnknown
	registry.Walk(prefix[:HeaderBytes], func(l string) bool {
		label = l
		return true
	})
	return label
}
