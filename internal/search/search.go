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
package search

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// DefaultChunkSize is the payload size of a single read when the caller
// does not specify one.
const DefaultChunkSize = 8192

// ErrEmptyNeedle is reported when a Request is built with a zero-length
// needle. It never reaches the scan loop.
var ErrEmptyNeedle = errors.New("search needle must not be empty")

// Match is a single occurrence of the needle, as an absolute 0-based
// byte offset from the start of the source.
type Match struct {
	Offset int64
}

// Result is the outcome of a completed scan. It is owned by the caller
// and never mutated afterwards. Matches are ordered ascending by offset,
// with no duplicates; overlapping occurrences are reported individually.
type Result struct {
	BytesScanned int64
	Matches      []Match
}

// Count returns the number of matches.
func (r *Result) Count() int {
	return len(r.Matches)
}

// Found reports whether at least one match was recorded.
func (r *Result) Found() bool {
	return len(r.Matches) > 0
}

// Request is a validated scan of one byte source for one needle.
// The comparison is case-insensitive with ASCII folding only; non-ASCII
// bytes compare by raw value.
type Request struct {
	src       io.Reader
	needle    []byte
	chunkSize int
}

// NewRequest validates and builds a scan request.
// A zero or negative chunkSize selects DefaultChunkSize.
func NewRequest(src io.Reader, needle []byte, chunkSize int) (*Request, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Request{
		src:       src,
		needle:    appendFolded(nil, needle),
		chunkSize: chunkSize,
	}, nil
}

// Scan reads the source to EOF and returns every occurrence of the
// needle. The source is consumed in chunkSize reads; the trailing
// len(needle)-1 bytes of each window are carried over to the front of
// the next one, so occurrences straddling a read boundary are still
// found and no seeking is required. On a read error the partial result
// is discarded and only the error is returned.
func (req *Request) Scan() (*Result, error) {
	pad := len(req.needle) - 1

	// The window holds the case-folded carry plus one chunk of payload.
	window := make([]byte, 0, pad+req.chunkSize)
	chunk := make([]byte, req.chunkSize)

	res := &Result{}
	var winStart int64 // absolute offset of window[0]

	for {
		n, err := req.src.Read(chunk)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read failed at offset %d: %w", res.BytesScanned, err)
		}

		if n > 0 {
			res.BytesScanned += int64(n)
			window = appendFolded(window, chunk[:n])

			// A full needle cannot fit inside the pad-sized carry, so
			// every occurrence found here ends in fresh bytes and is new.
			pos := 0
			for {
				idx := bytes.Index(window[pos:], req.needle)
				if idx < 0 {
					break
				}
				pos += idx
				res.Matches = append(res.Matches, Match{Offset: winStart + int64(pos)})
				pos++ // step one byte so overlapping occurrences are reported too
			}
		}

		if err == io.EOF || n == 0 {
			break
		}

		if keep := min(len(window), pad); keep < len(window) {
			winStart += int64(len(window) - keep)
			copy(window, window[len(window)-keep:])
			window = window[:keep]
		}
	}
	return res, nil
}

// appendFolded appends src to dst, lowercasing ASCII letters.
func appendFolded(dst, src []byte) []byte {
	for _, b := range src {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		dst = append(dst, b)
	}
	return dst
}
