//go:build windows
// +build windows

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
package fs

import (
	"os"

	"golang.org/x/sys/windows"
)

// attributes queries the native attribute flags for path.
// Falls back to mode-derived read-only when the query fails.
func attributes(path string, fi os.FileInfo) Attributes {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Attributes{ReadOnly: fi.Mode().Perm()&0200 == 0}
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return Attributes{ReadOnly: fi.Mode().Perm()&0200 == 0}
	}

	return Attributes{
		ReadOnly: attrs&windows.FILE_ATTRIBUTE_READONLY != 0,
		Hidden:   attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0,
		System:   attrs&windows.FILE_ATTRIBUTE_SYSTEM != 0,
		Archive:  attrs&windows.FILE_ATTRIBUTE_ARCHIVE != 0,
	}
}
