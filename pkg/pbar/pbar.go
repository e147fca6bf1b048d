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
package pbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const MinRefreshRate = time.Millisecond * 100

// FileProgress renders a single carriage-return rewritten progress line
// while a set of files is being processed, e.g.
//
//	[3/10] scanning: report.pdf
//
// It keeps track of the longest line printed so far, so shorter updates
// fully overwrite previous ones.
type FileProgress struct {
	out        io.Writer
	totalFiles int

	currFile       int
	lastUpdateTime time.Time
	lastLineLen    int
}

// New returns a FileProgress for totalFiles files, writing to out.
func New(out io.Writer, totalFiles int) *FileProgress {
	return &FileProgress{
		out:        out,
		totalFiles: totalFiles,
	}
}

// Update advances the progress to the next file and redraws the line.
// Redraws are throttled unless force is set.
func (p *FileProgress) Update(name string, force bool) {
	p.currFile++

	if !force && time.Since(p.lastUpdateTime) < MinRefreshRate {
		return
	}
	p.lastUpdateTime = time.Now()

	line := fmt.Sprintf("[%d/%d] scanning: %s", p.currFile, p.totalFiles, name)

	pad := ""
	if n := p.lastLineLen - len(line); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	p.lastLineLen = len(line)

	fmt.Fprintf(p.out, "\r%s%s", line, pad)
}

// Finish clears the progress line so regular output can follow.
func (p *FileProgress) Finish() {
	if p.lastLineLen > 0 {
		fmt.Fprintf(p.out, "\r%s\r", strings.Repeat(" ", p.lastLineLen))
	}
}
