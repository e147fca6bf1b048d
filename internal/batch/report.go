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
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/makaraci/filespect/pkg/sysinfo"
	fmtutil "github.com/makaraci/filespect/pkg/util/format"
)

// DefaultReportName is the report file written when no output path is given.
const DefaultReportName = "arama_raporu.txt"

const (
	statusFound      = "FOUND"
	statusNotFound   = "NOT FOUND"
	statusUnreadable = "UNREADABLE"
)

// Status returns the report label for the entry.
func (e *FileEntry) Status() string {
	switch {
	case e.Unreadable:
		return statusUnreadable
	case e.Result.Found():
		return statusFound
	default:
		return statusNotFound
	}
}

// WriteReport writes the plain-text batch report to w: a header block
// with the search parameters and a timestamp, then one block per file
// separated by "---" lines.
func (r *Result) WriteReport(w io.Writer) error {
	si, err := sysinfo.Stat()
	if err != nil {
		si = &sysinfo.SysUnknown
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "=== BATCH SEARCH REPORT ===")
	fmt.Fprintf(bw, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "Host: %s\n", si.String())
	fmt.Fprintf(bw, "Folder: %s\n", r.Dir)
	fmt.Fprintf(bw, "Needle: %s\n", r.Needle)
	fmt.Fprintln(bw)

	for i := range r.Entries {
		e := &r.Entries[i]

		fmt.Fprintf(bw, "File: %s\n", e.Name)
		fmt.Fprintf(bw, "Status: %s\n", e.Status())
		if e.Result.Found() {
			fmt.Fprintf(bw, "Count: %d\n", e.Result.Count())
		}
		fmt.Fprintf(bw, "Size: %s\n", fmtutil.FormatBytes(e.Size))
		fmt.Fprintln(bw, "---")
	}
	return bw.Flush()
}

// SaveReport writes the report to path, creating or truncating it.
func (r *Result) SaveReport(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %q: %w", path, err)
	}
	defer f.Close()

	if err := r.WriteReport(f); err != nil {
		return fmt.Errorf("failed to write report file %q: %w", path, err)
	}
	return nil
}
