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
	"io"
	"os"
	"time"

	"github.com/makaraci/filespect/internal/fs"
	"github.com/makaraci/filespect/internal/logger"
	"github.com/makaraci/filespect/internal/search"
)

// openFile is swapped out by tests to simulate unreadable files.
var openFile = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// FileEntry is the scan outcome for a single file. Entries are never
// mutated once their scan completes.
type FileEntry struct {
	Name       string
	Path       string
	Size       int64
	Attr       fs.Attributes
	Unreadable bool
	Result     search.Result
}

// Category returns the extension-derived category of the file.
func (e *FileEntry) Category() Category {
	return CategoryOf(e.Name)
}

// Options tunes a batch run. The zero value is usable.
type Options struct {
	ChunkSize int            // per-file read chunk size, default search.DefaultChunkSize
	Logger    *logger.Logger // per-file diagnostics, default discards
	// Progress, when set, is invoked before each file is scanned.
	Progress func(n, total int, name string)
}

// Run scans every regular file directly inside dir (non-recursive) for
// needle and collects one FileEntry per file, in directory-enumeration
// order. A file that cannot be opened or read is recorded as unreadable
// with zero matches; it never aborts the batch. Run fails up front when
// the needle is empty, dir does not exist, or dir is not a directory.
func Run(dir string, needle []byte, opts Options) (*Result, error) {
	if len(needle) == 0 {
		return nil, search.ErrEmptyNeedle
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	files, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	entries := make([]FileEntry, 0, len(files))
	for i, fi := range files {
		if opts.Progress != nil {
			opts.Progress(i+1, len(files), fi.Name)
		}

		entry := FileEntry{
			Name: fi.Name,
			Path: fi.Path,
			Size: fi.Size,
			Attr: fi.Attr,
		}
		entry.Result, entry.Unreadable = scanFile(fi.Path, needle, opts.ChunkSize, log)
		entries = append(entries, entry)
	}

	return &Result{
		Dir:     dir,
		Needle:  string(needle),
		Entries: entries,
		Elapsed: time.Since(start),
	}, nil
}

// scanFile runs one scan and reports whether the file was unreadable.
// Scan errors are logged, not propagated.
func scanFile(path string, needle []byte, chunkSize int, log *logger.Logger) (search.Result, bool) {
	f, err := openFile(path)
	if err != nil {
		log.Warnf("skipping %s: %v", path, err)
		return search.Result{}, true
	}
	defer f.Close()

	req, err := search.NewRequest(f, needle, chunkSize)
	if err != nil {
		log.Warnf("skipping %s: %v", path, err)
		return search.Result{}, true
	}

	res, err := req.Scan()
	if err != nil {
		log.Warnf("read failed on %s: %v", path, err)
		return search.Result{}, true
	}
	return *res, false
}
