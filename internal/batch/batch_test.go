package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/makaraci/filespect/internal/fs"
	"github.com/makaraci/filespect/internal/search"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// failOpen makes openFile fail for the given path for the duration of
// the test, simulating an unreadable file.
func failOpen(t *testing.T, failPath string) {
	t.Helper()

	orig := openFile
	openFile = func(path string) (io.ReadCloser, error) {
		if path == failPath {
			return nil, errors.New("permission denied")
		}
		return orig(path)
	}
	t.Cleanup(func() { openFile = orig })
}

func TestRun_BatchScenario(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "a.txt", "xx MALWARE yy malware zz")
	writeFile(t, dir, "b.bin", "nothing to see here")
	unreadable := writeFile(t, dir, "c.dat", "MALWARE")
	failOpen(t, unreadable)

	res, err := Run(dir, []byte("MALWARE"), Options{})
	require.NoError(t, err)

	require.Equal(t, 3, res.TotalFiles())
	require.Equal(t, 1, res.FilesWithMatch())

	// Entries keep enumeration (lexical) order.
	require.Equal(t, "a.txt", res.Entries[0].Name)
	require.Equal(t, "b.bin", res.Entries[1].Name)
	require.Equal(t, "c.dat", res.Entries[2].Name)

	a := res.Entries[0]
	require.False(t, a.Unreadable)
	require.Equal(t, 2, a.Result.Count())
	require.Equal(t, []search.Match{{Offset: 3}, {Offset: 14}}, a.Result.Matches)

	require.False(t, res.Entries[1].Unreadable)
	require.Zero(t, res.Entries[1].Result.Count())

	c := res.Entries[2]
	require.True(t, c.Unreadable)
	require.Zero(t, c.Result.Count())
	require.Zero(t, c.Result.BytesScanned)

	require.Equal(t, "33.3", fmt.Sprintf("%.1f", res.MatchRate()))
}

func TestRun_SubdirectoriesExcluded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.txt", "MALWARE")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeFile(t, filepath.Join(dir, "sub"), "nested.txt", "MALWARE")

	res, err := Run(dir, []byte("MALWARE"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalFiles())
	require.Equal(t, "top.txt", res.Entries[0].Name)
}

func TestRun_EmptyDirectory(t *testing.T) {
	res, err := Run(t.TempDir(), []byte("MALWARE"), Options{})
	require.NoError(t, err)
	require.Zero(t, res.TotalFiles())
	require.Zero(t, res.FilesWithMatch())
	require.Equal(t, 0.0, res.MatchRate())
}

func TestRun_ZeroByteFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.txt", "")

	res, err := Run(dir, []byte("MALWARE"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalFiles())
	require.False(t, res.Entries[0].Unreadable)
	require.Zero(t, res.Entries[0].Result.Count())
}

func TestRun_DirectoryMissing(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "nope"), []byte("MALWARE"), Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "file.txt", "data")

	_, err := Run(path, []byte("MALWARE"), Options{})
	require.ErrorIs(t, err, fs.ErrNotADirectory)
}

func TestRun_EmptyNeedle(t *testing.T) {
	_, err := Run(t.TempDir(), nil, Options{})
	require.ErrorIs(t, err, search.ErrEmptyNeedle)
}

func TestRun_ProgressCallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")
	writeFile(t, dir, "b.txt", "y")

	var seen []string
	_, err := Run(dir, []byte("z"), Options{
		Progress: func(n, total int, name string) {
			seen = append(seen, fmt.Sprintf("%d/%d:%s", n, total, name))
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1/2:a.txt", "2/2:b.txt"}, seen)
}

func TestCategoryOf(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Category
	}{
		{"app.exe", CategoryExecutable},
		{"lib.DLL", CategoryExecutable},
		{"driver.sys", CategoryExecutable},
		{"notes.txt", CategoryText},
		{"run.log", CategoryText},
		{"app.cfg", CategoryText},
		{"paper.doc", CategoryDocument},
		{"paper.docx", CategoryDocument},
		{"manual.pdf", CategoryDocument},
		{"photo.jpg", CategoryImage},
		{"icon.PNG", CategoryImage},
		{"scan.bmp", CategoryImage},
		{"song.mp3", CategoryMedia},
		{"clip.mp4", CategoryMedia},
		{"audio.wav", CategoryMedia},
		{"archive.zip", CategoryOther},
		{"noextension", CategoryOther},
	} {
		require.Equal(t, tc.want, CategoryOf(tc.name), tc.name)
	}
}

func TestResult_CategoryCounts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.exe", "x")
	writeFile(t, dir, "b.txt", "x")
	writeFile(t, dir, "c.txt", "x")
	writeFile(t, dir, "d.unknown", "x")

	res, err := Run(dir, []byte("x"), Options{})
	require.NoError(t, err)

	counts := res.CategoryCounts()
	require.Equal(t, 1, counts[CategoryExecutable])
	require.Equal(t, 2, counts[CategoryText])
	require.Equal(t, 1, counts[CategoryOther])
	require.Equal(t, 4, res.FilesWithMatch())
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "xx MALWARE yy")
	writeFile(t, dir, "b.bin", "clean")
	unreadable := writeFile(t, dir, "c.dat", "data")
	failOpen(t, unreadable)

	res, err := Run(dir, []byte("MALWARE"), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteReport(&buf))

	out := buf.String()
	require.Contains(t, out, "=== BATCH SEARCH REPORT ===")
	require.Contains(t, out, "Generated: ")
	require.Contains(t, out, "Folder: "+dir)
	require.Contains(t, out, "Needle: MALWARE")
	require.Contains(t, out, "File: a.txt\nStatus: FOUND\nCount: 1\nSize: 13B\n---\n")
	require.Contains(t, out, "File: b.bin\nStatus: NOT FOUND\nSize: 5B\n---\n")
	require.Contains(t, out, "File: c.dat\nStatus: UNREADABLE\n")
	require.Equal(t, 3, strings.Count(out, "---\n"))
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "MALWARE")

	res, err := Run(dir, []byte("MALWARE"), Options{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), DefaultReportName)
	require.NoError(t, res.SaveReport(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "File: a.txt")
}
