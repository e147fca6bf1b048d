package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/makaraci/filespect/internal/cli"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func execute(cmd *cobra.Command, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ee *cli.ExitError
	require.ErrorAs(t, err, &ee)
	return ee.Code
}

func TestFilehead_PEHeader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "prog.exe", []byte{0x4D, 0x5A, 0x90, 0x00})

	out, err := execute(cli.DefineFileheadCommand(), "", path)
	require.NoError(t, err)
	require.Contains(t, out, "First bytes: MZ")
	require.Contains(t, out, "Hex: 0x4D 0x5A")
	require.Contains(t, out, "Decimal: 77 90")
	require.Contains(t, out, "Predicted type: PE Executable")
}

func TestFilehead_UnknownHeader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "blob.bin", []byte{0x00, 0x01})

	out, err := execute(cli.DefineFileheadCommand(), "", path)
	require.NoError(t, err)
	require.Contains(t, out, "Predicted type: Unknown")
}

func TestFilehead_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.bin", nil)

	out, err := execute(cli.DefineFileheadCommand(), "", path)
	require.NoError(t, err)
	require.Contains(t, out, "file is empty")
}

func TestFilehead_MissingFile(t *testing.T) {
	_, err := execute(cli.DefineFileheadCommand(), "", filepath.Join(t.TempDir(), "nope"))
	require.Equal(t, 1, exitCode(t, err))
}

func TestFilegrep_Found(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.txt", []byte("Hello WORLD"))

	out, err := execute(cli.DefineFilegrepCommand(), "", path, "world")
	require.NoError(t, err)
	require.Contains(t, out, "at 0x6 (6)")
	require.Contains(t, out, `Total 1 occurrence(s) of "world".`)
}

func TestFilegrep_NotFound(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.txt", []byte("abcdef"))

	out, err := execute(cli.DefineFilegrepCommand(), "", path, "xyz")
	require.Equal(t, 4, exitCode(t, err))
	require.Contains(t, out, `"xyz" not found.`)
}

func TestFilegrep_MissingFile(t *testing.T) {
	_, err := execute(cli.DefineFilegrepCommand(), "", filepath.Join(t.TempDir(), "nope"), "x")
	require.Equal(t, 2, exitCode(t, err))
}

func TestFilegrep_EmptyNeedle(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.txt", []byte("abc"))

	_, err := execute(cli.DefineFilegrepCommand(), "", path, "")
	require.Equal(t, 3, exitCode(t, err))
}

func TestFilegrep_WrongArgCount(t *testing.T) {
	_, err := execute(cli.DefineFilegrepCommand(), "", "only-one-arg")
	require.Error(t, err)

	// Argument validation errors carry no explicit code; Main maps them to 1.
	var ee *cli.ExitError
	require.False(t, errors.As(err, &ee))
}

func TestFilegrep_SmallBufferSize(t *testing.T) {
	// A buffer smaller than the needle still finds boundary matches.
	path := writeFile(t, t.TempDir(), "data.txt", []byte("12345needle67890"))

	out, err := execute(cli.DefineFilegrepCommand(), "", path, "needle", "--buffer-size", "4")
	require.NoError(t, err)
	require.Contains(t, out, "at 0x5 (5)")
}

func TestDirgrep_FullRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("xx MALWARE yy malware"))
	writeFile(t, dir, "b.exe", []byte("clean bytes"))

	report := filepath.Join(t.TempDir(), "report.txt")

	out, err := execute(cli.DefineDirgrepCommand(), "y\ny\n", dir, "-o", report)
	require.NoError(t, err)

	require.Contains(t, out, "NAME")
	require.Contains(t, out, "a.txt")
	require.Contains(t, out, "b.exe")
	require.Contains(t, out, "Total files: 2")
	require.Contains(t, out, "Files with match: 1")
	require.Contains(t, out, "Match rate: 50.0%")
	require.Contains(t, out, "Executable: 1 file(s)")
	require.Contains(t, out, "Text: 1 file(s)")

	// Detail view was requested with the first "y".
	require.Contains(t, out, "=== DETAILED RESULTS ===")
	require.Contains(t, out, "Positions: 0x3, 0xE")

	// The second "y" saved the report.
	require.Contains(t, out, "Report saved to "+report)
	data, err := os.ReadFile(report)
	require.NoError(t, err)
	require.Contains(t, string(data), "Needle: MALWARE")
	require.Contains(t, string(data), "File: a.txt")
}

func TestDirgrep_DeclinedPrompts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("MALWARE"))

	report := filepath.Join(t.TempDir(), "report.txt")

	out, err := execute(cli.DefineDirgrepCommand(), "n\nn\n", dir, "-o", report)
	require.NoError(t, err)
	require.NotContains(t, out, "=== DETAILED RESULTS ===")

	_, statErr := os.Stat(report)
	require.True(t, os.IsNotExist(statErr))
}

func TestDirgrep_DefaultNeedle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("has MALWARE inside"))

	out, err := execute(cli.DefineDirgrepCommand(), "n\nn\n", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Needle: MALWARE")
	require.Contains(t, out, "Files with match: 1")
}

func TestDirgrep_EmptyFolder(t *testing.T) {
	out, err := execute(cli.DefineDirgrepCommand(), "", t.TempDir())
	require.NoError(t, err)
	require.Contains(t, out, "No files found in folder.")
}

func TestDirgrep_MissingFolder(t *testing.T) {
	_, err := execute(cli.DefineDirgrepCommand(), "", filepath.Join(t.TempDir(), "nope"))
	require.Equal(t, 2, exitCode(t, err))
}

func TestDirgrep_NotADirectory(t *testing.T) {
	path := writeFile(t, t.TempDir(), "file.txt", []byte("data"))

	_, err := execute(cli.DefineDirgrepCommand(), "", path)
	require.Equal(t, 3, exitCode(t, err))
}

func TestDirgrep_EmptyNeedle(t *testing.T) {
	_, err := execute(cli.DefineDirgrepCommand(), "", t.TempDir(), "")
	require.Equal(t, 4, exitCode(t, err))
}
