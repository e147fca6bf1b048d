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
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/makaraci/filespect/internal/env"
	"github.com/makaraci/filespect/internal/fs"
	"github.com/makaraci/filespect/internal/search"
	fmtutil "github.com/makaraci/filespect/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineFilegrepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filegrep <file_path> <search_string>",
		Short: "Case-insensitive content search in a single file",
		Long: `filegrep scans the file for every occurrence of the search string,
comparing bytes case-insensitively (ASCII folding), and prints each
match offset in hex and decimal.

Exit codes: 0 found, 4 not found, 2 file missing or unreadable,
3 empty search string, 1 wrong argument count.`,
		Version:       env.Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          RunFilegrep,
	}

	cmd.Flags().String("buffer-size", "8KB", "the size of the read buffer")
	return cmd
}

func RunFilegrep(cmd *cobra.Command, args []string) error {
	path, needle := args[0], args[1]
	out := cmd.OutOrStdout()

	fi, err := fs.Stat(path)
	if err != nil {
		return Exit(2, fmt.Errorf("file %q not found or not accessible: %w", path, err))
	}

	if needle == "" {
		return Exit(3, errors.New("search string must not be empty"))
	}

	fmt.Fprintln(out, "=== FILE INFO ===")
	fmt.Fprintf(out, "Name: %s\n", fi.Name)
	fmt.Fprintf(out, "Size: %s (%d bytes)\n", fmtutil.FormatBytes(fi.Size), fi.Size)
	fmt.Fprintf(out, "Attributes: %s\n", fi.Attr)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Searching for %q...\n", needle)

	f, err := os.Open(path)
	if err != nil {
		return Exit(2, fmt.Errorf("failed to open %q: %w", path, err))
	}
	defer f.Close()

	req, err := search.NewRequest(f, []byte(needle), getChunkSize(cmd))
	if err != nil {
		return Exit(3, err)
	}

	res, err := req.Scan()
	if err != nil {
		return Exit(2, fmt.Errorf("failed to read %q: %w", path, err))
	}

	for _, m := range res.Matches {
		fmt.Fprintf(out, "FOUND: %q at 0x%X (%d)\n", needle, m.Offset, m.Offset)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Search complete.")

	if !res.Found() {
		fmt.Fprintf(out, "%q not found.\n", needle)
		return Exit(4, nil)
	}

	fmt.Fprintf(out, "Total %d occurrence(s) of %q.\n", res.Count(), needle)
	return nil
}

// getChunkSize reads the shared --buffer-size flag, falling back to the
// scanner default on anything unparsable.
func getChunkSize(cmd *cobra.Command) int {
	s, _ := cmd.Flags().GetString("buffer-size")

	v, err := fmtutil.ParseBytes(s)
	if err != nil || v == 0 {
		return search.DefaultChunkSize
	}
	return int(v)
}
