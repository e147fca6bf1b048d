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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/makaraci/filespect/internal/batch"
	"github.com/makaraci/filespect/internal/env"
	"github.com/makaraci/filespect/internal/fs"
	"github.com/makaraci/filespect/internal/logger"
	"github.com/makaraci/filespect/internal/search"
	"github.com/makaraci/filespect/pkg/pbar"
	fmtutil "github.com/makaraci/filespect/pkg/util/format"
	"github.com/spf13/cobra"
)

// DefaultNeedle is searched when no search string argument is given.
const DefaultNeedle = "MALWARE"

// maxDetailPositions caps the offsets listed per file in the detailed view.
const maxDetailPositions = 10

func DefineDirgrepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirgrep <folder_path> [search_string]",
		Short: "Batch content search over every file in a folder",
		Long: `dirgrep applies the case-insensitive content search to every regular
file directly inside the folder (subdirectories are not scanned) and
prints a per-file results table plus summary statistics. After the
scan it offers to show per-match offsets and to save a plain-text
report file.

The search string defaults to "` + DefaultNeedle + `" when omitted.`,
		Version:       env.Version,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          RunDirgrep,
	}

	cmd.Flags().String("buffer-size", "8KB", "the size of the per-file read buffer")
	cmd.Flags().StringP("output", "o", batch.DefaultReportName, "the path of the report file")
	cmd.Flags().Bool("no-log", false, "disable per-file warnings")
	cmd.Flags().String("log-level", "WARN", "minimum log level (DEBUG, INFO, WARN, ERROR)")
	return cmd
}

func RunDirgrep(cmd *cobra.Command, args []string) error {
	dir := args[0]
	needle := DefaultNeedle
	if len(args) == 2 {
		needle = args[1]
	}

	out := cmd.OutOrStdout()

	fi, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Exit(2, fmt.Errorf("folder %q not found", dir))
	}
	if err != nil {
		return Exit(2, fmt.Errorf("failed to access folder %q: %w", dir, err))
	}
	if !fi.IsDir() {
		return Exit(3, fmt.Errorf("%q is not a folder", dir))
	}
	if needle == "" {
		return Exit(4, errors.New("search string must not be empty"))
	}

	log := logger.Nop()
	if noLog, _ := cmd.Flags().GetBool("no-log"); !noLog {
		level, _ := cmd.Flags().GetString("log-level")
		log = logger.New(cmd.ErrOrStderr(), logger.ParseLevel(level))
	}

	fmt.Fprintf(out, "Folder: %s\n", dir)
	fmt.Fprintf(out, "Needle: %s\n", needle)
	fmt.Fprintln(out, "Note: subdirectories are not scanned")
	fmt.Fprintln(out)

	var prog *pbar.FileProgress
	res, err := batch.Run(dir, []byte(needle), batch.Options{
		ChunkSize: getChunkSize(cmd),
		Logger:    log,
		Progress: func(n, total int, name string) {
			if prog == nil {
				prog = pbar.New(out, total)
			}
			prog.Update(name, false)
		},
	})
	if err != nil {
		// The folder can vanish or change between the pre-checks and
		// the enumeration; keep the exit codes consistent either way.
		switch {
		case errors.Is(err, os.ErrNotExist):
			return Exit(2, err)
		case errors.Is(err, fs.ErrNotADirectory):
			return Exit(3, err)
		case errors.Is(err, search.ErrEmptyNeedle):
			return Exit(4, err)
		}
		return Exit(1, err)
	}
	if prog != nil {
		prog.Finish()
	}

	if res.TotalFiles() == 0 {
		fmt.Fprintln(out, "No files found in folder.")
		return nil
	}

	printResults(out, res)
	printSummary(out, res)

	in := bufio.NewReader(cmd.InOrStdin())

	if promptYesNo(in, out, "Show detailed results? (y/n): ") {
		printDetails(out, res)
	}

	if promptYesNo(in, out, "Save report to file? (y/n): ") {
		output, _ := cmd.Flags().GetString("output")
		if err := res.SaveReport(output); err != nil {
			// A failed save does not change the exit code; only
			// argument and path errors do.
			log.Errorf("%v", err)
		} else {
			fmt.Fprintf(out, "Report saved to %s\n", output)
		}
	}
	return nil
}

func printResults(out io.Writer, res *batch.Result) {
	fmt.Fprintln(out, "=== SEARCH RESULTS ===")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tCOUNT\tSIZE\tTYPE")

	for i := range res.Entries {
		e := &res.Entries[i]

		count := "-"
		if e.Result.Found() {
			count = strconv.Itoa(e.Result.Count())
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Name,
			e.Status(),
			count,
			fmtutil.FormatBytes(e.Size),
			e.Category(),
		)
	}
	w.Flush()
}

func printSummary(out io.Writer, res *batch.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== SUMMARY ===")
	fmt.Fprintf(out, "Folder: %s\n", res.Dir)
	fmt.Fprintf(out, "Needle: %s\n", res.Needle)
	fmt.Fprintf(out, "Total files: %d\n", res.TotalFiles())
	fmt.Fprintf(out, "Files with match: %d\n", res.FilesWithMatch())
	fmt.Fprintf(out, "Files without match: %d\n", res.TotalFiles()-res.FilesWithMatch())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "File type distribution:")
	counts := res.CategoryCounts()
	for _, c := range batch.Categories {
		if counts[c] > 0 {
			fmt.Fprintf(out, "  %s: %d file(s)\n", c, counts[c])
		}
	}

	fmt.Fprintf(out, "Total data scanned: %s\n", fmtutil.FormatBytes(res.BytesScanned()))
	fmt.Fprintf(out, "Duration: %s\n", fmtutil.FormatDurationHMS(res.Elapsed))
	fmt.Fprintf(out, "Match rate: %.1f%%\n", res.MatchRate())
	fmt.Fprintln(out)
}

func printDetails(out io.Writer, res *batch.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== DETAILED RESULTS ===")

	for i := range res.Entries {
		e := &res.Entries[i]
		if !e.Result.Found() {
			continue
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "File: %s\n", e.Name)
		fmt.Fprintf(out, "Path: %s\n", e.Path)
		fmt.Fprintf(out, "Match count: %d\n", e.Result.Count())

		positions := make([]string, 0, maxDetailPositions)
		for j, m := range e.Result.Matches {
			if j == maxDetailPositions {
				break
			}
			positions = append(positions, fmt.Sprintf("0x%X", m.Offset))
		}

		fmt.Fprintf(out, "Positions: %s", strings.Join(positions, ", "))
		if extra := e.Result.Count() - maxDetailPositions; extra > 0 {
			fmt.Fprintf(out, " ... (+%d more)", extra)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}

func promptYesNo(in *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)

	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	line = strings.TrimSpace(line)
	return line == "y" || line == "Y"
}
