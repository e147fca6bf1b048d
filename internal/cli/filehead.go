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
	"fmt"
	"os"

	"github.com/makaraci/filespect/internal/env"
	"github.com/makaraci/filespect/internal/sniff"
	"github.com/spf13/cobra"
)

func DefineFileheadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filehead <file_path>",
		Short: "Read and classify the first two bytes of a file",
		Long: `filehead reads the first two bytes of the given file, shows them as
printable ASCII, hex and decimal, and guesses the file type from a
magic-number table.`,
		Version:       env.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          RunFilehead,
	}
}

func RunFilehead(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	f, err := os.Open(path)
	if err != nil {
		return Exit(1, fmt.Errorf("failed to open %q: %w", path, err))
	}
	defer f.Close()

	hdr, err := sniff.ReadHeader(f)
	if err != nil {
		return Exit(1, fmt.Errorf("failed to read %q: %w", path, err))
	}

	fmt.Fprintln(out, "=== FILE HEADER READER ===")
	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintf(out, "Bytes read: %d\n", len(hdr.Bytes))
	fmt.Fprintln(out)

	if hdr.Empty() {
		fmt.Fprintln(out, "[WARN] file is empty")
		return nil
	}

	fmt.Fprintf(out, "First bytes: %s\n", hdr.ASCII())
	fmt.Fprintf(out, "Hex: %s\n", hdr.Hex())
	fmt.Fprintf(out, "Decimal: %s\n", hdr.Decimal())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Predicted type: %s\n", hdr.Type)
	return nil
}
