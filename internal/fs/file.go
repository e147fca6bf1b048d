package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotADirectory is reported when a path exists but is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// FileInfo is the portable subset of file metadata the tools rely on.
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	Regular bool
	Attr    Attributes
}

// Attributes is a portable view of platform file attributes.
// Only ReadOnly is populated on non-Windows systems.
type Attributes struct {
	ReadOnly bool
	Hidden   bool
	System   bool
	Archive  bool
}

func (a Attributes) String() string {
	var flags []string
	if a.ReadOnly {
		flags = append(flags, "Read-Only")
	}
	if a.Hidden {
		flags = append(flags, "Hidden")
	}
	if a.System {
		flags = append(flags, "System")
	}
	if a.Archive {
		flags = append(flags, "Archive")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, " ")
}

// Stat returns portable metadata for a single path.
func Stat(path string) (*FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Name:    fi.Name(),
		Path:    path,
		Size:    fi.Size(),
		Regular: fi.Mode().IsRegular(),
		Attr:    attributes(path, fi),
	}, nil
}

// ReadDir enumerates the regular files directly inside dir, in
// directory-enumeration (lexical) order. Subdirectories and other
// non-regular entries are skipped.
func ReadDir(dir string) ([]FileInfo, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotADirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			// The entry vanished between ReadDir and Info.
			continue
		}

		files = append(files, FileInfo{
			Name:    entry.Name(),
			Path:    path,
			Size:    info.Size(),
			Regular: true,
			Attr:    attributes(path, info),
		})
	}
	return files, nil
}
