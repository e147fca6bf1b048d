package batch

import (
	"path/filepath"
	"strings"
)

// Category is a coarse file classification derived from the name suffix.
type Category string

const (
	CategoryExecutable Category = "Executable"
	CategoryText       Category = "Text"
	CategoryDocument   Category = "Document"
	CategoryImage      Category = "Image"
	CategoryMedia      Category = "Media"
	CategoryOther      Category = "Other"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryExecutable,
	CategoryText,
	CategoryDocument,
	CategoryImage,
	CategoryMedia,
	CategoryOther,
}

var categoryByExt = map[string]Category{
	"exe": CategoryExecutable, "dll": CategoryExecutable, "sys": CategoryExecutable,
	"txt": CategoryText, "log": CategoryText, "cfg": CategoryText,
	"doc": CategoryDocument, "docx": CategoryDocument, "pdf": CategoryDocument,
	"jpg": CategoryImage, "png": CategoryImage, "bmp": CategoryImage,
	"mp3": CategoryMedia, "wav": CategoryMedia, "mp4": CategoryMedia,
}

// CategoryOf classifies a file name by its extension, case-insensitive.
// Names without a known extension fall into CategoryOther.
func CategoryOf(name string) Category {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if c, ok := categoryByExt[strings.ToLower(ext)]; ok {
		return c
	}
	return CategoryOther
}
