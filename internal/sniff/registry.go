package sniff

import "github.com/makaraci/filespect/pkg/table"

// MagicSignature associates a two-byte file prefix with a type label.
type MagicSignature struct {
	Prefix []byte
	Label  string
}

// DefaultSignatures is the fixed magic-number table, in priority order.
// Every prefix is distinct, so the first full match is the only one.
var DefaultSignatures = []MagicSignature{
	{Prefix: []byte{0x4D, 0x5A}, Label: "PE Executable"},
	{Prefix: []byte{0xFF, 0xD8}, Label: "JPEG"},
	{Prefix: []byte{0x89, 0x50}, Label: "PNG"},
	{Prefix: []byte{0x50, 0x4B}, Label: "ZIP"},
	{Prefix: []byte{0x1F, 0x8B}, Label: "GZIP"},
	{Prefix: []byte{0x42, 0x4D}, Label: "BMP"},
	{Prefix: []byte{0x47, 0x49}, Label: "GIF"},
	{Prefix: []byte{0x25, 0x50}, Label: "PDF"},
	{Prefix: []byte{0x52, 0x61}, Label: "RAR"},
}

var registry = buildRegistry()

func buildRegistry() *table.PrefixTable[string] {
	t := table.New[string]()
	for _, sig := range DefaultSignatures {
		t.Insert(sig.Prefix, sig.Label)
	}
	return t
}
