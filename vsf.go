// Package vsf is the top-level entry point for building and reading
// Versatile Storage Format files. It re-exports the small surface callers
// need for the common case -- assemble sections into a sealed file, then
// open and verify one -- while the file, value, text, ewe, and compress
// packages expose the lower-level building blocks for anything more
// specialized.
package vsf

import (
	"github.com/vsf-go/vsf/file"
	"github.com/vsf-go/vsf/value"
)

// Section is a caller-supplied body to embed in an assembled file. See
// file.Section for the full field documentation.
type Section = file.Section

// File is a parsed vsf file. See file.File for its methods.
type File = file.File

// DecodeOption configures decode-time resource limits. See value.DecodeOption.
type DecodeOption = value.DecodeOption

// Create assembles sections into a complete, sealed vsf file: it serializes
// bodies, builds a label index, converges header/offset widths to a fixed
// point, and seals the result with a whole-file BLAKE3 hash.
func Create(sections []Section, opts ...DecodeOption) ([]byte, error) {
	limits := value.DefaultLimits()
	for _, opt := range opts {
		opt(&limits)
	}

	return file.Assemble(sections, limits)
}

// Open parses buf as a vsf file. It validates magic, header, and label
// index, but does not verify the hash; call (*File).Verify for that.
func Open(buf []byte, opts ...DecodeOption) (*File, error) {
	return file.Parse(buf, opts...)
}
