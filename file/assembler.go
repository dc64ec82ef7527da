package file

import (
	"github.com/vsf-go/vsf/compress"
	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/internal/labeltrack"
	"github.com/vsf-go/vsf/internal/pool"
	"github.com/vsf-go/vsf/registry"
	"github.com/vsf-go/vsf/value"
)

// maxFixedPointIterations bounds the header/offset convergence loop. Two
// passes suffice for sane inputs; this allows a few more before treating the
// input as pathological.
const maxFixedPointIterations = 16

// Section is one caller-supplied body to embed in an assembled file.
// Unboxed (Count == 0) bodies are opaque bytes; structured (Count > 0)
// bodies are the concatenation of exactly Count already-encoded Values,
// which the assembler wraps in a section-list bracket pair.
//
// Compression only applies to unboxed sections: the assembler stores one
// compress.ID byte immediately before the (possibly compressed) body, and
// the parser's RawBytes strips and reverses it transparently. A structured
// section must leave Compression at its zero value, compress.None.
type Section struct {
	Label       string
	Count       uint64
	Body        []byte
	Compression compress.ID
}

// Assemble builds a complete, sealed vsf file from sections: serialize
// bodies, build a label index with placeholder offsets, iterate header/offset
// sizing to a fixed point, then zero-and-hash-seal the result.
func Assemble(sections []Section, limits value.Limits) ([]byte, error) {
	tracker := labeltrack.New()
	bodies := make([][]byte, len(sections))

	for i, s := range sections {
		if err := tracker.Track(s.Label); err != nil {
			return nil, err
		}

		if s.Count == 0 {
			body, err := compressBody(s)
			if err != nil {
				return nil, err
			}
			bodies[i] = body

			continue
		}

		if s.Compression != compress.None {
			return nil, errs.Wrap("file.Assemble", errs.ErrCompressionNotApplicable)
		}

		body := make([]byte, 0, len(s.Body)+2)
		body = append(body, listOpen)
		body = append(body, s.Body...)
		body = append(body, listClose)
		bodies[i] = body
	}

	header := Header{
		FormatVersion:      CurrentFormatVersion,
		MinReadableVersion: MinReadableVersion,
		LabelCount:         uint64(len(sections)),
	}

	entries := make([]LabelEntry, len(sections))
	for i, s := range sections {
		entries[i] = LabelEntry{Label: s.Label, Size: uint64(len(bodies[i])), Count: s.Count}
	}

	var headerBytes []byte
	var hashDataOffset int

	for iter := 0; ; iter++ {
		if iter >= maxFixedPointIterations {
			return nil, errs.Wrap("file.Assemble", errs.ErrResourceLimit)
		}

		hb, hashOff, err := buildHeader(header, entries, limits)
		if err != nil {
			return nil, err
		}

		offset := uint64(len(hb))
		converged := true
		for i := range entries {
			if entries[i].Offset != offset {
				entries[i].Offset = offset
				converged = false
			}
			offset += entries[i].Size
		}

		headerBytes = hb
		hashDataOffset = hashOff

		if converged {
			break
		}
	}

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	buf.Grow(len(headerBytes) + sumLens(bodies))
	buf.MustWrite(headerBytes)
	for _, b := range bodies {
		buf.MustWrite(b)
	}

	total := make([]byte, buf.Len())
	copy(total, buf.Bytes())

	sealed, err := Seal(total, hashDataOffset)
	if err != nil {
		return nil, err
	}

	return sealed, nil
}

// buildHeader serializes magic ‖ '<' ‖ prelude ‖ label-index ‖
// hash-placeholder ‖ '>' and returns it along with the byte offset (within
// the returned slice) of the 32-byte hash placeholder's data bytes.
func buildHeader(h Header, entries []LabelEntry, limits value.Limits) ([]byte, int, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, Magic[:]...)
	buf = append(buf, headerOpen)

	var err error
	buf, err = h.appendPrelude(buf, limits)
	if err != nil {
		return nil, 0, err
	}

	for _, e := range entries {
		buf, err = e.append(buf, limits)
		if err != nil {
			return nil, 0, err
		}
	}

	placeholder := value.Hash{AlgID: registry.HashBLAKE3, Data: make([]byte, 32)}
	buf, err = placeholder.Append(buf, limits)
	if err != nil {
		return nil, 0, err
	}

	hashDataOffset := len(buf) - 32

	buf = append(buf, headerClose)

	return buf, hashDataOffset, nil
}

// compressBody prepends a one-byte compress.ID to an unboxed section's body,
// compressing it first when the caller requested an algorithm other than
// compress.None.
func compressBody(s Section) ([]byte, error) {
	payload := s.Body

	if s.Compression != compress.None {
		codec, err := compress.CreateCodec(s.Compression)
		if err != nil {
			return nil, errs.Wrap("file.Assemble", err)
		}

		payload, err = codec.Compress(s.Body)
		if err != nil {
			return nil, errs.Wrap("file.Assemble", err)
		}
	}

	body := make([]byte, 0, len(payload)+1)
	body = append(body, byte(s.Compression))
	body = append(body, payload...)

	return body, nil
}

func sumLens(bs [][]byte) int {
	n := 0
	for _, b := range bs {
		n += len(b)
	}

	return n
}
