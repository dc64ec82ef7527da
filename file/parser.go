package file

import (
	"sort"

	"github.com/vsf-go/vsf/compress"
	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/registry"
	"github.com/vsf-go/vsf/value"
)

// File is a parsed vsf file: its header metadata, label index, and a
// reference to the backing buffer sections are sliced from.
type File struct {
	Header         Header
	Entries        []LabelEntry
	hashDataOffset int
	buf            []byte
}

// Parse validates magic, header, and label index. It does not verify the
// hash; call Verify for that.
func Parse(buf []byte, opts ...value.DecodeOption) (*File, error) {
	limits := resolveLimits(opts)

	if err := CheckMagic(buf); err != nil {
		return nil, err
	}

	off := len(Magic)
	if off >= len(buf) || buf[off] != headerOpen {
		return nil, errs.Wrap("file.Parse", errs.ErrTruncatedHeader)
	}
	off++

	header, n, err := decodeHeaderPrelude(buf[off:], limits)
	if err != nil {
		return nil, err
	}
	off += n

	entries := make([]LabelEntry, header.LabelCount)
	for i := range entries {
		e, n, err := decodeLabelEntry(buf[off:], limits)
		if err != nil {
			return nil, err
		}
		entries[i] = e
		off += n
	}

	if off+1 >= len(buf) || buf[off] != 'h' || buf[off+1] != registry.HashBLAKE3 {
		return nil, errs.Wrap("file.Parse", errs.ErrTruncatedHeader)
	}
	hashDataOffset := off + 2 // skip 'h' + algorithm-id byte
	off += 2 + hashDigestSize

	if off >= len(buf) || buf[off] != headerClose {
		return nil, errs.Wrap("file.Parse", errs.ErrTruncatedHeader)
	}
	off++

	if err := validateSections(entries, buf, off); err != nil {
		return nil, err
	}

	return &File{Header: header, Entries: entries, hashDataOffset: hashDataOffset, buf: buf}, nil
}

// validateSections checks that every entry's byte range lies within buf
// (starting at bodyStart) and that no two sections overlap.
func validateSections(entries []LabelEntry, buf []byte, bodyStart int) error {
	type span struct{ start, end uint64 }
	spans := make([]span, len(entries))

	for i, e := range entries {
		if e.Offset < uint64(bodyStart) {
			return errs.Wrap("file.validateSections", errs.ErrTruncatedHeader)
		}
		end := e.Offset + e.Size
		if end > uint64(len(buf)) || end < e.Offset {
			return errs.Wrap("file.validateSections", errs.ErrTruncatedHeader)
		}
		spans[i] = span{e.Offset, end}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return errs.Wrap("file.validateSections", errs.ErrOverlappingSections)
		}
	}

	return nil
}

// Verify recomputes the whole-file BLAKE3 digest and compares it to the
// stored one.
func (f *File) Verify() error {
	return Verify(f.buf, f.hashDataOffset)
}

// Section returns the entry for label, or ErrLabelNotFound.
func (f *File) Section(label string) (LabelEntry, error) {
	for _, e := range f.Entries {
		if e.Label == label {
			return e, nil
		}
	}

	return LabelEntry{}, errs.Wrap("file.Section", errs.ErrLabelNotFound)
}

// RawBytes returns an unboxed (Count == 0) section's decompressed body. The
// leading compress.ID byte written by Assemble selects the codec; when it is
// compress.None, the remaining bytes are returned borrowed from the backing
// buffer without copying.
func (f *File) RawBytes(e LabelEntry) ([]byte, error) {
	if !e.Unboxed() {
		return nil, errs.Wrap("file.RawBytes", errs.ErrSectionTypeCountMismatch)
	}
	if e.Size == 0 {
		return nil, errs.Wrap("file.RawBytes", errs.ErrTruncatedHeader)
	}

	raw := f.buf[e.Offset : e.Offset+e.Size]
	id := compress.ID(raw[0])
	payload := raw[1:]

	if id == compress.None {
		return payload, nil
	}

	codec, err := compress.CreateCodec(id)
	if err != nil {
		return nil, errs.Wrap("file.RawBytes", err)
	}

	decompressed, err := codec.Decompress(payload)
	if err != nil {
		return nil, errs.Wrap("file.RawBytes", err)
	}

	return decompressed, nil
}

// Values parses exactly e.Count Values from a structured section, unwrapping
// its '[' ... ']' bracket pair.
func (f *File) Values(e LabelEntry, opts ...value.DecodeOption) ([]value.Value, error) {
	if e.Unboxed() {
		return nil, errs.Wrap("file.Values", errs.ErrSectionTypeCountMismatch)
	}

	body := f.buf[e.Offset : e.Offset+e.Size]
	if len(body) < 2 || body[0] != listOpen || body[len(body)-1] != listClose {
		return nil, errs.Wrap("file.Values", errs.ErrTruncatedHeader)
	}

	values, n, err := value.DecodeAll(body[1:len(body)-1], e.Count, opts...)
	if err != nil {
		return nil, err
	}
	if n != len(body)-2 {
		return nil, errs.Wrap("file.Values", errs.ErrSectionTypeCountMismatch)
	}

	return values, nil
}

func resolveLimits(opts []value.DecodeOption) value.Limits {
	limits := value.DefaultLimits()
	for _, opt := range opts {
		opt(&limits)
	}

	return limits
}
