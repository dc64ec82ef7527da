package file

import (
	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/value"
)

// LabelEntry describes one body section: its label, byte offset, byte size,
// and item count (0 = unboxed/opaque blob; >0 = structured).
type LabelEntry struct {
	Label  string
	Offset uint64
	Size   uint64
	Count  uint64 // 0 = unboxed raw bytes; >0 = structured, Count Values
}

// Unboxed reports whether this section is an opaque byte range rather than
// a sequence of parsed Values.
func (e LabelEntry) Unboxed() bool { return e.Count == 0 }

// Entry wire layout:
// '(' ‖ label-string (d…) ‖ offset (o…) ‖ size (b…) ‖ count (n…) ‖ ')'
func (e LabelEntry) append(buf []byte, limits value.Limits) ([]byte, error) {
	buf = append(buf, entryOpen)

	var err error
	buf, err = value.Label(e.Label).Append(buf, limits)
	if err != nil {
		return nil, err
	}
	buf, err = value.Offset(e.Offset).Append(buf, limits)
	if err != nil {
		return nil, err
	}
	buf, err = value.Size(e.Size).Append(buf, limits)
	if err != nil {
		return nil, err
	}
	buf, err = value.Count(e.Count).Append(buf, limits)
	if err != nil {
		return nil, err
	}

	return append(buf, entryClose), nil
}

func decodeLabelEntry(buf []byte, limits value.Limits) (LabelEntry, int, error) {
	if len(buf) < 1 || buf[0] != entryOpen {
		return LabelEntry{}, 0, errs.Wrap("file.decodeLabelEntry", errs.ErrTruncatedHeader)
	}

	off := 1

	v, n, err := value.Decode(buf[off:], optionsFromLimits(limits)...)
	if err != nil {
		return LabelEntry{}, 0, err
	}
	label, ok := v.(value.Label)
	if !ok {
		return LabelEntry{}, 0, errs.Wrap("file.decodeLabelEntry", errs.ErrInvalidMarker)
	}
	off += n

	offsetVal, n, err := value.Decode(buf[off:], optionsFromLimits(limits)...)
	if err != nil {
		return LabelEntry{}, 0, err
	}
	offset, ok := offsetVal.(value.Offset)
	if !ok {
		return LabelEntry{}, 0, errs.Wrap("file.decodeLabelEntry", errs.ErrInvalidMarker)
	}
	off += n

	sizeVal, n, err := value.Decode(buf[off:], optionsFromLimits(limits)...)
	if err != nil {
		return LabelEntry{}, 0, err
	}
	size, ok := sizeVal.(value.Size)
	if !ok {
		return LabelEntry{}, 0, errs.Wrap("file.decodeLabelEntry", errs.ErrInvalidMarker)
	}
	off += n

	countVal, n, err := value.Decode(buf[off:], optionsFromLimits(limits)...)
	if err != nil {
		return LabelEntry{}, 0, err
	}
	count, ok := countVal.(value.Count)
	if !ok {
		return LabelEntry{}, 0, errs.Wrap("file.decodeLabelEntry", errs.ErrInvalidMarker)
	}
	off += n

	if len(buf) <= off || buf[off] != entryClose {
		return LabelEntry{}, 0, errs.Wrap("file.decodeLabelEntry", errs.ErrTruncatedHeader)
	}
	off++

	return LabelEntry{Label: string(label), Offset: uint64(offset), Size: uint64(size), Count: uint64(count)}, off, nil
}
