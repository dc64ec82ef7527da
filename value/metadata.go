package value

import (
	"github.com/vsf-go/vsf/ewe"
	"github.com/vsf-go/vsf/internal/errs"
)

// Size, Offset, Count and Version are the EWE-coded metadata scalars used
// throughout the file format's label index and header.
//
// The family table also lists 'c' and 'y' length/offset/count
// markers, but 'c' collides with the Spirix circle prefix and 'y' is never
// defined elsewhere in the format; this implementation resolves the
// ambiguity by dropping both and keeping the five markers that are
// unambiguous and independently load-bearing: b, o, n, z, d.
type Size uint64

func (Size) Marker() []byte { return []byte{'b'} }

func (s Size) Append(buf []byte, _ Limits) ([]byte, error) {
	buf = append(buf, 'b')
	return ewe.AppendUint64(buf, uint64(s)), nil
}

func decodeSize(buf []byte, limits Limits) (Value, int, error) {
	return decodeEWEScalar(buf, limits, func(v uint64) Value { return Size(v) })
}

type Offset uint64

func (Offset) Marker() []byte { return []byte{'o'} }

func (o Offset) Append(buf []byte, _ Limits) ([]byte, error) {
	buf = append(buf, 'o')
	return ewe.AppendUint64(buf, uint64(o)), nil
}

func decodeOffset(buf []byte, limits Limits) (Value, int, error) {
	return decodeEWEScalar(buf, limits, func(v uint64) Value { return Offset(v) })
}

type Count uint64

func (Count) Marker() []byte { return []byte{'n'} }

func (c Count) Append(buf []byte, _ Limits) ([]byte, error) {
	buf = append(buf, 'n')
	return ewe.AppendUint64(buf, uint64(c)), nil
}

func decodeCount(buf []byte, limits Limits) (Value, int, error) {
	return decodeEWEScalar(buf, limits, func(v uint64) Value { return Count(v) })
}

type Version uint64

func (Version) Marker() []byte { return []byte{'z'} }

func (v Version) Append(buf []byte, _ Limits) ([]byte, error) {
	buf = append(buf, 'z')
	return ewe.AppendUint64(buf, uint64(v)), nil
}

func decodeVersion(buf []byte, limits Limits) (Value, int, error) {
	return decodeEWEScalar(buf, limits, func(v uint64) Value { return Version(v) })
}

func decodeEWEScalar(buf []byte, limits Limits, wrap func(uint64) Value) (Value, int, error) {
	if len(buf) < 1 {
		return nil, 0, errs.Wrap("value.decodeEWEScalar", errs.ErrUnexpectedEnd)
	}

	v, n, err := ewe.DecodeUint64(buf[1:], limits.eweLimits())
	if err != nil {
		return nil, 0, err
	}

	return wrap(v), 1 + n, nil
}

// Label is the 'd' marker: Huffman-compressed label text used by the label
// index's label-string field. Its wire layout matches the String value
// family exactly.
type Label string

func (Label) Marker() []byte { return []byte{'d'} }

func (l Label) Append(buf []byte, limits Limits) ([]byte, error) {
	return appendCompressedText(buf, 'd', string(l), limits)
}

func decodeLabel(buf []byte, limits Limits) (Value, int, error) {
	s, n, err := decodeCompressedText(buf, limits)
	if err != nil {
		return nil, 0, err
	}

	return Label(s), n, nil
}
