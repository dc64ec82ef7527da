package file

import (
	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/value"
)

// CurrentFormatVersion is the format version this package produces.
const CurrentFormatVersion = 1

// MinReadableVersion is the oldest format version this package can parse.
const MinReadableVersion = 1

// Header is the fixed header prelude: current-format version,
// minimum-readable version, and label count.
type Header struct {
	FormatVersion      uint64
	MinReadableVersion uint64
	LabelCount         uint64
}

// appendPrelude writes the header-prelude portion.
func (h Header) appendPrelude(buf []byte, limits value.Limits) ([]byte, error) {
	var err error

	buf, err = value.Version(h.FormatVersion).Append(buf, limits)
	if err != nil {
		return nil, err
	}
	buf, err = value.Version(h.MinReadableVersion).Append(buf, limits)
	if err != nil {
		return nil, err
	}

	return value.Count(h.LabelCount).Append(buf, limits)
}

// decodeHeaderPrelude reads the header-prelude and returns it along with the
// number of bytes consumed.
func decodeHeaderPrelude(buf []byte, limits value.Limits) (Header, int, error) {
	off := 0

	formatVersion, n, err := decodeVersionScalar(buf[off:], limits)
	if err != nil {
		return Header{}, 0, err
	}
	off += n

	minReadable, n, err := decodeVersionScalar(buf[off:], limits)
	if err != nil {
		return Header{}, 0, err
	}
	off += n

	labelCount, n, err := decodeCountScalar(buf[off:], limits)
	if err != nil {
		return Header{}, 0, err
	}
	off += n

	if minReadable > CurrentFormatVersion {
		return Header{}, 0, errs.Wrap("file.decodeHeaderPrelude", errs.ErrUnsupportedVersion)
	}

	return Header{FormatVersion: formatVersion, MinReadableVersion: minReadable, LabelCount: labelCount}, off, nil
}

func decodeVersionScalar(buf []byte, limits value.Limits) (uint64, int, error) {
	v, n, err := value.Decode(buf, optionsFromLimits(limits)...)
	if err != nil {
		return 0, 0, err
	}
	ver, ok := v.(value.Version)
	if !ok {
		return 0, 0, errs.Wrap("file.decodeVersionScalar", errs.ErrInvalidMarker)
	}

	return uint64(ver), n, nil
}

func decodeCountScalar(buf []byte, limits value.Limits) (uint64, int, error) {
	v, n, err := value.Decode(buf, optionsFromLimits(limits)...)
	if err != nil {
		return 0, 0, err
	}
	c, ok := v.(value.Count)
	if !ok {
		return 0, 0, errs.Wrap("file.decodeCountScalar", errs.ErrInvalidMarker)
	}

	return uint64(c), n, nil
}

func optionsFromLimits(limits value.Limits) []value.DecodeOption {
	return []value.DecodeOption{
		value.WithMaxEWEByteWidth(limits.MaxEWEByteWidth),
		value.WithMaxTensorElements(limits.MaxTensorElements),
		value.WithMaxSectionBytes(limits.MaxSectionBytes),
	}
}
