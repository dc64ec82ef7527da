package value

import (
	"github.com/vsf-go/vsf/ewe"
	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/text"
)

// String is the Huffman-compressed Unicode text family: marker 'x' followed
// by EWE(codepoint_count), EWE(compressed_byte_length), then the packed
// bits themselves.
type String string

func (String) Marker() []byte { return []byte{'x'} }

func (s String) Append(buf []byte, limits Limits) ([]byte, error) {
	return appendCompressedText(buf, 'x', string(s), limits)
}

func decodeString(buf []byte, limits Limits) (Value, int, error) {
	s, n, err := decodeCompressedText(buf, limits)
	if err != nil {
		return nil, 0, err
	}

	return String(s), n, nil
}

// appendCompressedText writes marker ‖ EWE(codepoint_count) ‖
// EWE(compressed_byte_length) ‖ compressed-bytes for s.
func appendCompressedText(buf []byte, marker byte, s string, limits Limits) ([]byte, error) {
	compressed, count := text.Encode(s)
	if err := limits.checkByteLength(uint64(len(compressed))); err != nil {
		return nil, err
	}

	buf = append(buf, marker)
	buf = ewe.AppendUint64(buf, uint64(count))
	buf = ewe.AppendUint64(buf, uint64(len(compressed)))

	return append(buf, compressed...), nil
}

// decodeCompressedText reverses appendCompressedText; buf[0] is the marker
// byte and is skipped.
func decodeCompressedText(buf []byte, limits Limits) (string, int, error) {
	if len(buf) < 1 {
		return "", 0, errs.Wrap("value.decodeCompressedText", errs.ErrUnexpectedEnd)
	}

	off := 1

	count, n, err := ewe.DecodeUint64(buf[off:], limits.eweLimits())
	if err != nil {
		return "", 0, err
	}
	off += n

	byteLen, n, err := ewe.DecodeUint64(buf[off:], limits.eweLimits())
	if err != nil {
		return "", 0, err
	}
	off += n
	if err := limits.checkByteLength(byteLen); err != nil {
		return "", 0, err
	}

	if uint64(len(buf)-off) < byteLen {
		return "", 0, errs.Wrap("value.decodeCompressedText", errs.ErrUnexpectedEnd)
	}

	s, err := text.Decode(buf[off:off+int(byteLen)], int(count))
	if err != nil {
		return "", 0, err
	}
	off += int(byteLen)

	return s, off, nil
}
