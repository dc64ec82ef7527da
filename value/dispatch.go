package value

import "github.com/vsf-go/vsf/internal/errs"

// familyDecoder decodes one Value family, given the full remaining buffer
// starting at the type-letter byte.
type familyDecoder func(buf []byte, limits Limits) (Value, int, error)

// decoders maps the 22 top-level type letters to their family decoder.
// Families with further structure (Spirix's F/E digits, crypto's
// algorithm-id byte, tensors' element-type marker)
// resolve that structure inside their own decoder, not here -- this keeps
// the dispatch table complete by construction instead of by a 211/214-armed
// switch.
var decoders = map[byte]familyDecoder{
	'u': decodeUintFamily, // also covers 'u0' (Bool)
	'i': decodeInt,
	'f': decodeFloat,
	'j': decodeComplex,
	's': decodeSpirix,
	'c': decodeCircle,
	't': decodeContiguousTensor,
	'q': decodeStridedTensor,
	'p': decodeBitPackedTensor,
	'x': decodeString,
	'e': decodeEagleTimeInt,
	'r': decodeEagleTimeFloat,
	'w': decodeGeoCoordinate,
	'b': decodeSize,
	'o': decodeOffset,
	'n': decodeCount,
	'z': decodeVersion,
	'd': decodeLabel,
	'h': decodeHash,
	'g': decodeSignature,
	'k': decodePublicKey,
	'a': decodeMAC,
}

func decodeUintFamily(buf []byte, limits Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeUintFamily", errs.ErrUnexpectedEnd)
	}
	if buf[1] == '0' {
		return decodeBool(buf, limits)
	}

	return decodeUint(buf, limits)
}

// Decode reads exactly one Value from the front of buf and returns it along
// with the number of bytes consumed.
func Decode(buf []byte, opts ...DecodeOption) (Value, int, error) {
	limits := applyOptions(opts)

	if len(buf) < 1 {
		return nil, 0, errs.Wrap("value.Decode", errs.ErrUnexpectedEnd)
	}

	decode, ok := decoders[buf[0]]
	if !ok {
		return nil, 0, errs.Wrap("value.Decode", errs.ErrInvalidMarker)
	}

	return decode(buf, limits)
}

// Encode appends v's wire encoding to buf under the given limits.
func Encode(buf []byte, v Value, opts ...DecodeOption) ([]byte, error) {
	return v.Append(buf, applyOptions(opts))
}

// DecodeAll decodes exactly n consecutive Values from buf, as used for
// structured sections.
func DecodeAll(buf []byte, n uint64, opts ...DecodeOption) ([]Value, int, error) {
	limits := applyOptions(opts)

	values := make([]Value, 0, n)
	off := 0
	for i := uint64(0); i < n; i++ {
		v, consumed, err := Decode(buf[off:], func(l *Limits) { *l = limits })
		if err != nil {
			return nil, 0, err
		}

		values = append(values, v)
		off += consumed
	}

	return values, off, nil
}
