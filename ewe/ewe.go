// Package ewe implements Exponential Width Encoding: a variable-width,
// self-describing, non-negative integer format used throughout vsf for
// shapes, offsets, counts, and lengths.
//
// An EWE value is a single ASCII marker byte M followed by a big-endian,
// zero-padded payload of w = 2^k bits, where k = ASCII(M) - '0'. The
// marker is the smallest class such that the value fits, so decoding a
// marker is enough to know the exact byte length of what follows without
// reading the payload (the O(1) skip property).
//
// Class '0' is reserved for the boolean primitive and is never produced
// or accepted by the general-purpose Append/Decode in this package; see
// value.Bool for that one-off case.
package ewe

import (
	"math/big"

	"github.com/vsf-go/vsf/internal/errs"
)

const (
	// MarkerBool is the reserved one-bit class used only by the boolean primitive.
	MarkerBool byte = '0'

	// MarkerMin is the smallest general-purpose integer class (8 bits).
	MarkerMin byte = '3'

	// MarkerMax is the largest accepted marker byte (class 42, 2^42 bits).
	MarkerMax byte = 'Z'
)

// DefaultMaxByteWidth bounds the payload width Decode will materialize before
// a caller opts into a larger limit via a Limits value. This keeps a hostile
// or corrupt marker (e.g. class 'Z') from forcing a multi-hundred-gigabyte
// allocation by default.
const DefaultMaxByteWidth = 1 << 20 // 1 MiB

// Limits bounds the resource consumption of Decode.
type Limits struct {
	// MaxByteWidth is the largest payload byte width Decode will allocate for.
	// Zero means DefaultMaxByteWidth.
	MaxByteWidth int
}

func (l Limits) maxByteWidth() int {
	if l.MaxByteWidth <= 0 {
		return DefaultMaxByteWidth
	}

	return l.MaxByteWidth
}

// classOf returns k such that the marker byte is '0'+k.
func classOf(marker byte) int {
	return int(marker) - '0'
}

// markerOf returns the marker byte for class k.
func markerOf(k int) byte {
	return byte('0' + k)
}

// widthBits returns the declared bit width for a marker, and whether the
// marker is structurally valid (in the accepted alphabet).
func widthBits(marker byte) (int, bool) {
	if marker == MarkerBool {
		return 1, true
	}
	if marker < MarkerMin || marker > MarkerMax {
		return 0, false
	}

	return 1 << uint(classOf(marker)), true
}

// byteWidth converts a bit width to the number of bytes it occupies on the wire.
func byteWidth(bits int) int {
	return (bits + 7) / 8
}

// minimalMarker returns the smallest general-purpose class ('3'.. ) such that
// v < 2^w. v must be non-negative.
func minimalMarker(v *big.Int) byte {
	k := 3
	for {
		w := 1 << uint(k)
		// 2^w as a bound: the class fits when v < 2^w.
		limit := new(big.Int).Lsh(big.NewInt(1), uint(w))
		if v.Cmp(limit) < 0 {
			return markerOf(k)
		}
		k++
	}
}

// Append encodes a non-negative integer v using the minimal EWE class and
// appends the result (marker + payload) to buf.
func Append(buf []byte, v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, errs.Wrap("ewe.Append", errs.ErrShapeMismatch)
	}

	marker := minimalMarker(v)
	bits, _ := widthBits(marker)
	nbytes := byteWidth(bits)

	buf = append(buf, marker)
	payload := make([]byte, nbytes)
	v.FillBytes(payload)
	buf = append(buf, payload...)

	return buf, nil
}

// AppendUint64 is a convenience wrapper for the common case of a value that
// fits in a uint64; it never fails because every uint64 fits in class '6'
// (64 bits) at the latest.
func AppendUint64(buf []byte, v uint64) []byte {
	buf, _ = Append(buf, new(big.Int).SetUint64(v))
	return buf
}

// AppendInt appends a non-negative machine int.
func AppendInt(buf []byte, v int) ([]byte, error) {
	if v < 0 {
		return nil, errs.Wrap("ewe.AppendInt", errs.ErrShapeMismatch)
	}

	return Append(buf, big.NewInt(int64(v)))
}

// Decode reads one EWE-encoded non-negative integer from buf starting at
// offset 0. It returns the value, the number of bytes consumed (marker +
// payload), and an error.
//
// Decode enforces canonicality: if the marker is not the minimal class for
// the decoded value, it returns ErrNonCanonical. Per the error-handling
// contract, no value is returned alongside an error.
func Decode(buf []byte, limits Limits) (*big.Int, int, error) {
	if len(buf) < 1 {
		return nil, 0, errs.Wrap("ewe.Decode", errs.ErrUnexpectedEnd)
	}

	marker := buf[0]
	if marker == MarkerBool {
		return nil, 0, errs.Wrap("ewe.Decode", errs.ErrInvalidMarker)
	}

	bits, ok := widthBits(marker)
	if !ok {
		return nil, 0, errs.Wrap("ewe.Decode", errs.ErrInvalidMarker)
	}

	nbytes := byteWidth(bits)
	if nbytes > limits.maxByteWidth() {
		return nil, 0, errs.Wrap("ewe.Decode", errs.ErrResourceLimit)
	}

	if len(buf) < 1+nbytes {
		return nil, 0, errs.Wrap("ewe.Decode", errs.ErrUnexpectedEnd)
	}

	payload := buf[1 : 1+nbytes]
	v := new(big.Int).SetBytes(payload)

	if minimalMarker(v) != marker {
		return nil, 0, errs.Wrap("ewe.Decode", errs.ErrNonCanonical)
	}

	return v, 1 + nbytes, nil
}

// DecodeUint64 decodes an EWE integer and converts it to uint64, failing
// with ErrResourceLimit if the value does not fit.
func DecodeUint64(buf []byte, limits Limits) (uint64, int, error) {
	v, n, err := Decode(buf, limits)
	if err != nil {
		return 0, 0, err
	}

	if !v.IsUint64() {
		return 0, 0, errs.Wrap("ewe.DecodeUint64", errs.ErrResourceLimit)
	}

	return v.Uint64(), n, nil
}

// DecodeInt decodes an EWE integer and converts it to a machine int, failing
// with ErrResourceLimit if the value does not fit (including on 32-bit
// platforms where int is narrower than 64 bits).
func DecodeInt(buf []byte, limits Limits) (int, int, error) {
	v, n, err := Decode(buf, limits)
	if err != nil {
		return 0, 0, err
	}

	if !v.IsInt64() {
		return 0, 0, errs.Wrap("ewe.DecodeInt", errs.ErrResourceLimit)
	}

	i64 := v.Int64()
	if int64(int(i64)) != i64 {
		return 0, 0, errs.Wrap("ewe.DecodeInt", errs.ErrResourceLimit)
	}

	return int(i64), n, nil
}

// SkipLen returns the total encoded byte length (marker + payload) of the EWE
// value starting at buf[0], without validating canonicality or the payload
// contents. This backs the O(1)-skip invariant: only the marker byte is read.
func SkipLen(buf []byte) (int, error) {
	if len(buf) < 1 {
		return 0, errs.Wrap("ewe.SkipLen", errs.ErrUnexpectedEnd)
	}

	bits, ok := widthBits(buf[0])
	if !ok {
		return 0, errs.Wrap("ewe.SkipLen", errs.ErrInvalidMarker)
	}

	return 1 + byteWidth(bits), nil
}
