package value

import (
	"math"
	"math/big"

	"github.com/vsf-go/vsf/endian"
	"github.com/vsf-go/vsf/internal/errs"
)

// intClasses are the general-purpose integer width classes vsf uses for
// both unsigned and signed integers: '3'->8 bits .. '7'->128 bits.
var intClasses = [...]byte{'3', '4', '5', '6', '7'}

func widthBitsForClass(class byte) (int, bool) {
	for _, c := range intClasses {
		if c == class {
			return 1 << uint(class-'0'), true
		}
	}

	return 0, false
}

func isIntClass(class byte) bool {
	_, ok := widthBitsForClass(class)
	return ok
}

// ---- Bool (u0) ----

// Bool is the one-bit boolean family; class '0' is the special bool class.
type Bool bool

func (Bool) Marker() []byte { return []byte{'u', '0'} }

func (b Bool) Append(buf []byte, _ Limits) ([]byte, error) {
	var payload byte
	if b {
		payload = 1
	}

	return append(append(buf, 'u', '0'), payload), nil
}

func decodeBool(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 3 {
		return nil, 0, errs.Wrap("value.decodeBool", errs.ErrUnexpectedEnd)
	}

	return Bool(buf[2]&1 == 1), 3, nil
}

// ---- Unsigned integer (u3..u7) ----

// Uint is the unsigned-integer family, covering 8/16/32/64/128-bit widths
// (classes '3'..'7'). V is stored as *big.Int so the 128-bit width (which
// overflows uint64) round-trips exactly.
type Uint struct {
	Class byte // '3'..'7'
	V     *big.Int
}

// NewUint builds a Uint of the given class from a uint64. It does not check
// the width: Append rejects a value that does not fit the class.
func NewUint(class byte, v uint64) Uint {
	return Uint{Class: class, V: new(big.Int).SetUint64(v)}
}

func (u Uint) Marker() []byte { return []byte{'u', u.Class} }

func (u Uint) Append(buf []byte, _ Limits) ([]byte, error) {
	bits, ok := widthBitsForClass(u.Class)
	if !ok {
		return nil, errs.Wrap("Uint.Append", errs.ErrInvalidMarker)
	}
	if u.V.Sign() < 0 || u.V.BitLen() > bits {
		return nil, errs.Wrap("Uint.Append", errs.ErrShapeMismatch)
	}

	nbytes := bits / 8
	buf = append(buf, 'u', u.Class)
	payload := make([]byte, nbytes)
	u.V.FillBytes(payload)

	return append(buf, payload...), nil
}

func decodeUint(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeUint", errs.ErrUnexpectedEnd)
	}

	class := buf[1]
	bits, ok := widthBitsForClass(class)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeUint", errs.ErrInvalidMarker)
	}

	nbytes := bits / 8
	if len(buf) < 2+nbytes {
		return nil, 0, errs.Wrap("value.decodeUint", errs.ErrUnexpectedEnd)
	}

	v := new(big.Int).SetBytes(buf[2 : 2+nbytes])

	return Uint{Class: class, V: v}, 2 + nbytes, nil
}

// ---- Signed integer (i3..i7), two's complement ----

// Int is the signed-integer family (classes '3'..'7').
type Int struct {
	Class byte
	V     *big.Int // may be negative
}

// NewInt builds an Int of the given class from an int64.
func NewInt(class byte, v int64) Int {
	return Int{Class: class, V: big.NewInt(v)}
}

func (i Int) Marker() []byte { return []byte{'i', i.Class} }

func (i Int) Append(buf []byte, _ Limits) ([]byte, error) {
	bits, ok := widthBitsForClass(i.Class)
	if !ok {
		return nil, errs.Wrap("Int.Append", errs.ErrInvalidMarker)
	}

	min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)), big.NewInt(1))
	if i.V.Cmp(min) < 0 || i.V.Cmp(max) > 0 {
		return nil, errs.Wrap("Int.Append", errs.ErrShapeMismatch)
	}

	nbytes := bits / 8
	unsigned := twosComplement(i.V, bits)
	payload := make([]byte, nbytes)
	unsigned.FillBytes(payload)

	buf = append(buf, 'i', i.Class)

	return append(buf, payload...), nil
}

func decodeInt(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeInt", errs.ErrUnexpectedEnd)
	}

	class := buf[1]
	bits, ok := widthBitsForClass(class)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeInt", errs.ErrInvalidMarker)
	}

	nbytes := bits / 8
	if len(buf) < 2+nbytes {
		return nil, 0, errs.Wrap("value.decodeInt", errs.ErrUnexpectedEnd)
	}

	unsigned := new(big.Int).SetBytes(buf[2 : 2+nbytes])
	v := fromTwosComplement(unsigned, bits)

	return Int{Class: class, V: v}, 2 + nbytes, nil
}

// twosComplement maps a signed value into its unsigned bits-wide two's
// complement representation.
func twosComplement(v *big.Int, bits int) *big.Int {
	if v.Sign() >= 0 {
		return new(big.Int).Set(v)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return new(big.Int).Add(v, mod)
}

// fromTwosComplement maps a bits-wide unsigned two's complement pattern back
// to a signed value.
func fromTwosComplement(u *big.Int, bits int) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if u.Cmp(half) < 0 {
		return new(big.Int).Set(u)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return new(big.Int).Sub(u, mod)
}

// ---- IEEE float (f5, f6) ----

// Float is the IEEE-754 family: class '5' is 32-bit, '6' is 64-bit.
type Float struct {
	Class byte // '5' or '6'
	V     float64
}

func (f Float) Marker() []byte { return []byte{'f', f.Class} }

func (f Float) Append(buf []byte, _ Limits) ([]byte, error) {
	buf = append(buf, 'f', f.Class)

	switch f.Class {
	case '5':
		return endian.Big.AppendUint32(buf, math.Float32bits(float32(f.V))), nil
	case '6':
		return endian.Big.AppendUint64(buf, math.Float64bits(f.V)), nil
	default:
		return nil, errs.Wrap("Float.Append", errs.ErrInvalidMarker)
	}
}

func decodeFloat(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeFloat", errs.ErrUnexpectedEnd)
	}

	switch buf[1] {
	case '5':
		if len(buf) < 6 {
			return nil, 0, errs.Wrap("value.decodeFloat", errs.ErrUnexpectedEnd)
		}

		bits := endian.Big.Uint32(buf[2:6])

		return Float{Class: '5', V: float64(math.Float32frombits(bits))}, 6, nil
	case '6':
		if len(buf) < 10 {
			return nil, 0, errs.Wrap("value.decodeFloat", errs.ErrUnexpectedEnd)
		}

		bits := endian.Big.Uint64(buf[2:10])

		return Float{Class: '6', V: math.Float64frombits(bits)}, 10, nil
	default:
		return nil, 0, errs.Wrap("value.decodeFloat", errs.ErrInvalidMarker)
	}
}

// floatByteWidth returns the on-wire byte width of a float/complex class marker.
func floatByteWidth(class byte) (int, bool) {
	switch class {
	case '5':
		return 4, true
	case '6':
		return 8, true
	default:
		return 0, false
	}
}

// ---- Complex (j5, j6) ----

// Complex is the complex-number family: real then imaginary, both IEEE
// floats of the declared class.
type Complex struct {
	Class byte // '5' or '6'
	Re    float64
	Im    float64
}

func (c Complex) Marker() []byte { return []byte{'j', c.Class} }

func (c Complex) Append(buf []byte, limits Limits) ([]byte, error) {
	if _, ok := floatByteWidth(c.Class); !ok {
		return nil, errs.Wrap("Complex.Append", errs.ErrInvalidMarker)
	}

	buf = append(buf, 'j', c.Class)

	var err error
	buf, err = appendFloatPayload(buf, c.Class, c.Re)
	if err != nil {
		return nil, err
	}

	return appendFloatPayload(buf, c.Class, c.Im)
}

func appendFloatPayload(buf []byte, class byte, v float64) ([]byte, error) {
	switch class {
	case '5':
		return endian.Big.AppendUint32(buf, math.Float32bits(float32(v))), nil
	case '6':
		return endian.Big.AppendUint64(buf, math.Float64bits(v)), nil
	default:
		return nil, errs.Wrap("appendFloatPayload", errs.ErrInvalidMarker)
	}
}

func decodeComplex(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeComplex", errs.ErrUnexpectedEnd)
	}

	width, ok := floatByteWidth(buf[1])
	if !ok {
		return nil, 0, errs.Wrap("value.decodeComplex", errs.ErrInvalidMarker)
	}

	total := 2 + 2*width
	if len(buf) < total {
		return nil, 0, errs.Wrap("value.decodeComplex", errs.ErrUnexpectedEnd)
	}

	re, im := 0.0, 0.0
	switch buf[1] {
	case '5':
		re = float64(math.Float32frombits(endian.Big.Uint32(buf[2:6])))
		im = float64(math.Float32frombits(endian.Big.Uint32(buf[6:10])))
	case '6':
		re = math.Float64frombits(endian.Big.Uint64(buf[2:10]))
		im = math.Float64frombits(endian.Big.Uint64(buf[10:18]))
	}

	return Complex{Class: buf[1], Re: re, Im: im}, total, nil
}
