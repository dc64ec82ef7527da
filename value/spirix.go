package value

import (
	"math/big"

	"github.com/vsf-go/vsf/internal/errs"
)

// Spirix is the extended-numeric scalar family: a two's-complement fraction
// of 2^F bits followed by a two's-complement exponent of 2^E bits, where F
// and E are each one of the five width classes '3'..'7' (e.g. s64 = fraction
// class 6 -> 64 bits, exponent class 4 -> 16 bits). The codec never
// interprets the bit pattern arithmetically; it only preserves it.
type Spirix struct {
	FracClass byte
	ExpClass  byte
	Frac      *big.Int
	Exp       *big.Int
}

func (s Spirix) Marker() []byte { return []byte{'s', s.FracClass, s.ExpClass} }

func (s Spirix) Append(buf []byte, limits Limits) ([]byte, error) {
	fracBits, ok := widthBitsForClass(s.FracClass)
	if !ok {
		return nil, errs.Wrap("Spirix.Append", errs.ErrInvalidMarker)
	}
	expBits, ok := widthBitsForClass(s.ExpClass)
	if !ok {
		return nil, errs.Wrap("Spirix.Append", errs.ErrInvalidMarker)
	}

	buf = append(buf, 's', s.FracClass, s.ExpClass)

	var err error
	buf, err = appendSignedField(buf, s.Frac, fracBits)
	if err != nil {
		return nil, err
	}

	return appendSignedField(buf, s.Exp, expBits)
}

func decodeSpirix(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 3 {
		return nil, 0, errs.Wrap("value.decodeSpirix", errs.ErrUnexpectedEnd)
	}

	fracClass, expClass := buf[1], buf[2]
	fracBits, ok := widthBitsForClass(fracClass)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeSpirix", errs.ErrInvalidMarker)
	}
	expBits, ok := widthBitsForClass(expClass)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeSpirix", errs.ErrInvalidMarker)
	}

	off := 3
	frac, off, err := readSignedField(buf, off, fracBits)
	if err != nil {
		return nil, 0, err
	}
	exp, off, err := readSignedField(buf, off, expBits)
	if err != nil {
		return nil, 0, err
	}

	return Spirix{FracClass: fracClass, ExpClass: expClass, Frac: frac, Exp: exp}, off, nil
}

// Circle is a pair of Spirix scalars sharing F/E: real component then
// imaginary component.
type Circle struct {
	FracClass byte
	ExpClass  byte
	Re, Im    Spirix
}

func (c Circle) Marker() []byte { return []byte{'c', c.FracClass, c.ExpClass} }

func (c Circle) Append(buf []byte, limits Limits) ([]byte, error) {
	if c.Re.FracClass != c.FracClass || c.Re.ExpClass != c.ExpClass ||
		c.Im.FracClass != c.FracClass || c.Im.ExpClass != c.ExpClass {
		return nil, errs.Wrap("Circle.Append", errs.ErrShapeMismatch)
	}

	fracBits, ok := widthBitsForClass(c.FracClass)
	if !ok {
		return nil, errs.Wrap("Circle.Append", errs.ErrInvalidMarker)
	}
	expBits, ok := widthBitsForClass(c.ExpClass)
	if !ok {
		return nil, errs.Wrap("Circle.Append", errs.ErrInvalidMarker)
	}

	buf = append(buf, 'c', c.FracClass, c.ExpClass)

	var err error
	buf, err = appendSignedField(buf, c.Re.Frac, fracBits)
	if err != nil {
		return nil, err
	}
	buf, err = appendSignedField(buf, c.Re.Exp, expBits)
	if err != nil {
		return nil, err
	}
	buf, err = appendSignedField(buf, c.Im.Frac, fracBits)
	if err != nil {
		return nil, err
	}

	return appendSignedField(buf, c.Im.Exp, expBits)
}

func decodeCircle(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 3 {
		return nil, 0, errs.Wrap("value.decodeCircle", errs.ErrUnexpectedEnd)
	}

	fracClass, expClass := buf[1], buf[2]
	fracBits, ok := widthBitsForClass(fracClass)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeCircle", errs.ErrInvalidMarker)
	}
	expBits, ok := widthBitsForClass(expClass)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeCircle", errs.ErrInvalidMarker)
	}

	off := 3
	reFrac, off, err := readSignedField(buf, off, fracBits)
	if err != nil {
		return nil, 0, err
	}
	reExp, off, err := readSignedField(buf, off, expBits)
	if err != nil {
		return nil, 0, err
	}
	imFrac, off, err := readSignedField(buf, off, fracBits)
	if err != nil {
		return nil, 0, err
	}
	imExp, off, err := readSignedField(buf, off, expBits)
	if err != nil {
		return nil, 0, err
	}

	re := Spirix{FracClass: fracClass, ExpClass: expClass, Frac: reFrac, Exp: reExp}
	im := Spirix{FracClass: fracClass, ExpClass: expClass, Frac: imFrac, Exp: imExp}

	return Circle{FracClass: fracClass, ExpClass: expClass, Re: re, Im: im}, off, nil
}

// appendSignedField writes v as a bits-wide two's-complement big-endian field.
func appendSignedField(buf []byte, v *big.Int, bits int) ([]byte, error) {
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	min := new(big.Int).Neg(half)
	max := new(big.Int).Sub(half, big.NewInt(1))
	if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
		return nil, errs.Wrap("appendSignedField", errs.ErrShapeMismatch)
	}

	nbytes := bits / 8
	payload := make([]byte, nbytes)
	twosComplement(v, bits).FillBytes(payload)

	return append(buf, payload...), nil
}

// readSignedField reads a bits-wide two's-complement big-endian field
// starting at off and returns the decoded value and the offset past it.
func readSignedField(buf []byte, off, bits int) (*big.Int, int, error) {
	nbytes := bits / 8
	if len(buf) < off+nbytes {
		return nil, 0, errs.Wrap("readSignedField", errs.ErrUnexpectedEnd)
	}

	unsigned := new(big.Int).SetBytes(buf[off : off+nbytes])

	return fromTwosComplement(unsigned, bits), off + nbytes, nil
}
