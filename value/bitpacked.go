package value

import (
	"github.com/vsf-go/vsf/ewe"
	"github.com/vsf-go/vsf/internal/bitio"
	"github.com/vsf-go/vsf/internal/errs"
)

// BitPackedTensor packs N = product(shape) unsigned integers of bitDepth
// bits each, MSB-first with no gaps between elements, the final byte
// zero-padded in its low bits.
type BitPackedTensor struct {
	BitDepth int // 1..256

	Shape []uint64

	// Elements holds one big-endian byte slice per packed integer. Each
	// slice has exactly elementByteLen(BitDepth) bytes; any bits above the
	// low BitDepth bits (i.e. the high bits of Elements[i][0]) must be zero.
	Elements [][]byte
}

func (BitPackedTensor) Marker() []byte { return []byte{'p'} }

// elementByteLen returns the number of bytes needed to hold bitDepth bits.
func elementByteLen(bitDepth int) int {
	return (bitDepth + 7) / 8
}

func (t BitPackedTensor) Append(buf []byte, limits Limits) ([]byte, error) {
	if t.BitDepth < 1 || t.BitDepth > 256 {
		return nil, errs.Wrap("BitPackedTensor.Append", errs.ErrShapeMismatch)
	}

	n, ok := productDims(t.Shape)
	if !ok {
		return nil, errs.Wrap("BitPackedTensor.Append", errs.ErrResourceLimit)
	}
	if err := limits.checkElementCount(n); err != nil {
		return nil, err
	}
	if uint64(len(t.Elements)) != n {
		return nil, errs.Wrap("BitPackedTensor.Append", errs.ErrShapeMismatch)
	}

	elemLen := elementByteLen(t.BitDepth)
	lead := elemLen*8 - t.BitDepth // zero high bits the first byte of each element must carry
	for _, e := range t.Elements {
		if len(e) != elemLen {
			return nil, errs.Wrap("BitPackedTensor.Append", errs.ErrShapeMismatch)
		}
		if lead > 0 && e[0]>>uint(8-lead) != 0 {
			return nil, errs.Wrap("BitPackedTensor.Append", errs.ErrNonCanonical)
		}
	}

	buf = append(buf, 'p')
	buf = ewe.AppendUint64(buf, uint64(t.BitDepth%256)) // bit_depth=256 encodes as 0
	buf = ewe.AppendUint64(buf, uint64(len(t.Shape)))
	for _, d := range t.Shape {
		buf = ewe.AppendUint64(buf, d)
	}

	packedLen := (int(n)*t.BitDepth + 7) / 8
	if err := limits.checkByteLength(uint64(packedLen)); err != nil {
		return nil, err
	}

	w := bitio.NewWriter(make([]byte, 0, packedLen))
	bitsInFirst := 8 - lead
	for _, e := range t.Elements {
		w.WriteBits(uint64(e[0]), bitsInFirst)
		for _, b := range e[1:] {
			w.WriteBits(uint64(b), 8)
		}
	}

	return append(buf, w.Bytes()...), nil
}

func decodeBitPackedTensor(buf []byte, limits Limits) (Value, int, error) {
	if len(buf) < 1 {
		return nil, 0, errs.Wrap("value.decodeBitPackedTensor", errs.ErrUnexpectedEnd)
	}

	off := 1

	bitDepth, n, err := ewe.DecodeUint64(buf[off:], limits.eweLimits())
	if err != nil {
		return nil, 0, err
	}
	off += n
	if bitDepth == 0 {
		bitDepth = 256 // encoded bit_depth 0 denotes 256
	}
	if bitDepth < 1 || bitDepth > 256 {
		return nil, 0, errs.Wrap("value.decodeBitPackedTensor", errs.ErrShapeMismatch)
	}

	ndim, n, err := ewe.DecodeUint64(buf[off:], limits.eweLimits())
	if err != nil {
		return nil, 0, err
	}
	off += n

	shape := make([]uint64, ndim)
	for i := range shape {
		d, n, err := ewe.DecodeUint64(buf[off:], limits.eweLimits())
		if err != nil {
			return nil, 0, err
		}
		shape[i] = d
		off += n
	}

	count, ok := productDims(shape)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeBitPackedTensor", errs.ErrResourceLimit)
	}
	if err := limits.checkElementCount(count); err != nil {
		return nil, 0, err
	}

	packedLen := (int(count)*int(bitDepth) + 7) / 8
	if err := limits.checkByteLength(uint64(packedLen)); err != nil {
		return nil, 0, err
	}
	if len(buf)-off < packedLen {
		return nil, 0, errs.Wrap("value.decodeBitPackedTensor", errs.ErrUnexpectedEnd)
	}

	elemLen := elementByteLen(int(bitDepth))
	lead := elemLen*8 - int(bitDepth)
	bitsInFirst := 8 - lead

	r := bitio.NewReader(buf[off : off+packedLen])
	elements := make([][]byte, count)
	for i := range elements {
		elem := make([]byte, elemLen)

		v, ok := r.ReadBits(bitsInFirst)
		if !ok {
			return nil, 0, errs.Wrap("value.decodeBitPackedTensor", errs.ErrUnexpectedEnd)
		}
		elem[0] = byte(v)

		for j := 1; j < elemLen; j++ {
			v, ok := r.ReadBits(8)
			if !ok {
				return nil, 0, errs.Wrap("value.decodeBitPackedTensor", errs.ErrUnexpectedEnd)
			}
			elem[j] = byte(v)
		}

		elements[i] = elem
	}
	if !r.RemainingAreZero() {
		return nil, 0, errs.Wrap("value.decodeBitPackedTensor", errs.ErrNonCanonical)
	}

	off += packedLen

	return BitPackedTensor{BitDepth: int(bitDepth), Shape: shape, Elements: elements}, off, nil
}
