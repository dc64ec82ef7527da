package value

import (
	"github.com/vsf-go/vsf/ewe"
	"github.com/vsf-go/vsf/internal/errs"
)

// elementSpec describes the fixed on-wire width of one tensor element type
// and how many marker bytes declare it.
func elementSpec(buf []byte) (marker []byte, width int, err error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.elementSpec", errs.ErrUnexpectedEnd)
	}

	switch buf[0] {
	case 'u':
		if buf[1] == '0' {
			return buf[:2], 1, nil
		}

		bits, ok := widthBitsForClass(buf[1])
		if !ok {
			return nil, 0, errs.Wrap("value.elementSpec", errs.ErrInvalidMarker)
		}

		return buf[:2], bits / 8, nil

	case 'i':
		bits, ok := widthBitsForClass(buf[1])
		if !ok {
			return nil, 0, errs.Wrap("value.elementSpec", errs.ErrInvalidMarker)
		}

		return buf[:2], bits / 8, nil

	case 'f':
		w, ok := floatByteWidth(buf[1])
		if !ok {
			return nil, 0, errs.Wrap("value.elementSpec", errs.ErrInvalidMarker)
		}

		return buf[:2], w, nil

	case 'j':
		w, ok := floatByteWidth(buf[1])
		if !ok {
			return nil, 0, errs.Wrap("value.elementSpec", errs.ErrInvalidMarker)
		}

		return buf[:2], 2 * w, nil

	case 's', 'c':
		if len(buf) < 3 {
			return nil, 0, errs.Wrap("value.elementSpec", errs.ErrUnexpectedEnd)
		}

		fracBits, ok := widthBitsForClass(buf[1])
		if !ok {
			return nil, 0, errs.Wrap("value.elementSpec", errs.ErrInvalidMarker)
		}

		expBits, ok := widthBitsForClass(buf[2])
		if !ok {
			return nil, 0, errs.Wrap("value.elementSpec", errs.ErrInvalidMarker)
		}

		width := fracBits/8 + expBits/8
		if buf[0] == 'c' {
			width *= 2
		}

		return buf[:3], width, nil

	default:
		return nil, 0, errs.Wrap("value.elementSpec", errs.ErrInvalidMarker)
	}
}

func productDims(dims []uint64) (uint64, bool) {
	var p uint64 = 1
	for _, d := range dims {
		if d == 0 {
			return 0, true
		}

		next := p * d
		if p != 0 && next/p != d {
			return 0, false // overflow
		}

		p = next
	}

	return p, true
}

// ContiguousTensor is a dense row-major multi-dimensional array over any
// scalar element type.
type ContiguousTensor struct {
	ElemMarker []byte
	Shape      []uint64
	Data       []byte
}

func (t ContiguousTensor) Marker() []byte {
	return append([]byte{'t'}, t.ElemMarker...)
}

func (t ContiguousTensor) Append(buf []byte, limits Limits) ([]byte, error) {
	if _, width, err := elementSpec(t.ElemMarker); err != nil {
		return nil, err
	} else if n, ok := productDims(t.Shape); !ok {
		return nil, errs.Wrap("ContiguousTensor.Append", errs.ErrResourceLimit)
	} else if err := limits.checkElementCount(n); err != nil {
		return nil, err
	} else if uint64(len(t.Data)) != n*uint64(width) {
		return nil, errs.Wrap("ContiguousTensor.Append", errs.ErrShapeMismatch)
	}

	buf = append(buf, 't')
	buf = append(buf, t.ElemMarker...)
	buf = ewe.AppendUint64(buf, uint64(len(t.Shape)))
	for _, d := range t.Shape {
		buf = ewe.AppendUint64(buf, d)
	}

	return append(buf, t.Data...), nil
}

func decodeContiguousTensor(buf []byte, limits Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeContiguousTensor", errs.ErrUnexpectedEnd)
	}

	elemMarker, width, err := elementSpec(buf[1:])
	if err != nil {
		return nil, 0, err
	}

	off := 1 + len(elemMarker)

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
		return nil, 0, errs.Wrap("value.decodeContiguousTensor", errs.ErrResourceLimit)
	}
	if err := limits.checkElementCount(count); err != nil {
		return nil, 0, err
	}

	dataLen := count * uint64(width)
	if err := limits.checkByteLength(dataLen); err != nil {
		return nil, 0, err
	}
	if uint64(len(buf)-off) < dataLen {
		return nil, 0, errs.Wrap("value.decodeContiguousTensor", errs.ErrUnexpectedEnd)
	}

	data := make([]byte, dataLen)
	copy(data, buf[off:off+int(dataLen)])
	off += int(dataLen)

	marker := make([]byte, len(elemMarker))
	copy(marker, elemMarker)

	return ContiguousTensor{ElemMarker: marker, Shape: shape, Data: data}, off, nil
}

// StridedTensor is a tensor whose payload order is described by explicit
// element strides rather than being implicitly row-major.
type StridedTensor struct {
	ElemMarker []byte
	Shape      []uint64
	Strides    []uint64
	Data       []byte
}

func (t StridedTensor) Marker() []byte {
	return append([]byte{'q'}, t.ElemMarker...)
}

func (t StridedTensor) Append(buf []byte, limits Limits) ([]byte, error) {
	if len(t.Strides) != len(t.Shape) {
		return nil, errs.Wrap("StridedTensor.Append", errs.ErrShapeMismatch)
	}

	_, width, err := elementSpec(t.ElemMarker)
	if err != nil {
		return nil, err
	}

	n, ok := productDims(t.Shape)
	if !ok {
		return nil, errs.Wrap("StridedTensor.Append", errs.ErrResourceLimit)
	}
	if err := limits.checkElementCount(n); err != nil {
		return nil, err
	}
	if uint64(len(t.Data)) != n*uint64(width) {
		return nil, errs.Wrap("StridedTensor.Append", errs.ErrShapeMismatch)
	}

	buf = append(buf, 'q')
	buf = append(buf, t.ElemMarker...)
	buf = ewe.AppendUint64(buf, uint64(len(t.Shape)))
	for _, d := range t.Shape {
		buf = ewe.AppendUint64(buf, d)
	}
	for _, s := range t.Strides {
		buf = ewe.AppendUint64(buf, s)
	}

	return append(buf, t.Data...), nil
}

func decodeStridedTensor(buf []byte, limits Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeStridedTensor", errs.ErrUnexpectedEnd)
	}

	elemMarker, width, err := elementSpec(buf[1:])
	if err != nil {
		return nil, 0, err
	}

	off := 1 + len(elemMarker)

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

	strides := make([]uint64, ndim)
	for i := range strides {
		s, n, err := ewe.DecodeUint64(buf[off:], limits.eweLimits())
		if err != nil {
			return nil, 0, err
		}
		strides[i] = s
		off += n
	}

	count, ok := productDims(shape)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeStridedTensor", errs.ErrResourceLimit)
	}
	if err := limits.checkElementCount(count); err != nil {
		return nil, 0, err
	}

	dataLen := count * uint64(width)
	if err := limits.checkByteLength(dataLen); err != nil {
		return nil, 0, err
	}
	if uint64(len(buf)-off) < dataLen {
		return nil, 0, errs.Wrap("value.decodeStridedTensor", errs.ErrUnexpectedEnd)
	}

	data := make([]byte, dataLen)
	copy(data, buf[off:off+int(dataLen)])
	off += int(dataLen)

	marker := make([]byte, len(elemMarker))
	copy(marker, elemMarker)

	return StridedTensor{ElemMarker: marker, Shape: shape, Strides: strides, Data: data}, off, nil
}
