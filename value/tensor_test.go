package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContiguousTensor_RoundTrip(t *testing.T) {
	// element type u3 (1 byte), shape [2,3], 6 elements of 1 byte each.
	data := []byte{1, 2, 3, 4, 5, 6}
	ct := ContiguousTensor{
		ElemMarker: []byte{'u', '3'},
		Shape:      []uint64{2, 3},
		Data:       data,
	}

	buf, err := ct.Append(nil, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, byte('t'), buf[0])

	got, n, err := decodeContiguousTensor(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	gt := got.(ContiguousTensor)
	require.Equal(t, ct.ElemMarker, gt.ElemMarker)
	require.Equal(t, ct.Shape, gt.Shape)
	require.Equal(t, ct.Data, gt.Data)
}

func TestContiguousTensor_ZeroDimIsScalar(t *testing.T) {
	ct := ContiguousTensor{ElemMarker: []byte{'f', '6'}, Shape: nil, Data: make([]byte, 8)}
	buf, err := ct.Append(nil, DefaultLimits())
	require.NoError(t, err)

	got, _, err := decodeContiguousTensor(buf, DefaultLimits())
	require.NoError(t, err)
	require.Empty(t, got.(ContiguousTensor).Shape)
}

func TestContiguousTensor_EmptyDimension(t *testing.T) {
	ct := ContiguousTensor{ElemMarker: []byte{'u', '3'}, Shape: []uint64{0, 5}, Data: nil}
	buf, err := ct.Append(nil, DefaultLimits())
	require.NoError(t, err)

	got, _, err := decodeContiguousTensor(buf, DefaultLimits())
	require.NoError(t, err)
	require.Empty(t, got.(ContiguousTensor).Data)
}

func TestContiguousTensor_RejectsDataLengthMismatch(t *testing.T) {
	ct := ContiguousTensor{ElemMarker: []byte{'u', '3'}, Shape: []uint64{2, 3}, Data: []byte{1, 2, 3}}
	_, err := ct.Append(nil, DefaultLimits())
	require.Error(t, err)
}

func TestStridedTensor_RoundTrip(t *testing.T) {
	data := make([]byte, 4*4) // 4 elements of 4 bytes (f5)
	for i := range data {
		data[i] = byte(i)
	}

	st := StridedTensor{
		ElemMarker: []byte{'f', '5'},
		Shape:      []uint64{2, 2},
		Strides:    []uint64{1, 2},
		Data:       data,
	}

	buf, err := st.Append(nil, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, byte('q'), buf[0])

	got, n, err := decodeStridedTensor(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	gs := got.(StridedTensor)
	require.Equal(t, st.Shape, gs.Shape)
	require.Equal(t, st.Strides, gs.Strides)
	require.Equal(t, st.Data, gs.Data)
}

func TestStridedTensor_RejectsStrideShapeLengthMismatch(t *testing.T) {
	st := StridedTensor{ElemMarker: []byte{'u', '3'}, Shape: []uint64{2, 2}, Strides: []uint64{1}, Data: []byte{1, 2, 3, 4}}
	_, err := st.Append(nil, DefaultLimits())
	require.Error(t, err)
}

func TestTensor_RejectsResourceLimitOnElementCount(t *testing.T) {
	ct := ContiguousTensor{ElemMarker: []byte{'u', '3'}, Shape: []uint64{1 << 40}, Data: nil}
	limits := DefaultLimits()
	limits.MaxTensorElements = 1 << 10
	_, err := ct.Append(nil, limits)
	require.Error(t, err)
}

func TestElementSpec_SpirixWidth(t *testing.T) {
	marker, width, err := elementSpec([]byte{'s', '6', '4'})
	require.NoError(t, err)
	require.Equal(t, []byte{'s', '6', '4'}, marker)
	require.Equal(t, 8+2, width)

	marker, width, err = elementSpec([]byte{'c', '3', '3'})
	require.NoError(t, err)
	require.Equal(t, []byte{'c', '3', '3'}, marker)
	require.Equal(t, 2*(1+1), width)
}

func TestElementSpec_RejectsUnknown(t *testing.T) {
	_, _, err := elementSpec([]byte{'x', '0'})
	require.Error(t, err)
}
