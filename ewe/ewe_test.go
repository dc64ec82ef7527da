package ewe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vsf-go/vsf/internal/errs"
)

func TestAppendDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
	}{
		{"zero", 0},
		{"small", 42},
		{"boundary 8-bit", 255},
		{"needs 16-bit", 4096},
		{"boundary 16-bit", 65535},
		{"needs 32-bit", 1 << 20},
		{"boundary 32-bit", 1<<32 - 1},
		{"needs 64-bit", 1 << 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := AppendUint64(nil, tt.v)
			got, n, err := DecodeUint64(buf, Limits{})
			require.NoError(t, err)
			require.Equal(t, len(buf), n)
			require.Equal(t, tt.v, got)
		})
	}
}

func TestEncode_CanonicalScenarios(t *testing.T) {
	// u32 = 4096, minus the 'u' type marker.
	buf := AppendUint64(nil, 4096)
	require.Equal(t, []byte{'4', 0x10, 0x00}, buf)

	buf = AppendUint64(nil, 0)
	require.Equal(t, []byte{'3', 0x00}, buf)
}

func TestDecode_NonCanonical(t *testing.T) {
	// Marker '4' (16-bit) encoding a value that fits in 8 bits is non-canonical.
	buf := []byte{'4', 0x00, 0xFF}
	_, _, err := Decode(buf, Limits{})
	require.ErrorIs(t, err, errs.ErrNonCanonical)
}

func TestDecode_UnexpectedEnd(t *testing.T) {
	buf := []byte{'5', 0x00, 0x01} // class 5 = 32 bits = 4 bytes, only 2 given
	_, _, err := Decode(buf, Limits{})
	require.ErrorIs(t, err, errs.ErrUnexpectedEnd)
}

func TestDecode_InvalidMarker(t *testing.T) {
	_, _, err := Decode([]byte{'!'}, Limits{})
	require.ErrorIs(t, err, errs.ErrInvalidMarker)

	// '0' is reserved for bool, rejected by the general decoder.
	_, _, err = Decode([]byte{'0', 0x01}, Limits{})
	require.ErrorIs(t, err, errs.ErrInvalidMarker)
}

func TestDecode_ResourceLimit(t *testing.T) {
	buf := []byte{'Z'} // class 42, 2^42 bits, far beyond any sane limit
	_, _, err := Decode(buf, Limits{MaxByteWidth: 16})
	require.ErrorIs(t, err, errs.ErrResourceLimit)
}

func TestSkipLen(t *testing.T) {
	buf := AppendUint64(nil, 1<<20)
	n, err := SkipLen(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
}

func TestAppend_RejectsNegative(t *testing.T) {
	_, err := Append(nil, big.NewInt(-1))
	require.Error(t, err)
}

func TestMinimalMarker_LargeValues(t *testing.T) {
	// A value requiring more than 64 bits still round-trips via big.Int.
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	buf, err := Append(nil, huge)
	require.NoError(t, err)

	got, n, err := Decode(buf, Limits{MaxByteWidth: 1 << 10})
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, 0, huge.Cmp(got))
}
