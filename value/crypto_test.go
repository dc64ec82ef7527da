package value

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vsf-go/vsf/registry"
)

func TestHash_RoundTrip(t *testing.T) {
	h := Hash{AlgID: registry.HashBLAKE3, Data: make([]byte, 32)}
	for i := range h.Data {
		h.Data[i] = byte(i)
	}

	buf, err := h.Append(nil, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, []byte{'h', registry.HashBLAKE3}, buf[:2])

	got, n, err := decodeHash(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, h, got.(Hash))
}

func TestHash_RejectsWrongLength(t *testing.T) {
	h := Hash{AlgID: registry.HashBLAKE3, Data: make([]byte, 16)}
	_, err := h.Append(nil, DefaultLimits())
	require.Error(t, err)
}

func TestHash_RejectsUnknownAlgorithm(t *testing.T) {
	h := Hash{AlgID: 'Z', Data: make([]byte, 32)}
	_, err := h.Append(nil, DefaultLimits())
	require.Error(t, err)
}

func TestSignature_RoundTrip(t *testing.T) {
	s := Signature{AlgID: registry.SigEd25519, Data: make([]byte, 64)}
	buf, err := s.Append(nil, DefaultLimits())
	require.NoError(t, err)

	got, n, err := decodeSignature(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, s, got.(Signature))
}

func TestPublicKey_RoundTrip(t *testing.T) {
	k := PublicKey{AlgID: registry.KeyP384, Data: make([]byte, 97)}
	buf, err := k.Append(nil, DefaultLimits())
	require.NoError(t, err)

	got, n, err := decodePublicKey(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, k, got.(PublicKey))
}

func TestMAC_RoundTrip(t *testing.T) {
	m := MAC{AlgID: registry.MACPoly1305, Data: make([]byte, 16)}
	buf, err := m.Append(nil, DefaultLimits())
	require.NoError(t, err)

	got, n, err := decodeMAC(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, m, got.(MAC))
}

func TestDecodeHash_UnknownAlgorithmByte(t *testing.T) {
	_, _, err := decodeHash([]byte{'h', 'Z'}, DefaultLimits())
	require.Error(t, err)
}
