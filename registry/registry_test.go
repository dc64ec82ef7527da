package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vsf-go/vsf/internal/errs"
)

func TestLookup_KnownAlgorithms(t *testing.T) {
	tests := []struct {
		family Family
		id     byte
		name   string
		length int
	}{
		{FamilyHash, HashBLAKE3, "BLAKE3", 32},
		{FamilyHash, HashSHA512, "SHA-512", 64},
		{FamilySignature, SigEd25519, "Ed25519", 64},
		{FamilySignature, SigRSA4096, "RSA-4096", 512},
		{FamilyPublicKey, KeyX25519, "X25519", 32},
		{FamilyMAC, MACPoly1305, "Poly1305", 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Lookup(tt.family, tt.id)
			require.NoError(t, err)
			require.Equal(t, tt.name, a.Name)
			require.Equal(t, tt.length, a.Length)
		})
	}
}

func TestLookup_UnknownAlgorithm(t *testing.T) {
	_, err := Lookup(FamilyHash, 'Z')
	require.ErrorIs(t, err, errs.ErrUnknownAlgorithm)
}

func TestTables_AllEntriesSelfConsistent(t *testing.T) {
	for _, table := range []map[byte]Algorithm{hashes, signatures, publicKeys, macs} {
		for id, a := range table {
			require.Equal(t, id, a.ID)
			require.Greater(t, a.Length, 0)
		}
	}
}
