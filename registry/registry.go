// Package registry holds the closed, fixed-length algorithm tables referenced
// by vsf's cryptographic-primitive Values (hash, signature, public key, MAC).
//
// vsf's core treats every algorithm as opaque: it never signs, hashes with a
// user key, or verifies anything. All this package does is map a single
// lowercase-ASCII algorithm-id byte to a name and its fixed output length,
// so the codec can validate a byte sequence's length without inferring it.
package registry

import "github.com/vsf-go/vsf/internal/errs"

// Algorithm describes one entry of a closed registry.
type Algorithm struct {
	ID     byte
	Name   string
	Length int // fixed output length in bytes
}

// Hash algorithm identifiers.
const (
	HashBLAKE3   byte = 'b'
	HashSHA256   byte = 's'
	HashSHA512   byte = 'w'
	HashSHA3_256 byte = 'h'
	HashSHA3_512 byte = 'x'
)

// Signature algorithm identifiers.
const (
	SigEd25519    byte = 'e'
	SigECDSAP256  byte = 'c'
	SigRSA2048    byte = 'r'
	SigRSA3072    byte = 't'
	SigRSA4096    byte = 'f'
)

// Public key algorithm identifiers.
const (
	KeyEd25519  byte = 'e'
	KeyX25519   byte = 'x'
	KeyP256     byte = 'p'
	KeyP384     byte = 'q'
	KeyRSA2048  byte = 'r'
	KeyRSA3072  byte = 't'
	KeyRSA4096  byte = 'f'
)

// MAC algorithm identifiers.
const (
	MACHMACSHA256  byte = 'h'
	MACHMACSHA512  byte = 'm'
	MACPoly1305    byte = 'o'
	MACBLAKE3Keyed byte = 'k'
	MACCMACAES     byte = 'c'
)

// DefaultHash is the hash algorithm used where the caller leaves the choice
// open; it is distinct from the whole-file seal algorithm, which is
// unconditionally BLAKE3.
const DefaultHash = HashBLAKE3

var hashes = map[byte]Algorithm{
	HashBLAKE3:   {HashBLAKE3, "BLAKE3", 32},
	HashSHA256:   {HashSHA256, "SHA-256", 32},
	HashSHA512:   {HashSHA512, "SHA-512", 64},
	HashSHA3_256: {HashSHA3_256, "SHA3-256", 32},
	HashSHA3_512: {HashSHA3_512, "SHA3-512", 64},
}

var signatures = map[byte]Algorithm{
	SigEd25519:   {SigEd25519, "Ed25519", 64},
	SigECDSAP256: {SigECDSAP256, "ECDSA-P256", 64},
	SigRSA2048:   {SigRSA2048, "RSA-2048", 256},
	SigRSA3072:   {SigRSA3072, "RSA-3072", 384},
	SigRSA4096:   {SigRSA4096, "RSA-4096", 512},
}

var publicKeys = map[byte]Algorithm{
	KeyEd25519: {KeyEd25519, "Ed25519", 32},
	KeyX25519:  {KeyX25519, "X25519", 32},
	KeyP256:    {KeyP256, "P-256", 65},
	KeyP384:    {KeyP384, "P-384", 97},
	KeyRSA2048: {KeyRSA2048, "RSA-2048", 256},
	KeyRSA3072: {KeyRSA3072, "RSA-3072", 384},
	KeyRSA4096: {KeyRSA4096, "RSA-4096", 512},
}

var macs = map[byte]Algorithm{
	MACHMACSHA256:  {MACHMACSHA256, "HMAC-SHA256", 32},
	MACHMACSHA512:  {MACHMACSHA512, "HMAC-SHA512", 64},
	MACPoly1305:    {MACPoly1305, "Poly1305", 16},
	MACBLAKE3Keyed: {MACBLAKE3Keyed, "BLAKE3-keyed", 32},
	MACCMACAES:     {MACCMACAES, "CMAC-AES", 16},
}

// Family identifies which of the four closed registries an algorithm id is
// looked up in; the four families share the id byte space independently
// (a byte that means SHA3-256 as a hash means HMAC-SHA256 as a MAC).
type Family uint8

const (
	FamilyHash Family = iota
	FamilySignature
	FamilyPublicKey
	FamilyMAC
)

func tableFor(f Family) map[byte]Algorithm {
	switch f {
	case FamilyHash:
		return hashes
	case FamilySignature:
		return signatures
	case FamilyPublicKey:
		return publicKeys
	case FamilyMAC:
		return macs
	default:
		return nil
	}
}

// Lookup resolves an algorithm id within a family. It returns
// ErrUnknownAlgorithm for any id outside the closed set -- the decoder must
// never infer a length for an id it doesn't recognize.
func Lookup(f Family, id byte) (Algorithm, error) {
	table := tableFor(f)
	a, ok := table[id]
	if !ok {
		return Algorithm{}, errs.Wrap("registry.Lookup", errs.ErrUnknownAlgorithm)
	}

	return a, nil
}
