package value

import (
	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/registry"
)

// cryptoValue is the shared shape of the four cryptographic-primitive
// families: a type letter, one algorithm-identifier byte from a closed
// registry, then exactly Algorithm.Length bytes.
type cryptoValue struct {
	letter byte
	family registry.Family
	algID  byte
	data   []byte
}

func (c cryptoValue) marker() []byte { return []byte{c.letter, c.algID} }

func (c cryptoValue) append(buf []byte, limits Limits) ([]byte, error) {
	alg, err := registry.Lookup(c.family, c.algID)
	if err != nil {
		return nil, err
	}
	if len(c.data) != alg.Length {
		return nil, errs.Wrap("cryptoValue.append", errs.ErrShapeMismatch)
	}
	if err := limits.checkByteLength(uint64(len(c.data))); err != nil {
		return nil, err
	}

	buf = append(buf, c.letter, c.algID)

	return append(buf, c.data...), nil
}

func decodeCrypto(buf []byte, limits Limits, family registry.Family, letter byte, wrap func(algID byte, data []byte) Value) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeCrypto", errs.ErrUnexpectedEnd)
	}

	algID := buf[1]

	alg, err := registry.Lookup(family, algID)
	if err != nil {
		return nil, 0, err
	}
	if err := limits.checkByteLength(uint64(alg.Length)); err != nil {
		return nil, 0, err
	}

	if len(buf) < 2+alg.Length {
		return nil, 0, errs.Wrap("value.decodeCrypto", errs.ErrUnexpectedEnd)
	}

	data := make([]byte, alg.Length)
	copy(data, buf[2:2+alg.Length])

	return wrap(algID, data), 2 + alg.Length, nil
}

// Hash is the 'h' family: a digest under a registered hash algorithm.
type Hash struct {
	AlgID byte
	Data  []byte
}

func (h Hash) Marker() []byte { return []byte{'h', h.AlgID} }
func (h Hash) Append(buf []byte, limits Limits) ([]byte, error) {
	return cryptoValue{letter: 'h', family: registry.FamilyHash, algID: h.AlgID, data: h.Data}.append(buf, limits)
}

func decodeHash(buf []byte, limits Limits) (Value, int, error) {
	return decodeCrypto(buf, limits, registry.FamilyHash, 'h', func(id byte, data []byte) Value { return Hash{AlgID: id, Data: data} })
}

// Signature is the 'g' family.
type Signature struct {
	AlgID byte
	Data  []byte
}

func (s Signature) Marker() []byte { return []byte{'g', s.AlgID} }
func (s Signature) Append(buf []byte, limits Limits) ([]byte, error) {
	return cryptoValue{letter: 'g', family: registry.FamilySignature, algID: s.AlgID, data: s.Data}.append(buf, limits)
}

func decodeSignature(buf []byte, limits Limits) (Value, int, error) {
	return decodeCrypto(buf, limits, registry.FamilySignature, 'g', func(id byte, data []byte) Value { return Signature{AlgID: id, Data: data} })
}

// PublicKey is the 'k' family.
type PublicKey struct {
	AlgID byte
	Data  []byte
}

func (k PublicKey) Marker() []byte { return []byte{'k', k.AlgID} }
func (k PublicKey) Append(buf []byte, limits Limits) ([]byte, error) {
	return cryptoValue{letter: 'k', family: registry.FamilyPublicKey, algID: k.AlgID, data: k.Data}.append(buf, limits)
}

func decodePublicKey(buf []byte, limits Limits) (Value, int, error) {
	return decodeCrypto(buf, limits, registry.FamilyPublicKey, 'k', func(id byte, data []byte) Value { return PublicKey{AlgID: id, Data: data} })
}

// MAC is the 'a' family.
type MAC struct {
	AlgID byte
	Data  []byte
}

func (m MAC) Marker() []byte { return []byte{'a', m.AlgID} }
func (m MAC) Append(buf []byte, limits Limits) ([]byte, error) {
	return cryptoValue{letter: 'a', family: registry.FamilyMAC, algID: m.AlgID, data: m.Data}.append(buf, limits)
}

func decodeMAC(buf []byte, limits Limits) (Value, int, error) {
	return decodeCrypto(buf, limits, registry.FamilyMAC, 'a', func(id byte, data []byte) Value { return MAC{AlgID: id, Data: data} })
}
