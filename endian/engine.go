// Package endian provides the single byte-order engine vsf uses on the wire.
//
// Unlike a general-purpose binary format, vsf's wire format is always
// big-endian: there is no per-file or per-value byte-order flag to
// negotiate. This package still exposes the
// Engine abstraction (ByteOrder + AppendByteOrder combined) so the rest of
// the codec writes engine.PutUint32(...) / engine.AppendUint64(...) instead
// of hand-rolling byte shifts, matching how the wider example pack does
// binary encoding, while making the single fixed choice explicit.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from the standard library
// into one interface, matching binary.BigEndian's method set.
//
//	buf = Big.AppendUint64(buf, value) // no intermediate allocation
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Big is the one and only wire byte order vsf uses.
var Big Engine = binary.BigEndian
