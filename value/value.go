// Package value implements vsf's ~211-variant typed Value universe and its
// exhaustive encode/decode dispatcher.
//
// Value is a small interface rather than one giant tagged struct: each
// family (primitive, Spirix, tensor, bit-packed tensor, string, metadata
// scalar, crypto primitive) gets its own Go type, and Decode dispatches on
// the wire marker bytes to the right family decoder. The ~211 on-wire
// variants are not 211 hand-written Go types -- Spirix and tensor variants
// are parametrized by fraction/exponent class and element marker
// respectively and generated programmatically, which is how the dispatch
// table can guarantee completeness by construction instead of by a
// 211-armed switch statement.
package value

import (
	"github.com/vsf-go/vsf/ewe"
	"github.com/vsf-go/vsf/internal/errs"
)

// Value is any decoded or to-be-encoded vsf scalar/tensor/metadata item.
type Value interface {
	// Marker returns the full wire marker for this value (one to three
	// bytes: type letter plus any class/algorithm suffix), without payload.
	Marker() []byte

	// Append encodes marker+payload and appends the result to buf.
	Append(buf []byte, limits Limits) ([]byte, error)
}

// Limits bounds decoder resource consumption.
type Limits struct {
	// MaxEWEByteWidth bounds any single EWE integer's materialized payload width.
	MaxEWEByteWidth int
	// MaxTensorElements bounds product(shape) for any tensor or bit-packed tensor.
	MaxTensorElements uint64
	// MaxSectionBytes bounds the total byte length of any string or section payload.
	MaxSectionBytes uint64
}

// DefaultLimits returns the limits applied when a caller supplies none.
func DefaultLimits() Limits {
	return Limits{
		MaxEWEByteWidth:   1 << 20, // 1 MiB
		MaxTensorElements: 1 << 32, // 4 billion elements
		MaxSectionBytes:   1 << 30, // 1 GiB
	}
}

func (l Limits) eweLimits() ewe.Limits { return ewe.Limits{MaxByteWidth: l.MaxEWEByteWidth} }

func (l Limits) checkElementCount(n uint64) error {
	if l.MaxTensorElements != 0 && n > l.MaxTensorElements {
		return errs.Wrap("value.checkElementCount", errs.ErrResourceLimit)
	}

	return nil
}

func (l Limits) checkByteLength(n uint64) error {
	if l.MaxSectionBytes != 0 && n > l.MaxSectionBytes {
		return errs.Wrap("value.checkByteLength", errs.ErrResourceLimit)
	}

	return nil
}

// DecodeOption configures a decode call, using the functional-options
// pattern specialized to Limits.
type DecodeOption func(*Limits)

// WithMaxEWEByteWidth overrides the maximum materialized EWE payload width.
func WithMaxEWEByteWidth(n int) DecodeOption {
	return func(l *Limits) { l.MaxEWEByteWidth = n }
}

// WithMaxTensorElements overrides the maximum tensor element count.
func WithMaxTensorElements(n uint64) DecodeOption {
	return func(l *Limits) { l.MaxTensorElements = n }
}

// WithMaxSectionBytes overrides the maximum string/section byte length.
func WithMaxSectionBytes(n uint64) DecodeOption {
	return func(l *Limits) { l.MaxSectionBytes = n }
}

func applyOptions(opts []DecodeOption) Limits {
	l := DefaultLimits()
	for _, opt := range opts {
		opt(&l)
	}

	return l
}
