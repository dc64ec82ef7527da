package value

import (
	"math"
	"math/big"
	"time"

	"github.com/vsf-go/vsf/endian"
	"github.com/vsf-go/vsf/internal/errs"
)

// eagleEpoch is the Eagle Time reference instant: 1969-07-20T20:17:40Z, the
// Apollo 11 lunar landing.
var eagleEpoch = time.Date(1969, time.July, 20, 20, 17, 40, 0, time.UTC)

// EagleTimeInt is an integer-seconds-since-epoch timestamp, using the same
// five width classes as the signed integer family.
type EagleTimeInt struct {
	Class   byte // '3'..'7'
	Seconds *big.Int
}

func (t EagleTimeInt) Marker() []byte { return []byte{'e', t.Class} }

func (t EagleTimeInt) Append(buf []byte, limits Limits) ([]byte, error) {
	buf = append(buf, 'e')
	return Int{Class: t.Class, V: t.Seconds}.appendPayload(buf)
}

func decodeEagleTimeInt(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeEagleTimeInt", errs.ErrUnexpectedEnd)
	}

	class := buf[1]
	bits, ok := widthBitsForClass(class)
	if !ok {
		return nil, 0, errs.Wrap("value.decodeEagleTimeInt", errs.ErrInvalidMarker)
	}

	v, off, err := readSignedField(buf, 2, bits)
	if err != nil {
		return nil, 0, err
	}

	return EagleTimeInt{Class: class, Seconds: v}, off, nil
}

// Time converts to a wall-clock instant.
func (t EagleTimeInt) Time() time.Time {
	return eagleEpoch.Add(time.Duration(t.Seconds.Int64()) * time.Second)
}

// EagleTimeFloat is a float-seconds-since-epoch timestamp, using the same
// two width classes as the IEEE float family.
type EagleTimeFloat struct {
	Class   byte // '5' or '6'
	Seconds float64
}

func (t EagleTimeFloat) Marker() []byte { return []byte{'r', t.Class} }

func (t EagleTimeFloat) Append(buf []byte, _ Limits) ([]byte, error) {
	buf = append(buf, 'r', t.Class)

	switch t.Class {
	case '5':
		return endian.Big.AppendUint32(buf, math.Float32bits(float32(t.Seconds))), nil
	case '6':
		return endian.Big.AppendUint64(buf, math.Float64bits(t.Seconds)), nil
	default:
		return nil, errs.Wrap("EagleTimeFloat.Append", errs.ErrInvalidMarker)
	}
}

func decodeEagleTimeFloat(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 2 {
		return nil, 0, errs.Wrap("value.decodeEagleTimeFloat", errs.ErrUnexpectedEnd)
	}

	switch buf[1] {
	case '5':
		if len(buf) < 6 {
			return nil, 0, errs.Wrap("value.decodeEagleTimeFloat", errs.ErrUnexpectedEnd)
		}

		bits := endian.Big.Uint32(buf[2:6])

		return EagleTimeFloat{Class: '5', Seconds: float64(math.Float32frombits(bits))}, 6, nil
	case '6':
		if len(buf) < 10 {
			return nil, 0, errs.Wrap("value.decodeEagleTimeFloat", errs.ErrUnexpectedEnd)
		}

		bits := endian.Big.Uint64(buf[2:10])

		return EagleTimeFloat{Class: '6', Seconds: math.Float64frombits(bits)}, 10, nil
	default:
		return nil, 0, errs.Wrap("value.decodeEagleTimeFloat", errs.ErrInvalidMarker)
	}
}

// Time converts to a wall-clock instant.
func (t EagleTimeFloat) Time() time.Time {
	return eagleEpoch.Add(time.Duration(t.Seconds * float64(time.Second)))
}

// appendPayload writes just the two's-complement payload for i, without a
// marker byte, shared between Int and EagleTimeInt.
func (i Int) appendPayload(buf []byte) ([]byte, error) {
	bits, ok := widthBitsForClass(i.Class)
	if !ok {
		return nil, errs.Wrap("Int.appendPayload", errs.ErrInvalidMarker)
	}

	return appendSignedField(append(buf, i.Class), i.V, bits)
}
