package value

import (
	"github.com/vsf-go/vsf/endian"
	"github.com/vsf-go/vsf/internal/errs"
)

// GeoCoordinate is a Dymaxion-projected Earth surface point, stored as an
// opaque 64-bit pattern the codec never interprets.
type GeoCoordinate uint64

func (GeoCoordinate) Marker() []byte { return []byte{'w'} }

func (g GeoCoordinate) Append(buf []byte, _ Limits) ([]byte, error) {
	buf = append(buf, 'w')
	return endian.Big.AppendUint64(buf, uint64(g)), nil
}

func decodeGeoCoordinate(buf []byte, _ Limits) (Value, int, error) {
	if len(buf) < 9 {
		return nil, 0, errs.Wrap("value.decodeGeoCoordinate", errs.ErrUnexpectedEnd)
	}

	return GeoCoordinate(endian.Big.Uint64(buf[1:9])), 9, nil
}
