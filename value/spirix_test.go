package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpirix_RoundTrip(t *testing.T) {
	s := Spirix{
		FracClass: '6', // 64-bit fraction
		ExpClass:  '4', // 16-bit exponent
		Frac:      big.NewInt(-12345),
		Exp:       big.NewInt(7),
	}

	buf, err := s.Append(nil, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, []byte{'s', '6', '4'}, buf[:3])
	require.Len(t, buf, 3+8+2)

	got, n, err := decodeSpirix(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	gs := got.(Spirix)
	require.Equal(t, 0, s.Frac.Cmp(gs.Frac))
	require.Equal(t, 0, s.Exp.Cmp(gs.Exp))
}

func TestSpirix_AllWidthClasses(t *testing.T) {
	classes := []byte{'3', '4', '5', '6', '7'}
	for _, fc := range classes {
		for _, ec := range classes {
			s := Spirix{FracClass: fc, ExpClass: ec, Frac: big.NewInt(1), Exp: big.NewInt(-1)}
			buf, err := s.Append(nil, DefaultLimits())
			require.NoError(t, err)

			got, n, err := decodeSpirix(buf, DefaultLimits())
			require.NoError(t, err)
			require.Equal(t, len(buf), n)
			require.Equal(t, 0, s.Frac.Cmp(got.(Spirix).Frac))
			require.Equal(t, 0, s.Exp.Cmp(got.(Spirix).Exp))
		}
	}
}

func TestCircle_RoundTrip(t *testing.T) {
	re := Spirix{FracClass: '5', ExpClass: '3', Frac: big.NewInt(100), Exp: big.NewInt(2)}
	im := Spirix{FracClass: '5', ExpClass: '3', Frac: big.NewInt(-50), Exp: big.NewInt(-2)}
	c := Circle{FracClass: '5', ExpClass: '3', Re: re, Im: im}

	buf, err := c.Append(nil, DefaultLimits())
	require.NoError(t, err)

	got, n, err := decodeCircle(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	gc := got.(Circle)
	require.Equal(t, 0, re.Frac.Cmp(gc.Re.Frac))
	require.Equal(t, 0, im.Frac.Cmp(gc.Im.Frac))
}

func TestCircle_MismatchedClassesRejected(t *testing.T) {
	re := Spirix{FracClass: '5', ExpClass: '3', Frac: big.NewInt(1), Exp: big.NewInt(1)}
	im := Spirix{FracClass: '6', ExpClass: '3', Frac: big.NewInt(1), Exp: big.NewInt(1)}
	c := Circle{FracClass: '5', ExpClass: '3', Re: re, Im: im}

	_, err := c.Append(nil, DefaultLimits())
	require.Error(t, err)
}

func TestSpirix_RejectsOutOfRangeFraction(t *testing.T) {
	s := Spirix{FracClass: '3', ExpClass: '3', Frac: big.NewInt(1000), Exp: big.NewInt(0)}
	_, err := s.Append(nil, DefaultLimits())
	require.Error(t, err)
}
