package value

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEagleTimeInt_RoundTrip(t *testing.T) {
	v := EagleTimeInt{Class: '5', Seconds: big.NewInt(1000000)}
	buf, err := v.Append(nil, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, []byte{'e', '5'}, buf[:2])

	got, n, err := decodeEagleTimeInt(buf, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, 0, v.Seconds.Cmp(got.(EagleTimeInt).Seconds))
}

func TestEagleTimeInt_Time(t *testing.T) {
	v := EagleTimeInt{Class: '5', Seconds: big.NewInt(0)}
	require.True(t, v.Time().Equal(time.Date(1969, time.July, 20, 20, 17, 40, 0, time.UTC)))
}

func TestEagleTimeFloat_RoundTrip(t *testing.T) {
	for _, class := range []byte{'5', '6'} {
		v := EagleTimeFloat{Class: class, Seconds: 12345.5}
		buf, err := v.Append(nil, DefaultLimits())
		require.NoError(t, err)

		got, n, err := decodeEagleTimeFloat(buf, DefaultLimits())
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got.(EagleTimeFloat))
	}
}
