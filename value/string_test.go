package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "spans multiple words and punctuation."} {
		v := String(s)
		buf, err := v.Append(nil, DefaultLimits())
		require.NoError(t, err)
		require.Equal(t, byte('x'), buf[0])

		got, n, err := decodeString(buf, DefaultLimits())
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got.(String))
	}
}

func TestString_RejectsOversizeUnderLimit(t *testing.T) {
	v := String("some moderately sized text payload")
	limits := DefaultLimits()
	limits.MaxSectionBytes = 1

	_, err := v.Append(nil, limits)
	require.Error(t, err)
}
