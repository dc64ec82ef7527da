package file

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vsf-go/vsf/value"
)

func TestParse_RejectsBadMagic(t *testing.T) {
	_, err := Parse([]byte{0, 0, 0, 0})
	require.Error(t, err)
}

func TestParse_RejectsTruncatedHeader(t *testing.T) {
	buf, err := Assemble([]Section{{Label: "a", Body: []byte{1}}}, value.DefaultLimits())
	require.NoError(t, err)

	_, err = Parse(buf[:len(buf)-5])
	require.Error(t, err)
}

func TestParse_DetectsHashMismatchAfterTamper(t *testing.T) {
	buf, err := Assemble([]Section{{Label: "a", Body: []byte{1, 2, 3}}}, value.DefaultLimits())
	require.NoError(t, err)

	buf[len(buf)-1] ^= 0xFF

	f, err := Parse(buf)
	require.NoError(t, err) // structure still well-formed
	require.Error(t, f.Verify())
}

func TestFile_Section_NotFound(t *testing.T) {
	buf, err := Assemble([]Section{{Label: "a", Body: []byte{1}}}, value.DefaultLimits())
	require.NoError(t, err)

	f, err := Parse(buf)
	require.NoError(t, err)

	_, err = f.Section("missing")
	require.Error(t, err)
}

func TestFile_RawBytes_RejectsUnknownCompressionID(t *testing.T) {
	buf, err := Assemble([]Section{{Label: "a", Count: 0, Body: []byte{1, 2, 3}}}, value.DefaultLimits())
	require.NoError(t, err)

	f, err := Parse(buf)
	require.NoError(t, err)
	e, err := f.Section("a")
	require.NoError(t, err)

	f.buf[e.Offset] = 0xFF // corrupt the leading compress.ID byte

	_, err = f.RawBytes(e)
	require.Error(t, err)
}

func TestFile_Values_RejectsOnUnboxedSection(t *testing.T) {
	buf, err := Assemble([]Section{{Label: "a", Count: 0, Body: []byte{1}}}, value.DefaultLimits())
	require.NoError(t, err)

	f, err := Parse(buf)
	require.NoError(t, err)
	e, err := f.Section("a")
	require.NoError(t, err)

	_, err = f.Values(e)
	require.Error(t, err)
}
