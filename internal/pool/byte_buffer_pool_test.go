package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 5)
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte{1, 2, 3})
	bb.MustWrite([]byte{4, 5})

	require.Equal(t, []byte{1, 2, 3, 4, 5}, bb.Bytes())
}

func TestByteBuffer_Grow_RetainsContent(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.MustWrite([]byte("ab"))

	bb.Grow(1 << 20)
	require.GreaterOrEqual(t, bb.Cap(), 2+(1<<20))
	require.Equal(t, []byte("ab"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPutRoundTrip(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	bb.MustWrite([]byte("section body"))
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := NewByteBuffer(4)
	bb.Grow(100)
	require.Greater(t, bb.Cap(), 8)

	p.Put(bb) // must not panic, silently discards
}

func TestSectionAndFileBuffers_IndependentPools(t *testing.T) {
	section := GetSectionBuffer()
	section.MustWrite([]byte{0xAA})
	PutSectionBuffer(section)

	file := GetFileBuffer()
	require.Equal(t, 0, file.Len())
	PutFileBuffer(file)
}
