package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/internal/pool"
)

// blockCompressorPool recycles lz4.Compressor instances: each carries an
// internal hash table sized for its largest input so far, which is worth
// keeping warm across the many small section bodies a single file assembles.
var blockCompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxDecompressedSize bounds the adaptive buffer growth in Decompress: a
// section body that would expand past this under repeated doubling is
// treated as corrupt rather than chased with an ever-larger allocation.
const maxDecompressedSize = 128 * 1024 * 1024

// LZ4Compressor compresses section bodies with LZ4, favoring decompression
// speed over ratio -- suited to sections read often.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 compressor with default settings.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block using a pooled compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := blockCompressorPool.Get().(*lz4.Compressor)
	defer blockCompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, errs.Wrap("compress.LZ4Compressor.Compress", err)
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block of unknown expanded size by growing
// a pooled scratch buffer: it starts at 4x the compressed size (the common
// expansion ratio for section bodies), doubles on a short-buffer error, and
// gives up past maxDecompressedSize rather than chasing unbounded input.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	scratch := pool.GetSectionBuffer()
	defer pool.PutSectionBuffer(scratch)

	bufSize := len(data) * 4
	for bufSize <= maxDecompressedSize {
		scratch.Reset()
		scratch.Grow(bufSize)
		dst := scratch.Bytes()[:bufSize]

		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxDecompressedSize {
				bufSize *= 2

				continue
			}

			return nil, errs.Wrap("compress.LZ4Compressor.Decompress", err)
		}

		out := make([]byte, n)
		copy(out, dst[:n])

		return out, nil
	}

	return nil, errs.Wrap("compress.LZ4Compressor.Decompress", lz4.ErrInvalidSourceShortBuffer)
}
