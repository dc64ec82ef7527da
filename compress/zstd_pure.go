package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/internal/pool"
)

// streamDecoderPool and streamEncoderPool keep warmed-up zstd encoders and
// decoders around across Compress/Decompress calls: per the klauspost/
// compress/zstd docs, a decoder "has been designed to operate without
// allocations after a warmup", so discarding one after a single section
// body would throw that away.
var streamDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to build pooled zstd decoder: %v", err))
		}

		return decoder
	},
}

var streamEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to build pooled zstd encoder: %v", err))
		}

		return encoder
	},
}

// Compress compresses data with Zstandard using a pooled, stateless encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := streamEncoderPool.Get().(*zstd.Encoder)
	defer streamEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data with a pooled decoder,
// appending into a pooled scratch buffer rather than letting DecodeAll
// allocate its own growing slice from scratch on every call.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := streamDecoderPool.Get().(*zstd.Decoder)
	defer streamDecoderPool.Put(decoder)

	scratch := pool.GetSectionBuffer()
	defer pool.PutSectionBuffer(scratch)

	decoded, err := decoder.DecodeAll(data, scratch.Bytes()[:0])
	if err != nil {
		return nil, errs.Wrap("compress.ZstdCompressor.Decompress", err)
	}

	out := make([]byte, len(decoded))
	copy(out, decoded)

	return out, nil
}
