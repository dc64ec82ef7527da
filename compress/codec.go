package compress

import "github.com/vsf-go/vsf/internal/errs"

// Compressor compresses a byte slice and returns the compressed result.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// ID identifies one of the closed set of section compression algorithms. It
// is stored as a single byte immediately preceding the raw bytes of an
// unboxed section.
type ID byte

const (
	// None stores the section body uncompressed.
	None ID = 0
	// Zstd compresses the section body with Zstandard.
	Zstd ID = 1
	// LZ4 compresses the section body with LZ4 block compression.
	LZ4 ID = 2
)

var builtinCodecs = map[ID]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	LZ4:  NewLZ4Compressor(),
}

// CreateCodec resolves id to its Codec, or ErrUnknownCompression for any id
// outside the closed set above.
func CreateCodec(id ID) (Codec, error) {
	codec, ok := builtinCodecs[id]
	if !ok {
		return nil, errs.Wrap("compress.CreateCodec", errs.ErrUnknownCompression)
	}

	return codec, nil
}
