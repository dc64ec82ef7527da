package compress

// ZstdCompressor compresses section bodies with Zstandard, favoring
// compression ratio over speed -- suited to cold sections that are written
// once and read rarely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
