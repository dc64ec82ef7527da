package compress

// NoOpCompressor bypasses compression entirely, returning input unchanged.
//
// Use when a section is already compressed by its caller, incompressible
// (random or encrypted data), or when the section is small enough that the
// codec byte overhead outweighs any savings.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
