// Package compress implements vsf's optional, lossless section compression:
// an unboxed (Count == 0) body section may be stored Zstd- or LZ4-compressed,
// recorded as one compression-id byte immediately preceding the section's
// raw bytes. It is orthogonal to the typed Value codec and never applies to
// structured sections.
//
// # Supported algorithms
//
//   - None: stores the section unchanged.
//   - Zstd: best compression ratio, moderate speed; suited to cold sections.
//   - LZ4: fastest decompression, moderate ratio; suited to sections read often.
package compress
