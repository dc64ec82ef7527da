package file

import (
	"github.com/vsf-go/vsf/internal/errs"
	"lukechampine.com/blake3"
)

const hashDigestSize = 32

// Seal computes the whole-file BLAKE3 digest of buf with the 32 bytes at
// hashDataOffset zeroed, then writes the digest into that range. The hash
// field is zeroed during computation; the zeros are overwritten with the
// hash afterward.
//
// Seal mutates and returns buf; callers that need the pre-seal buffer
// intact should pass a copy.
func Seal(buf []byte, hashDataOffset int) ([]byte, error) {
	if hashDataOffset < 0 || hashDataOffset+hashDigestSize > len(buf) {
		return nil, errs.Wrap("file.Seal", errs.ErrTruncatedHeader)
	}

	clear(buf[hashDataOffset : hashDataOffset+hashDigestSize])

	digest := blake3.Sum256(buf)
	copy(buf[hashDataOffset:hashDataOffset+hashDigestSize], digest[:])

	return buf, nil
}

// Verify re-zeros the hash field of a sealed buffer, recomputes BLAKE3, and
// compares it against the stored digest.
func Verify(buf []byte, hashDataOffset int) error {
	if hashDataOffset < 0 || hashDataOffset+hashDigestSize > len(buf) {
		return errs.Wrap("file.Verify", errs.ErrTruncatedHeader)
	}

	stored := make([]byte, hashDigestSize)
	copy(stored, buf[hashDataOffset:hashDataOffset+hashDigestSize])

	working := make([]byte, len(buf))
	copy(working, buf)
	clear(working[hashDataOffset : hashDataOffset+hashDigestSize])

	digest := blake3.Sum256(working)
	for i := range digest {
		if digest[i] != stored[i] {
			return errs.Wrap("file.Verify", errs.ErrHashMismatch)
		}
	}

	return nil
}
