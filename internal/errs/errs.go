// Package errs defines the sentinel error values returned by the vsf codec.
//
// All decode/parse functions return one of these (optionally wrapped with
// additional context via errs.Wrap(context, errs.ErrXxx)) so callers can
// use errors.Is for dispatch. The codec never panics on malformed input.
package errs

import "errors"

var (
	// ErrInvalidMarker is returned when a type or EWE size marker byte is unrecognized.
	ErrInvalidMarker = errors.New("vsf: invalid marker")

	// ErrUnexpectedEnd is returned when the input is exhausted before a required field is read.
	ErrUnexpectedEnd = errors.New("vsf: unexpected end of input")

	// ErrNonCanonical is returned when an EWE integer used a non-minimal size class,
	// or bit-packed padding or lead bits are non-zero.
	ErrNonCanonical = errors.New("vsf: non-canonical encoding")

	// ErrUnknownAlgorithm is returned when a cryptographic algorithm-id byte is not in the registry.
	ErrUnknownAlgorithm = errors.New("vsf: unknown algorithm identifier")

	// ErrResourceLimit is returned when a declared size exceeds an implementation or caller limit.
	ErrResourceLimit = errors.New("vsf: resource limit exceeded")

	// ErrShapeMismatch is returned when a tensor payload length is inconsistent
	// with its shape, stride, or bit-depth.
	ErrShapeMismatch = errors.New("vsf: shape mismatch")

	// ErrBadMagic is returned when the file magic prefix does not match.
	ErrBadMagic = errors.New("vsf: bad magic")

	// ErrTruncatedHeader is returned when the header envelope is incomplete.
	ErrTruncatedHeader = errors.New("vsf: truncated header")

	// ErrOverlappingSections is returned when two label index entries describe
	// overlapping byte ranges.
	ErrOverlappingSections = errors.New("vsf: overlapping sections")

	// ErrSectionTypeCountMismatch is returned when a structured section's declared
	// item count does not match the number of Values actually present.
	ErrSectionTypeCountMismatch = errors.New("vsf: section type/count mismatch")

	// ErrHashMismatch is returned when whole-file hash verification fails.
	ErrHashMismatch = errors.New("vsf: file hash mismatch")

	// ErrDuplicateLabel is returned when the assembler is given two sections with the same label.
	ErrDuplicateLabel = errors.New("vsf: duplicate section label")

	// ErrLabelNotFound is returned when a section lookup by label fails.
	ErrLabelNotFound = errors.New("vsf: label not found")

	// ErrUnsupportedVersion is returned when a file's minimum-readable version exceeds
	// what this implementation supports.
	ErrUnsupportedVersion = errors.New("vsf: unsupported format version")

	// ErrUnknownCompression is returned for a compression-id byte outside the
	// closed set the codec registry knows how to decode.
	ErrUnknownCompression = errors.New("vsf: unknown compression identifier")

	// ErrCompressionNotApplicable is returned when a compression id other than
	// None is set on a structured (Count > 0) section.
	ErrCompressionNotApplicable = errors.New("vsf: compression not applicable to structured section")
)

// Wrap attaches context to cause, preserving errors.Is/As compatibility via %w.
// Returns nil if cause is nil.
func Wrap(context string, cause error) error {
	if cause == nil {
		return nil
	}

	return &wrapped{context: context, cause: cause}
}

type wrapped struct {
	context string
	cause   error
}

func (e *wrapped) Error() string { return e.context + ": " + e.cause.Error() }
func (e *wrapped) Unwrap() error { return e.cause }
