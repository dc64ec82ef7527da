// Package labeltrack detects duplicate section labels during file assembly.
// It only needs to reject an exact duplicate label, so a hash collision
// between two distinct labels is not itself an error -- only a hash hit
// whose stored label string matches is.
package labeltrack

import (
	"github.com/vsf-go/vsf/internal/errs"
	"github.com/vsf-go/vsf/internal/hash"
)

// Tracker tracks section labels seen so far during one assemble call.
type Tracker struct {
	seen map[uint64]string
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{seen: make(map[uint64]string)}
}

// Track records label and returns ErrDuplicateLabel if it was already seen.
func (t *Tracker) Track(label string) error {
	id := hash.ID(label)

	if existing, ok := t.seen[id]; ok && existing == label {
		return errs.Wrap("labeltrack.Track", errs.ErrDuplicateLabel)
	}

	t.seen[id] = label

	return nil
}

// Count returns the number of distinct labels tracked.
func (t *Tracker) Count() int {
	return len(t.seen)
}
