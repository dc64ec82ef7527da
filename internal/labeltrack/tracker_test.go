package labeltrack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_TrackUnique(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Track("section.raw"))
	require.NoError(t, tr.Track("section.meta"))
	require.Equal(t, 2, tr.Count())
}

func TestTracker_TrackDuplicate(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Track("section.raw"))

	err := tr.Track("section.raw")
	require.Error(t, err)
}
