package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveID(t *testing.T) {
	ids := []string{"0190a1b2", "0190a1c3", "77ff"}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{"exact", "77ff", "77ff", nil},
		{"unique prefix", "0190a1b", "0190a1b2", nil},
		{"ambiguous prefix", "0190", "", ErrAmbiguousID},
		{"no match", "zz", "", ErrRecordNotFound},
		{"blank", "  ", "", ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveID(tt.ref, ids, ErrRecordNotFound)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindFolder(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	work, _ := tr.CreateFolder("Work")
	_, _ = tr.CreateFolder("Twin")
	_, _ = tr.CreateFolder("twin")

	byName, err := tr.FindFolder("work")
	require.NoError(t, err)
	assert.Equal(t, work.ID, byName.ID)

	byID, err := tr.FindFolder(work.ID)
	require.NoError(t, err)
	assert.Equal(t, work.ID, byID.ID)

	_, err = tr.FindFolder("twin")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = tr.FindFolder("nowhere")
	assert.ErrorIs(t, err, ErrFolderNotFound)
}
