package termsize

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_NotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	_, _, err = Query(int(f.Fd()))
	require.ErrorIs(t, err, ErrNotTerminal)
}

func TestTracker_Refresh(t *testing.T) {
	tr := NewTracker(0, 80)
	assert.Equal(t, 80, tr.Width())

	tr.query = func(int) (int, int, error) { return 132, 40, nil }
	w, err := tr.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 132, w)
	assert.Equal(t, 132, tr.Width())

	tr.query = func(int) (int, int, error) { return 0, 0, errors.New("gone") }
	w, err = tr.Refresh()
	require.Error(t, err)
	assert.Equal(t, 132, w, "failed refresh keeps last width")
	assert.Equal(t, 132, tr.Width())
}
