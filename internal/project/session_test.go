package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/AirframeDesk/internal/units"
)

func TestStoreAndRestoreSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.msgpack.zst")
	ac := testAircraft()

	s := NewSession("/tmp/regional.yaml", ac)
	require.NoError(t, StoreSession(path, s))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")

	restored, err := RestoreSession(path)
	require.NoError(t, err)
	assert.Equal(t, SessionVersion, restored.Version)
	assert.Equal(t, "/tmp/regional.yaml", restored.FilePath)
	assert.Equal(t, ac, restored.Aircraft)
	assert.True(t, s.SavedAt.Equal(restored.SavedAt))
}

func TestNewSession_CopiesAircraft(t *testing.T) {
	ac := testAircraft()
	s := NewSession("", ac)
	require.NotNil(t, s.Aircraft)
	assert.NotSame(t, ac, s.Aircraft)

	ac.Name = "Changed"
	ac.Engines[0].Position.X = units.New(99, units.Meter)
	assert.NotEqual(t, "Changed", s.Aircraft.Name)
	assert.NotEqual(t, ac.Engines[0].Position.X, s.Aircraft.Engines[0].Position.X)
}

func TestRestoreSession_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := RestoreSession(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(dir, "garbage")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not zstd"), 0644))
	_, err = RestoreSession(garbage)
	assert.Error(t, err)

	old := NewSession("", testAircraft())
	old.Version = SessionVersion + 1
	path := filepath.Join(dir, "old")
	require.NoError(t, StoreSession(path, old))
	_, err = RestoreSession(path)
	assert.ErrorIs(t, err, ErrSessionVersion)

	empty := NewSession("", nil)
	path = filepath.Join(dir, "empty")
	require.NoError(t, StoreSession(path, empty))
	_, err = RestoreSession(path)
	assert.ErrorIs(t, err, ErrEmptySession)
}
