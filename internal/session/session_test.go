package session

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/storefront-studio/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	s, err := Open(path)
	require.NoError(t, err)

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(client.User{ID: "7", Name: "Ada", Email: "ada@example.com"}))
	require.NoError(t, s.Save(client.User{ID: "8", Name: "Grace", Email: "grace@example.com"}))
	require.NoError(t, s.Close())

	// Reopen to prove the account survives a restart.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	u, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Grace", u.Name)

	require.NoError(t, s.Clear())
	_, ok, err = s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadUnreadableRecord(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.db.Create(&entry{Key: Key, Value: datatypes.JSON(`"not an object"`)}).Error)
	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}
