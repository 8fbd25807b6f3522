package kvstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetDelete(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get("session")
	assert.ErrorIs(t, err, ErrNoKey)
	assert.False(t, s.Has("session"))

	require.NoError(t, s.Set("session", []byte(`{"userId":"abc"}`)))
	assert.True(t, s.Has("session"))

	got, err := s.Get("session")
	require.NoError(t, err)
	assert.Equal(t, `{"userId":"abc"}`, string(got))

	require.NoError(t, s.Set("session", []byte(`{}`)))
	got, err = s.Get("session")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got), "Set should overwrite")

	require.NoError(t, s.Delete("session"))
	_, err = s.Get("session")
	assert.ErrorIs(t, err, ErrNoKey)

	// Deleting a missing key is fine.
	require.NoError(t, s.Delete("session"))
}

func TestKeysAreIndependent(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("users", []byte("a")))
	require.NoError(t, s.Set("settings", []byte("b")))
	require.NoError(t, s.Delete("users"))

	got, err := s.Get("settings")
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))
}

func TestNewCreatesNestedDir(t *testing.T) {
	dir := t.TempDir() + "/nested/state"
	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte("v")))
}

func TestSetSacrificesScratchOnFailure(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(scratchKey, []byte("old")))

	// A directory squatting on the key's path makes both write attempts
	// fail, which should still cost us the scratch key.
	require.NoError(t, os.Mkdir(s.path("users"), 0700))
	assert.Error(t, s.Set("users", []byte("v")))
	assert.False(t, s.Has(scratchKey))
}
