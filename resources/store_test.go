package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Format_Default(t *testing.T) {
	s := NewStore("")

	got := s.Format(MsgCmdUnknown, "frobnicate")

	assert.Equal(t, "Unknown command: frobnicate. Type 'help' for available commands.", got)
}

func TestStore_Format_UnknownIDFallsBackToID(t *testing.T) {
	s := NewStore("")

	got := s.Format("no.such.message")

	assert.Equal(t, "no.such.message", got)
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore("")

	msg, ok := s.Lookup(MsgStdinReadFailed)
	assert.True(t, ok)
	assert.NotEmpty(t, msg)

	_, ok = s.Lookup("no.such.message")
	assert.False(t, ok)
}

func TestStore_Load_NoPathConfigured(t *testing.T) {
	s := NewStore("")

	assert.NoError(t, s.Load())
}

func TestStore_Load_OverrideWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cmd.unknown: \"nope: %s\"\n"), 0644))
	s := NewStore(path)

	require.NoError(t, s.Load())

	assert.Equal(t, "nope: ls", s.Format(MsgCmdUnknown, "ls"))
	// Messages not overridden still come from the defaults
	assert.Contains(t, s.Format(MsgStdinReadFailed, "eof"), "Reading from stdin failed")
}

func TestStore_Load_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, s.Load())
}

func TestStore_Load_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- bad"), 0644))
	s := NewStore(path)

	assert.Error(t, s.Load())
}

func TestStore_Unload_RevertsToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cmd.unknown: \"nope: %s\"\n"), 0644))
	s := NewStore(path)
	require.NoError(t, s.Load())

	require.NoError(t, s.Unload())

	assert.Contains(t, s.Format(MsgCmdUnknown, "ls"), "Unknown command")
}
