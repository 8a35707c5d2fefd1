package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tempGuard(t *testing.T, wipers ...Wiper) *Guard {
	t.Helper()
	return NewGuard(filepath.Join(t.TempDir(), "ultimo_usuario.tmp"), zap.NewNop(), wipers...)
}

func TestCheck_FirstRunReportsNoChange(t *testing.T) {
	g := tempGuard(t)
	previous, changed := g.Check("alice")
	assert.Empty(t, previous)
	assert.False(t, changed)
}

func TestCheck_SameUserReportsNoChange(t *testing.T) {
	g := tempGuard(t)
	require.NoError(t, g.Remember("alice"))

	previous, changed := g.Check("alice")
	assert.Equal(t, "alice", previous)
	assert.False(t, changed)
}

func TestCheck_DifferentUserReportsChange(t *testing.T) {
	g := tempGuard(t)
	require.NoError(t, g.Remember("alice"))

	previous, changed := g.Check("bob")
	assert.Equal(t, "alice", previous)
	assert.True(t, changed)
}

func TestCheck_TrimsWhitespace(t *testing.T) {
	g := tempGuard(t)
	require.NoError(t, os.WriteFile(g.path, []byte("alice\n"), 0o644))

	previous, changed := g.Check("alice")
	assert.Equal(t, "alice", previous)
	assert.False(t, changed)
}

func TestWipe_RunsEveryWiperAndKeepsFirstError(t *testing.T) {
	firstErr := errors.New("prefs locked")
	var calls []string

	g := tempGuard(t,
		WiperFunc(func() error { calls = append(calls, "history"); return nil }),
		WiperFunc(func() error { calls = append(calls, "prefs"); return firstErr }),
		WiperFunc(func() error { calls = append(calls, "breaks"); return errors.New("later") }),
	)

	err := g.Wipe()
	assert.ErrorIs(t, err, firstErr)
	assert.Equal(t, []string{"history", "prefs", "breaks"}, calls, "wipe keeps going after failures")
}

func TestCurrentUsername_NotEmpty(t *testing.T) {
	// Environment dependent, but some identity must always resolve.
	assert.NotEmpty(t, CurrentUsername())
}
