package stax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefineOverwrites(t *testing.T) {
	env := newEnv()

	_, ok := env.Get("x")
	assert.False(t, ok)

	env.Define("x", NewNumber(5))
	env.Define("x", NewNumber(7))

	val, ok := env.Get("x")
	require.True(t, ok)
	assert.True(t, val.Equal(NewNumber(7)))
	assert.Equal(t, 1, env.Len())
}

func TestEnvNamesSorted(t *testing.T) {
	env := newEnv()
	env.Define("zeta", NewNumber(1))
	env.Define("alpha", NewNumber(2))
	env.Define("mid", NewNumber(3))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, env.Names())
}

func TestEnvSnapshotIsACopy(t *testing.T) {
	env := newEnv()
	env.Define("x", NewNumber(1))

	snap := env.Snapshot()
	snap["x"] = NewNumber(99)
	snap["y"] = NewNumber(2)

	val, ok := env.Get("x")
	require.True(t, ok)
	assert.True(t, val.Equal(NewNumber(1)))
	_, ok = env.Get("y")
	assert.False(t, ok)
}
