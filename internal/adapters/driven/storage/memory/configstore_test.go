package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("github.token", "ghp_test"))

	val, ok := store.Get("github.token")
	require.True(t, ok)
	assert.Equal(t, "ghp_test", val)
	assert.Equal(t, "ghp_test", store.GetString("github.token"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("num", 7))
	require.NoError(t, store.Set("num64", int64(9)))
	require.NoError(t, store.Set("flag", true))
	require.NoError(t, store.Set("list", []any{"a", "b"}))

	assert.Equal(t, 7, store.GetInt("num"))
	assert.Equal(t, 9, store.GetInt("num64"))
	assert.True(t, store.GetBool("flag"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("list"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_NoOpPersistence(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
