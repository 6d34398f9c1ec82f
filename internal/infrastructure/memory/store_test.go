package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_SetGetDelete(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", "1"))
	v, found, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", v)

	require.NoError(t, s.Delete(ctx, "a", "missing"))
	_, found, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVStore_KeysByPrefix(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()
	for _, k := range []string{"gss:cache:b", "gss:cache:a", "other"} {
		require.NoError(t, s.Set(ctx, k, "x"))
	}

	keys, err := s.Keys(ctx, "gss:cache:")
	require.NoError(t, err)
	assert.Equal(t, []string{"gss:cache:a", "gss:cache:b"}, keys)
}

func TestKVStore_CanceledContext(t *testing.T) {
	s := NewKVStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.Set(ctx, "a", "1"), "отменённый контекст: ошибка хранилища")
}
