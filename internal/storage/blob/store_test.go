package blob

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()

	_, ok, err := s.Get(KeyOrders)
	require.NoError(t, err)
	require.False(t, ok, "absent key must not be an error")

	require.NoError(t, s.Set(KeyOrders, []byte(`[1,2,3]`)))

	value, ok, err := s.Get(KeyOrders)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[1,2,3]`, string(value))

	require.NoError(t, s.Remove(KeyOrders))
	_, ok, err = s.Get(KeyOrders)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyCustomers, []byte(`[{"id":"1"}]`)))
	require.NoError(t, s.Set(KeyToken, []byte(`"abc"`)))

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)

	value, ok, err := reopened.Get(KeyCustomers)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"id":"1"}]`, string(value))

	token, ok, err := reopened.Get(KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `"abc"`, string(token))
}

func TestFileStoreRejectsInvalidJSON(t *testing.T) {
	s, err := OpenFileStore(filepath.Join(t.TempDir(), "demo.json"))
	require.NoError(t, err)
	require.Error(t, s.Set(KeyToken, []byte("not json")))
}

func TestFileStoreRemoveMissingKey(t *testing.T) {
	s, err := OpenFileStore(filepath.Join(t.TempDir(), "demo.json"))
	require.NoError(t, err)
	require.NoError(t, s.Remove("nope"))
}
