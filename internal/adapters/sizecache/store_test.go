package sizecache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskrun/internal/adapters/sizecache"
	"go.trai.ch/taskrun/internal/core/domain"
)

func TestStore_ReplaceAndGet(t *testing.T) {
	store, err := sizecache.NewStore(filepath.Join(t.TempDir(), ".sizecache.json"))
	require.NoError(t, err)

	entry := domain.SizeEntry{Path: "build/widget.js", Raw: 100, Gzip: 60, Brotli: 50, Digest: "abc"}
	require.NoError(t, store.Replace([]domain.SizeEntry{entry}))

	got, err := store.Get("build/widget.js")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry, *got)

	missing, err := store.Get("build/other.js")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".sizecache.json")

	first, err := sizecache.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Replace([]domain.SizeEntry{
		{Path: "build/a.js", Raw: 1},
		{Path: "build/b.js", Raw: 2},
	}))

	second, err := sizecache.Open(path)
	require.NoError(t, err)

	got, err := second.Get("build/b.js")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.Raw)
}

func TestStore_ReplaceDropsStaleEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sizecache.json")
	store, err := sizecache.NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Replace([]domain.SizeEntry{{Path: "build/old.js"}}))
	require.NoError(t, store.Replace([]domain.SizeEntry{{Path: "build/new.js"}}))

	reopened, err := sizecache.NewStore(path)
	require.NoError(t, err)
	old, err := reopened.Get("build/old.js")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sizecache.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := sizecache.NewStore(path)
	require.NoError(t, err)

	got, err := store.Get("build/a.js")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sizecache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := sizecache.NewStore(path)
	require.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_Unreadable(t *testing.T) {
	_, err := sizecache.NewStore(t.TempDir())
	require.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())
}
