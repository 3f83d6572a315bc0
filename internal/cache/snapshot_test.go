package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/openroam/wander/internal/cache"
	"github.com/openroam/wander/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(savedAt time.Time) *cache.Snapshot {
	return &cache.Snapshot{
		Center: models.SearchCenter{
			Coordinates: models.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
			Label:       "Paris, France",
		},
		Mood:         "eat",
		RadiusMeters: 1500,
		Places: []models.Place{
			{
				ID:             "node/123",
				Name:           "Corner Cafe",
				Category:       "cafe",
				Coordinates:    models.Coordinates{Latitude: 48.8570, Longitude: 2.3530},
				DistanceMeters: 74.2,
				RelevanceScore: 13297.87,
				Attributes:     map[string]string{"cuisine": "french"},
			},
		},
		SavedAt: savedAt,
	}
}

func TestFileCache_SaveAndLoad(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	fc := cache.NewFileCache(filepath.Join(dir, "last-search.json"))

	snapshot := testSnapshot(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, fc.Save(snapshot))

	loaded, err := fc.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snapshot.Center, loaded.Center)
	assert.Equal(t, "eat", loaded.Mood)
	assert.InEpsilon(t, 1500.0, loaded.RadiusMeters, 1e-9)
	require.Len(t, loaded.Places, 1)
	assert.Equal(t, snapshot.Places[0], loaded.Places[0])
	assert.True(t, snapshot.SavedAt.Equal(loaded.SavedAt))
}

func TestFileCache_SaveOverwrites(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	fc := cache.NewFileCache(filepath.Join(dir, "last-search.json"))

	first := testSnapshot(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, fc.Save(first))

	second := testSnapshot(time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC))
	second.Mood = "fun"
	second.Places = nil
	require.NoError(t, fc.Save(second))

	loaded, err := fc.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "fun", loaded.Mood)
	assert.Empty(t, loaded.Places)
	assert.True(t, second.SavedAt.Equal(loaded.SavedAt))
}

func TestFileCache_SaveCreatesParentDirs(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	fc := cache.NewFileCache(filepath.Join(dir, "nested", "deeper", "last-search.json"))

	require.NoError(t, fc.Save(testSnapshot(time.Now().UTC())))

	loaded, err := fc.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
}

func TestFileCache_LoadMissing(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	fc := cache.NewFileCache(filepath.Join(dir, "does-not-exist.json"))

	loaded, err := fc.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileCache_LoadCorrupt(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "last-search.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fc := cache.NewFileCache(path)

	loaded, err := fc.Load()
	require.Error(t, err)
	require.Nil(t, loaded)
	assert.Contains(t, err.Error(), "failed to decode snapshot")
}
