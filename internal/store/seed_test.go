package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeeds_EmbeddedDefaults(t *testing.T) {
	seeds, err := LoadSeeds("")
	require.NoError(t, err)

	assert.NotEmpty(t, seeds.Users)
	assert.NotEmpty(t, seeds.Posts)
	assert.NotEmpty(t, seeds.Books)

	// Seed ids are unique within each collection.
	seen := make(map[int]bool)
	for _, u := range seeds.Users {
		assert.False(t, seen[u.ID], "duplicate user id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestLoadSeeds_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	write("users.json", `[{"id": 1, "name": "Ann", "username": "ann", "email": "ann@example.com"}]`)
	write("posts.json", `[{"id": 1, "userId": 1, "title": "Hello"}]`)
	write("books.json", `[]`)

	seeds, err := LoadSeeds(dir)
	require.NoError(t, err)
	require.Len(t, seeds.Users, 1)
	assert.Equal(t, "ann", seeds.Users[0].Username)
	require.Len(t, seeds.Posts, 1)
	assert.Empty(t, seeds.Books)
}

func TestLoadSeeds_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(`[]`), 0644))

	_, err := LoadSeeds(dir)
	assert.ErrorIs(t, err, ErrSeedNotFound)
}

func TestLoadSeeds_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"users.json", "posts.json", "books.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`not json`), 0644))
	}

	_, err := LoadSeeds(dir)
	assert.Error(t, err)
}

func TestNewStores(t *testing.T) {
	seeds, err := LoadSeeds("")
	require.NoError(t, err)

	users, posts, books := NewStores(seeds)
	assert.Equal(t, len(seeds.Users), users.Count())
	assert.Equal(t, len(seeds.Posts), posts.Count())
	assert.Equal(t, len(seeds.Books), books.Count())
}
