package store

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shelfd/shelfd/pkg/model"
)

//go:embed seeddata/*.json
var defaultSeedFS embed.FS

// Seed file names looked up inside a seed directory (or the embedded
// defaults when no directory is given).
const (
	usersSeedFile = "users.json"
	postsSeedFile = "posts.json"
	booksSeedFile = "books.json"
)

// ErrSeedNotFound is returned when a seed directory is missing one of the
// expected seed files.
var ErrSeedNotFound = errors.New("seed file not found")

// Seeds holds the startup datasets for all three collections.
type Seeds struct {
	Users []model.User
	Posts []model.Post
	Books []model.Book
}

// LoadSeeds reads the seed datasets from dir. When dir is empty the
// embedded defaults are used. Each file must be a JSON array of records
// matching the collection's entity shape.
func LoadSeeds(dir string) (*Seeds, error) {
	read := func(name string) ([]byte, error) {
		if dir == "" {
			return defaultSeedFS.ReadFile("seeddata/" + name)
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrSeedNotFound, path)
			}
			return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
		}
		return data, nil
	}

	seeds := &Seeds{}

	for _, f := range []struct {
		name string
		dst  any
	}{
		{usersSeedFile, &seeds.Users},
		{postsSeedFile, &seeds.Posts},
		{booksSeedFile, &seeds.Books},
	} {
		data, err := read(f.name)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, f.dst); err != nil {
			return nil, fmt.Errorf("failed to parse seed file %s: %w", f.name, err)
		}
	}

	return seeds, nil
}

// NewStores builds the three record stores from the given seeds.
func NewStores(seeds *Seeds) (*UserStore, *PostStore, *BookStore) {
	return NewUserStore(seeds.Users), NewPostStore(seeds.Posts), NewBookStore(seeds.Books)
}
