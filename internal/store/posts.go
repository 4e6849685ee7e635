package store

import (
	"sync"

	"github.com/shelfd/shelfd/pkg/model"
)

// PostStore holds the posts collection. Posts are immutable after load, but
// the store still takes the read lock so it composes safely with any future
// mutation path.
type PostStore struct {
	mu    sync.RWMutex
	posts []model.Post
}

// NewPostStore creates a PostStore seeded with the given posts.
func NewPostStore(seed []model.Post) *PostStore {
	s := &PostStore{posts: make([]model.Post, len(seed))}
	copy(s.posts, seed)
	return s
}

// List returns all posts in insertion order.
func (s *PostStore) List() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Post, len(s.posts))
	copy(result, s.posts)
	return result
}

// Get returns the post with the given id, or ErrNotFound.
func (s *PostStore) Get(id int) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, ErrNotFound
}

// FilterByUser returns the posts authored by userID. A non-empty title
// narrows the result to posts whose title matches exactly; an empty title
// applies no narrowing.
func (s *PostStore) FilterByUser(userID int, title string) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Post, 0)
	for _, p := range s.posts {
		if p.UserID != userID {
			continue
		}
		if title != "" && p.Title != title {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Count returns the number of stored posts.
func (s *PostStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
