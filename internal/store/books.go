package store

import (
	"sync"

	"github.com/shelfd/shelfd/pkg/model"
)

// BookStore holds the books collection.
type BookStore struct {
	mu    sync.RWMutex
	books []model.Book
}

// NewBookStore creates a BookStore seeded with the given books.
func NewBookStore(seed []model.Book) *BookStore {
	s := &BookStore{books: make([]model.Book, len(seed))}
	copy(s.books, seed)
	return s
}

// List returns all books in insertion order.
func (s *BookStore) List() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Book, len(s.books))
	copy(result, s.books)
	return result
}

// Get returns the book with the given id, or ErrNotFound.
func (s *BookStore) Get(id int) (model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Book{}, ErrNotFound
}

// FilterByCategory returns the books in the given category (exact,
// case-sensitive match). A non-empty author narrows the result to exact
// author matches; an empty author applies no narrowing.
func (s *BookStore) FilterByCategory(category, author string) []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Book, 0)
	for _, b := range s.books {
		if b.Category != category {
			continue
		}
		if author != "" && b.Author != author {
			continue
		}
		result = append(result, b)
	}
	return result
}

// Delete removes the first book with the given id, preserving the relative
// order of the survivors. Returns the removed book or ErrNotFound.
func (s *BookStore) Delete(id int) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return b, nil
		}
	}
	return model.Book{}, ErrNotFound
}

// Count returns the number of stored books.
func (s *BookStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
