package store

import (
	"strings"
	"sync"

	"github.com/shelfd/shelfd/pkg/model"
)

// UserStore holds the users collection.
//
// IDs are assigned from an explicit counter rather than derived from the
// last element, so Create works on an empty store and deletions elsewhere
// can never cause id reuse.
type UserStore struct {
	mu     sync.RWMutex
	users  []model.User
	nextID int
}

// NewUserStore creates a UserStore seeded with the given users. The id
// counter starts one past the highest seed id.
func NewUserStore(seed []model.User) *UserStore {
	s := &UserStore{
		users:  make([]model.User, len(seed)),
		nextID: 1,
	}
	copy(s.users, seed)
	for _, u := range seed {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

// List returns all users in insertion order.
func (s *UserStore) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.User, len(s.users))
	copy(result, s.users)
	return result
}

// Get returns the user with the given id, or ErrNotFound.
func (s *UserStore) Get(id int) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// FilterByName returns the users whose name contains needle,
// case-insensitively. An empty needle matches every user.
func (s *UserStore) FilterByName(needle string) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle = strings.ToLower(needle)
	result := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			result = append(result, u)
		}
	}
	return result
}

// Create validates the fields, enforces username uniqueness, assigns the
// next id, and appends the new user. Returns the created user.
func (s *UserStore) Create(name, username, email string) (model.User, error) {
	if name == "" || username == "" || email == "" {
		return model.User{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return model.User{}, ErrDuplicateUsername
		}
	}

	user := model.User{
		ID:       s.nextID,
		Name:     name,
		Username: username,
		Email:    email,
	}
	s.nextID++
	s.users = append(s.users, user)
	return user, nil
}

// Count returns the number of stored users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
