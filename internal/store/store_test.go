package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfd/shelfd/pkg/model"
)

func seedUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "Leanne Graham", Username: "bret", Email: "leanne@april.biz"},
		{ID: 2, Name: "Ervin Howell", Username: "antonette", Email: "ervin@melissa.tv"},
		{ID: 5, Name: "Chelsey Dietrich", Username: "kamren", Email: "chelsey@annie.ca"},
	}
}

func seedPosts() []model.Post {
	return []model.Post{
		{ID: 1, UserID: 1, Title: "First"},
		{ID: 2, UserID: 1, Title: "Second"},
		{ID: 3, UserID: 2, Title: "First"},
	}
}

func seedBooks() []model.Book {
	return []model.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Category: "fiction"},
		{ID: 2, Title: "The Go Programming Language", Author: "Alan Donovan", Category: "programming"},
		{ID: 3, Title: "A Fire Upon the Deep", Author: "Vernor Vinge", Category: "fiction"},
	}
}

// --- UserStore ---

func TestUserStore_ListPreservesOrder(t *testing.T) {
	s := NewUserStore(seedUsers())

	users := s.List()
	require.Len(t, users, 3)
	assert.Equal(t, []int{1, 2, 5}, []int{users[0].ID, users[1].ID, users[2].ID})
}

func TestUserStore_Get(t *testing.T) {
	s := NewUserStore(seedUsers())

	u, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "antonette", u.Username)

	_, err = s.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_CreateAssignsNextID(t *testing.T) {
	s := NewUserStore(seedUsers())

	u, err := s.Create("Ann", "ann", "ann@example.com")
	require.NoError(t, err)
	// Highest seed id is 5, so the counter continues from 6.
	assert.Equal(t, 6, u.ID)
	assert.Equal(t, 4, s.Count())

	// The new user is appended at the end.
	users := s.List()
	assert.Equal(t, "ann", users[len(users)-1].Username)
}

func TestUserStore_CreateOnEmptyStore(t *testing.T) {
	s := NewUserStore(nil)

	u, err := s.Create("Ann", "ann", "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, 1, s.Count())
}

func TestUserStore_CreateDuplicateUsername(t *testing.T) {
	s := NewUserStore(seedUsers())

	_, err := s.Create("Someone Else", "bret", "else@example.com")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Equal(t, 3, s.Count(), "conflict must not mutate the store")
}

func TestUserStore_CreateMissingFields(t *testing.T) {
	s := NewUserStore(seedUsers())

	for _, tc := range []struct {
		name, username, email string
	}{
		{"", "x", "x@example.com"},
		{"X", "", "x@example.com"},
		{"X", "x", ""},
	} {
		_, err := s.Create(tc.name, tc.username, tc.email)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.Equal(t, 3, s.Count())
}

func TestUserStore_IDsStayMonotonicAfterCreate(t *testing.T) {
	s := NewUserStore(nil)

	prev := 0
	for i := 0; i < 5; i++ {
		u, err := s.Create("U", "u"+string(rune('a'+i)), "u@example.com")
		require.NoError(t, err)
		assert.Greater(t, u.ID, prev)
		prev = u.ID
	}
}

func TestUserStore_FilterByName(t *testing.T) {
	s := NewUserStore(seedUsers())

	// Case-insensitive substring match.
	got := s.FilterByName("LEANNE")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// Substring across words.
	got = s.FilterByName("ie")
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].ID)

	// Empty needle matches everything.
	assert.Len(t, s.FilterByName(""), 3)

	// No match yields an empty, non-nil slice.
	got = s.FilterByName("zzz")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// --- PostStore ---

func TestPostStore_Get(t *testing.T) {
	s := NewPostStore(seedPosts())

	p, err := s.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 2, p.UserID)

	_, err = s.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostStore_FilterByUser(t *testing.T) {
	s := NewPostStore(seedPosts())

	// Primary filter only.
	got := s.FilterByUser(1, "")
	require.Len(t, got, 2)

	// Title narrows the result.
	got = s.FilterByUser(1, "Second")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	// Title must match exactly and case-sensitively.
	assert.Empty(t, s.FilterByUser(1, "second"))

	// Unknown user yields an empty, non-nil slice.
	got = s.FilterByUser(42, "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPostStore_FilterDoesNotMutate(t *testing.T) {
	s := NewPostStore(seedPosts())

	_ = s.FilterByUser(1, "First")
	posts := s.List()
	require.Len(t, posts, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{posts[0].ID, posts[1].ID, posts[2].ID})
}

// --- BookStore ---

func TestBookStore_FilterByCategory(t *testing.T) {
	s := NewBookStore(seedBooks())

	got := s.FilterByCategory("fiction", "")
	require.Len(t, got, 2)

	// Author narrows the result.
	got = s.FilterByCategory("fiction", "Vernor Vinge")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	// Category is case-sensitive.
	assert.Empty(t, s.FilterByCategory("Fiction", ""))
}

func TestBookStore_DeleteRemovesFirstMatchAndKeepsOrder(t *testing.T) {
	s := NewBookStore(seedBooks())

	removed, err := s.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, "The Go Programming Language", removed.Title)
	assert.Equal(t, 2, s.Count())

	// Survivors keep their relative order.
	books := s.List()
	assert.Equal(t, []int{1, 3}, []int{books[0].ID, books[1].ID})
}

func TestBookStore_DeleteNotFoundLeavesStoreUnchanged(t *testing.T) {
	s := NewBookStore(seedBooks())

	_, err := s.Delete(99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, s.Count())
}
