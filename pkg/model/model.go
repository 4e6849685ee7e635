// Package model defines the wire types served by the shelfd API.
package model

// User is a registered user of the service. IDs are assigned by the
// user store and are strictly increasing.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post is a piece of content authored by a user. Posts are read-only:
// they are seeded at startup and never mutated.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
}

// Book is a catalog entry. Books can be read and deleted.
type Book struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Year     int    `json:"year,omitempty"`
}
