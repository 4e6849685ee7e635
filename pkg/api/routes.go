// Route registration for the shelfd API.

package api

import (
	"net/http"
)

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	// Liveness
	mux.HandleFunc("GET /{$}", a.handleRoot)
	mux.HandleFunc("GET /health", a.handleHealth)

	// Posts (read-only)
	mux.HandleFunc("GET /api/posts", a.handleListPosts)
	mux.HandleFunc("GET /api/posts/{id}", a.handleGetPost)
	mux.HandleFunc("GET /api/posts/userId/{userId}", a.handleListPostsByUser)

	// Users
	mux.HandleFunc("GET /api/users", a.handleListUsers)
	mux.HandleFunc("POST /api/users", a.handleCreateUser)
	mux.HandleFunc("GET /api/users/{id}", a.handleGetUser)

	// Books
	mux.HandleFunc("GET /api/books", a.handleListBooks)
	mux.HandleFunc("GET /api/books/{id}", a.handleGetBook)
	mux.HandleFunc("GET /api/books/category/{category}", a.handleListBooksByCategory)
	mux.HandleFunc("DELETE /api/books/{id}", a.handleDeleteBook)

	// Everything else is a JSON 404 rather than the mux's plain-text one.
	mux.HandleFunc("/", a.handleNotFound)
}
