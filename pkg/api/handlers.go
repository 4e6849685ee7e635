package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/shelfd/shelfd/internal/store"
	"github.com/shelfd/shelfd/pkg/model"
)

// ErrorResponse is the uniform error body for the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  int    `json:"uptime"`
	Version string `json:"version,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// pathID parses the {id} path segment into the stores' native integer id
// type. A non-numeric id can never match a record, so callers treat a
// parse failure as not-found.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, false
	}
	return id, true
}

// handleRoot handles GET /.
func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Work in progress"))
}

// handleHealth handles GET /health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Uptime:  a.Uptime(),
		Version: a.version,
	})
}

// handleNotFound is the fallback for unmatched routes.
func (a *API) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, ErrMsgNotFound)
}

// handleListPosts handles GET /api/posts.
func (a *API) handleListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.posts.List())
}

// handleGetPost handles GET /api/posts/{id}.
func (a *API) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, ErrMsgPostNotFound)
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, ErrMsgPostNotFound)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// handleListPostsByUser handles GET /api/posts/userId/{userId}.
// An optional title query parameter narrows the result to exact title
// matches; no matches is an empty array, not an error.
func (a *API) handleListPostsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		writeJSON(w, http.StatusOK, []model.Post{})
		return
	}

	title := r.URL.Query().Get("title")
	writeJSON(w, http.StatusOK, a.posts.FilterByUser(userID, title))
}

// handleListUsers handles GET /api/users. An optional name query parameter
// filters by case-insensitive substring match.
func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	writeJSON(w, http.StatusOK, a.users.FilterByName(name))
}

// handleGetUser handles GET /api/users/{id}.
func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, ErrMsgUserNotFound)
		return
	}

	user, err := a.users.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, ErrMsgUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// createUserRequest is the accepted body for POST /api/users.
type createUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// decodeCreateUser reads a create-user body. Both JSON and urlencoded form
// bodies are accepted.
func decodeCreateUser(r *http.Request) (createUserRequest, error) {
	ct := r.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ct); err == nil && mt == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return createUserRequest{}, err
		}
		return createUserRequest{
			Name:     r.PostForm.Get("name"),
			Username: r.PostForm.Get("username"),
			Email:    r.PostForm.Get("email"),
		}, nil
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return createUserRequest{}, err
	}
	return req, nil
}

// handleCreateUser handles POST /api/users.
func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateUser(r)
	if err != nil {
		a.log.Debug("failed to decode create user body", "error", err)
		writeError(w, http.StatusBadRequest, ErrMsgInsufficientData)
		return
	}

	user, err := a.users.Create(
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Username),
		strings.TrimSpace(req.Email),
	)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMissingFields):
			writeError(w, http.StatusBadRequest, ErrMsgInsufficientData)
		case errors.Is(err, store.ErrDuplicateUsername):
			writeError(w, http.StatusConflict, ErrMsgUsernameTaken)
		default:
			a.log.Error("failed to create user", "error", err)
			writeError(w, http.StatusInternalServerError, ErrMsgInternal)
		}
		return
	}

	a.log.Info("user created", "id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusCreated, user)
}

// handleListBooks handles GET /api/books.
func (a *API) handleListBooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.books.List())
}

// handleGetBook handles GET /api/books/{id}.
func (a *API) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, ErrMsgBookNotFound)
		return
	}

	book, err := a.books.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, ErrMsgBookNotFound)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// handleListBooksByCategory handles GET /api/books/category/{category}.
// An optional author query parameter narrows the result to exact author
// matches; no matches is an empty array, not an error.
func (a *API) handleListBooksByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	author := r.URL.Query().Get("author")
	writeJSON(w, http.StatusOK, a.books.FilterByCategory(category, author))
}

// handleDeleteBook handles DELETE /api/books/{id}.
func (a *API) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, ErrMsgBookNotFound)
		return
	}

	book, err := a.books.Delete(id)
	if err != nil {
		writeError(w, http.StatusNotFound, ErrMsgBookNotFound)
		return
	}

	a.log.Info("book deleted", "id", book.ID, "title", book.Title)
	writeJSON(w, http.StatusOK, book)
}
