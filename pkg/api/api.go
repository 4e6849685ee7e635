// Package api exposes the shelfd collections over a REST HTTP surface.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shelfd/shelfd/internal/store"
	"github.com/shelfd/shelfd/pkg/logging"
)

// API serves the users, posts, and books collections.
type API struct {
	users *store.UserStore
	posts *store.PostStore
	books *store.BookStore

	httpServer *http.Server
	port       int
	startTime  time.Time
	version    string
	log        *slog.Logger
}

// New creates an API serving the given stores on port.
func New(port int, users *store.UserStore, posts *store.PostStore, books *store.BookStore, opts ...Option) *API {
	a := &API{
		users: users,
		posts: posts,
		books: books,
		port:  port,
		log:   logging.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	mux := http.NewServeMux()
	a.registerRoutes(mux)

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      a.withMiddleware(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return a
}

// Handler returns the fully assembled handler, middleware included. Used by
// tests to exercise the server without binding a port.
func (a *API) Handler() http.Handler {
	return a.httpServer.Handler
}

// Start begins serving in a background goroutine.
func (a *API) Start() error {
	a.startTime = time.Now()

	a.log.Info("starting API server", "port", a.port)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("API server error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the server, draining in-flight requests.
func (a *API) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.httpServer.Shutdown(ctx)
}

// Uptime returns the server uptime in seconds.
func (a *API) Uptime() int {
	return int(time.Since(a.startTime).Seconds())
}
