// Option functions for configuring API.

package api

import (
	"log/slog"

	"github.com/shelfd/shelfd/pkg/logging"
)

// Option configures an API.
type Option func(*API)

// WithLogger sets the operational logger. If not set, logging is disabled.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		} else {
			a.log = logging.Nop()
		}
	}
}

// WithVersion sets the version string reported by the health endpoint.
func WithVersion(version string) Option {
	return func(a *API) {
		a.version = version
	}
}
