// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/renegocia/internal/services/web/storage"
	"github.com/louisbranch/renegocia/internal/services/web/templates"
)

// Dependencies carries the shared runtime inputs every module mounts with.
type Dependencies struct {
	Store     storage.SlotStore
	Logger    *log.Logger
	Now       func() time.Time
	Location  *time.Location
	Localizer templates.Localizer
	Lang      string
	HTMXURL   string
}

// Clock returns Now, or time.Now when unset.
func (d Dependencies) Clock() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

// DisplayLocation returns Location, or UTC when unset.
func (d Dependencies) DisplayLocation() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

// Log returns Logger, or the standard logger when unset.
func (d Dependencies) Log() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Mount describes a module route mount. Patterns are http.ServeMux patterns
// owned by the module on the root mux.
type Mount struct {
	Patterns []string
	Handler  http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
