package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/renegocia/internal/services/web/module"
)

const fallbackPattern = "/"

// probeMethods are the methods offered in Allow headers for unmatched
// requests.
var probeMethods = []string{http.MethodGet, http.MethodPost}

// ComposeInput carries modules and shared composition contracts.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
	// NotFound renders unmatched paths. Defaults to http.NotFound.
	NotFound http.Handler
}

// Compose builds a root HTTP handler from modules. Every module pattern is
// owned by exactly one module. Unmatched requests get 405 with an Allow
// header when the path is served under another method, else NotFound.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(root, feature, input.Dependencies, seen); err != nil {
			return nil, err
		}
	}

	notFound := input.NotFound
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}
	root.Handle(fallbackPattern, fallback(root, notFound))
	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, deps module.Dependencies, seen map[string]string) error {
	mount, err := resolveMount(feature, deps)
	if err != nil {
		return err
	}
	for _, pattern := range mount.Patterns {
		if previous, ok := seen[pattern]; ok {
			return fmt.Errorf("module %q duplicates pattern %q owned by module %q", feature.ID(), pattern, previous)
		}
		seen[pattern] = feature.ID()
		root.Handle(pattern, mount.Handler)
	}
	return nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	if len(mount.Patterns) == 0 {
		return module.Mount{}, fmt.Errorf("mount module %q: at least one pattern is required", feature.ID())
	}
	patterns := make([]string, 0, len(mount.Patterns))
	for _, pattern := range mount.Patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || pattern == fallbackPattern {
			return module.Mount{}, fmt.Errorf("mount module %q: pattern %q is reserved or empty", feature.ID(), pattern)
		}
		patterns = append(patterns, pattern)
	}
	mount.Patterns = patterns
	return mount, nil
}

func fallback(root *http.ServeMux, notFound http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(root, r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		notFound.ServeHTTP(w, r)
	})
}

func allowedMethods(root *http.ServeMux, r *http.Request) []string {
	var allow []string
	for _, method := range probeMethods {
		if method == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := root.Handler(probe); pattern != fallbackPattern && pattern != "" {
			allow = append(allow, method)
		}
	}
	return allow
}
