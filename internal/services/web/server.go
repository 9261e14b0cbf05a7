package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/renegocia/internal/platform/timeouts"
	"github.com/louisbranch/renegocia/internal/services/web/app"
	module "github.com/louisbranch/renegocia/internal/services/web/module"
	"github.com/louisbranch/renegocia/internal/services/web/modules"
	"github.com/louisbranch/renegocia/internal/services/web/platform/httpx"
	"github.com/louisbranch/renegocia/internal/services/web/platform/observability"
	"github.com/louisbranch/renegocia/internal/services/web/platform/weberror"
	"github.com/louisbranch/renegocia/internal/services/web/routepath"
	webstatic "github.com/louisbranch/renegocia/internal/services/web/static"
	"github.com/louisbranch/renegocia/internal/services/web/storage"
	"github.com/louisbranch/renegocia/internal/services/web/templates"
)

// maxFormBytes caps posted form bodies.
const maxFormBytes = 64 << 10

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr  string
	Store     storage.SlotStore
	Logger    *log.Logger
	Localizer templates.Localizer
	Lang      string
	// Location is the display time zone for stored timestamps.
	Location *time.Location
	HTMXURL  string
	Now      func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.SlotStore
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	deps := module.Dependencies{
		Store:     cfg.Store,
		Logger:    logger,
		Now:       cfg.Now,
		Location:  cfg.Location,
		Localizer: cfg.Localizer,
		Lang:      cfg.Lang,
		HTMXURL:   strings.TrimSpace(cfg.HTMXURL),
	}
	h, err := app.Compose(app.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
		NotFound:     weberror.NotFoundHandler(deps),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(http.MethodGet+" "+routepath.Static, http.StripPrefix(routepath.Static, staticFiles()))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.LimitBody(maxFormBytes),
		observability.RequestLogger(logger),
	), nil
}

// staticFiles serves embedded assets without directory listings.
func staticFiles() http.Handler {
	files := http.FileServer(http.FS(webstatic.FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// NewServer validates config and constructs a web server. The server owns
// cfg.Store and closes it on Close.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("slot store is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		store:    cfg.Store,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening at %s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes the HTTP server and the slot store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close slot store: %v", err)
		}
	}
}
