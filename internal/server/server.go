// Package server is the HTTP surface of the portfolio: the full page,
// the HTMX fragment endpoints that carry its click events, the hero
// event stream and the admin area.
package server

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/marcosmenezes/portfolio/internal/analytics"
	"github.com/marcosmenezes/portfolio/internal/config"
	"github.com/marcosmenezes/portfolio/internal/content"
	"github.com/marcosmenezes/portfolio/internal/logger"
	"github.com/marcosmenezes/portfolio/internal/metrics"
	"github.com/marcosmenezes/portfolio/internal/ui"
	"github.com/marcosmenezes/portfolio/web"
)

const (
	pageCookie  = "page_id"
	adminCookie = "admin_token"

	janitorInterval = time.Minute
	cleanupInterval = 24 * time.Hour
)

// Deps are the collaborators a Server is built from.
type Deps struct {
	Config  config.Config
	Content *content.Document
	Store   *analytics.Store
	Log     *logger.Logger

	// Intro timings; zero means the defaults.
	LoadDelay   time.Duration
	TypingSpeed time.Duration
}

// Server wires the page registry, analytics and metrics to a gin engine.
type Server struct {
	cfg     config.Config
	doc     *content.Document
	catalog *content.Catalog
	links   ui.Links
	pages   *ui.Pages
	store   *analytics.Store
	metrics *metrics.Metrics
	log     *logger.Logger

	adminToken string
	engine     *gin.Engine
}

// New builds a Server and its routes.
func New(d Deps) (*Server, error) {
	if d.Content == nil {
		return nil, errors.New("server: content is required")
	}
	if d.Store == nil {
		return nil, errors.New("server: analytics store is required")
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     d.Config,
		doc:     d.Content,
		catalog: d.Content.Catalog(),
		links:   ui.LinksFor(d.Content.Profile),
		pages: ui.NewPages(ui.PagesOptions{
			Greeting:    d.Content.Profile.Greeting,
			LoadDelay:   d.LoadDelay,
			TypingSpeed: d.TypingSpeed,
			TTL:         d.Config.SessionTTL,
		}),
		store:      d.Store,
		log:        d.Log,
		adminToken: token,
	}
	s.metrics = metrics.New(s.pages.Len)

	s.engine, err = s.routes()
	if err != nil {
		return nil, err
	}

	s.log.Info("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		s.log.Infof("Admin token (dev only): %s", s.adminToken)
	}
	if d.Config.UsingDefaultAdmin {
		s.log.Warn("Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
	}
	return s, nil
}

// Handler is the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Pages exposes the page registry.
func (s *Server) Pages() *ui.Pages {
	return s.pages
}

// Run serves on the configured address until ctx ends, then shuts down
// gracefully and tears down every mounted page.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	bgCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()
	go s.pages.RunJanitor(bgCtx, janitorInterval, func(n int) {
		if n > 0 {
			s.metrics.PagesEvicted.Add(float64(n))
			s.log.Debug("evicted idle pages")
		}
	})
	go s.runCleanup(bgCtx)

	errc := make(chan error, 1)
	go func() {
		s.log.Infof("Listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "http server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return errors.Wrap(err, "http server shutdown failed")
	}
	return nil
}

// Close tears down every mounted page.
func (s *Server) Close() {
	s.pages.Close()
}

func (s *Server) runCleanup(ctx context.Context) {
	s.cleanupVisitors(ctx)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupVisitors(ctx)
		}
	}
}

func (s *Server) cleanupVisitors(ctx context.Context) {
	if _, err := s.store.Cleanup(ctx, s.cfg.VisitorRetention); err != nil {
		s.log.Error(err, "Error cleaning up old visitor data")
	}
}

func (s *Server) routes() (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.visitorTracking())

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open static assets")
	}
	r.StaticFS("/static", http.FS(static))
	images, err := fs.Sub(web.Images, "images")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open images")
	}
	r.StaticFS("/images", http.FS(images))

	r.GET("/", s.handleIndex)
	r.GET("/hero/stream", s.handleHeroStream)
	r.POST("/theme", s.handleToggleTheme)
	r.POST("/nav/:section", s.handleNavigate)
	r.POST("/modal/close", s.handleCloseProject)
	r.POST("/projects/:id/open", s.handleOpenProject)
	r.GET("/projects/:id/link/:kind", s.handleProjectLink)
	r.GET("/go/:key", s.handleLink)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	s.setupAdminRoutes(r)
	return r, nil
}
