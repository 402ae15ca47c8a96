package ui

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"datalens/app"
	"datalens/internal"
	"datalens/internal/config"
	"datalens/internal/errors"

	"github.com/gin-gonic/gin"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// Server is the dashboard web server: an embedded template page plus the
// JSON endpoints its plotting frontend polls on every control change.
type Server struct {
	router    *gin.Engine
	service   *app.ExploreService
	cfg       *config.Config
	templates *template.Template
	log       *internal.Logger
}

// NewServer creates and wires the dashboard server
func NewServer(cfg *config.Config, service *app.ExploreService) (*Server, error) {
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		"pct": func(v float64) string {
			return template.HTMLEscapeString(formatPct(v))
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	s := &Server{
		router:    gin.Default(),
		service:   service,
		cfg:       cfg,
		templates: templates,
		log:       internal.DefaultLogger,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.StaticFS("/static", http.FS(mustSub(embeddedFiles, "static")))

	s.router.GET("/", s.handleIndex)
	s.router.GET("/guide", s.handleGuide)

	api := s.router.Group("/api")
	{
		api.GET("/dataset", s.handleDataset)
		api.GET("/sample", s.handleSample)
		api.GET("/summary", s.handleSummary)
		api.GET("/scatter", s.handleScatter)
		api.GET("/frequency", s.handleFrequency)
		api.GET("/corr", s.handleCorrelation)
		api.GET("/profiles", s.handleProfiles)
	}
}

// Start runs the HTTP server on addr
func (s *Server) Start(addr string) error {
	s.log.Info("dashboard listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying handler for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// statusForError maps error codes to HTTP statuses. Missing or empty data is
// a user-visible condition, not a server fault.
func statusForError(err error) int {
	switch {
	case errors.HasCode(err, errors.CodeNotFound):
		return http.StatusNotFound
	case errors.HasCode(err, errors.CodeEmptyData):
		return http.StatusUnprocessableEntity
	case errors.HasCode(err, errors.CodeInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	s.log.Error("request %s failed: %v", c.Request.URL.Path, err)
	c.JSON(statusForError(err), gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
