package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"datalens/app"
	"datalens/domain/table"
	"datalens/internal"
	"datalens/internal/config"
	"datalens/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// App is the headless JSON service: the same pipeline as the dashboard,
// read-only, for programmatic consumers.
type App struct {
	router  *chi.Mux
	service *app.ExploreService
	cfg     *config.Config
	log     *internal.Logger
}

// NewApp wires the API routes
func NewApp(cfg *config.Config, service *app.ExploreService) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		cfg:     cfg,
		log:     internal.DefaultLogger,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/api/overview", a.handleOverview)
	a.router.Get("/api/sample", a.handleSample)
	a.router.Get("/api/summary", a.handleSummary)
	a.router.Get("/api/frequency", a.handleFrequency)
	a.router.Get("/api/correlation", a.handleCorrelation)
}

// Start starts the HTTP server
func (a *App) Start(addr string) error {
	a.log.Info("API listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler for tests
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) handleOverview(w http.ResponseWriter, r *http.Request) {
	t, cls, err := a.service.Dataset(r.Context(), a.cfg.Data.FilePath)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, map[string]interface{}{
		"path":           a.cfg.Data.FilePath,
		"rows":           t.RowCount(),
		"columns":        t.ColumnNames(),
		"classification": cls,
	})
}

func (a *App) handleSample(w http.ResponseWriter, r *http.Request) {
	result, err := a.view(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	sample := result.Sample
	rows := make([][]string, sample.RowCount())
	for i := range rows {
		row := make([]string, sample.ColumnCount())
		for j, col := range sample.Columns() {
			row[j] = col.CellString(i)
		}
		rows[i] = row
	}
	a.writeJSON(w, map[string]interface{}{
		"headers":     sample.ColumnNames(),
		"rows":        rows,
		"sample_rows": result.SampleRows,
		"total_rows":  result.TotalRows,
	})
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	result, err := a.view(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, map[string]interface{}{"summary": result.Summary})
}

func (a *App) handleFrequency(w http.ResponseWriter, r *http.Request) {
	result, err := a.view(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, map[string]interface{}{
		"column":  result.Params.CategoricalCol,
		"top_n":   result.Params.TopN,
		"entries": result.Frequency,
	})
}

func (a *App) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	result, err := a.view(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, map[string]interface{}{
		"available": !result.Correlation.Empty(),
		"matrix":    result.Correlation,
	})
}

func (a *App) view(r *http.Request) (*app.ViewResult, error) {
	params := app.DefaultViewParams(a.cfg.Sampling.DefaultN)
	params.ShowCorr = true

	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("sample_n")); err == nil {
		params.SampleN = v
	}
	if q.Get("sample_method") == string(table.SampleRandom) {
		params.SampleMethod = table.SampleRandom
	}
	if v, err := strconv.Atoi(q.Get("top_n")); err == nil {
		params.TopN = v
	}
	params.CategoricalCol = q.Get("categorical_col")
	return a.service.View(r.Context(), a.cfg.Data.FilePath, params)
}

func (a *App) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.log.Error("failed to encode response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.HasCode(err, errors.CodeNotFound):
		status = http.StatusNotFound
	case errors.HasCode(err, errors.CodeEmptyData):
		status = http.StatusUnprocessableEntity
	case errors.HasCode(err, errors.CodeInvalidInput):
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
