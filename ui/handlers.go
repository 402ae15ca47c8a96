package ui

import (
	"fmt"
	"io/fs"
	"net/http"
	"strconv"

	"datalens/app"
	"datalens/domain/table"

	"github.com/gin-gonic/gin"
)

// previewRows caps how many sample rows the preview endpoint returns
const previewRows = 100

// indexData feeds the dashboard template
type indexData struct {
	Path           string
	TotalRows      int
	Columns        []string
	Classification table.Classification
	Params         app.ViewParams
	Error          string
}

func (s *Server) handleIndex(c *gin.Context) {
	data := indexData{
		Path:   s.cfg.Data.FilePath,
		Params: app.DefaultViewParams(s.cfg.Sampling.DefaultN),
	}

	t, cls, err := s.service.Dataset(c.Request.Context(), s.cfg.Data.FilePath)
	if err != nil {
		// The session stays interactive: render the page with the message
		data.Error = err.Error()
		s.render(c, "index.html", data)
		return
	}

	data.TotalRows = t.RowCount()
	data.Columns = t.ColumnNames()
	data.Classification = cls
	data.Params.Normalize(t, cls, s.cfg.Sampling.MinN)
	s.render(c, "index.html", data)
}

func (s *Server) handleDataset(c *gin.Context) {
	t, cls, err := s.service.Dataset(c.Request.Context(), s.cfg.Data.FilePath)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"path":           s.cfg.Data.FilePath,
		"rows":           t.RowCount(),
		"columns":        t.ColumnNames(),
		"classification": cls,
	})
}

func (s *Server) handleSample(c *gin.Context) {
	result, err := s.view(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	sample := result.Sample
	n := sample.RowCount()
	if n > previewRows {
		n = previewRows
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, sample.ColumnCount())
		for j, col := range sample.Columns() {
			row[j] = col.CellString(i)
		}
		rows[i] = row
	}

	c.JSON(http.StatusOK, gin.H{
		"headers":     sample.ColumnNames(),
		"rows":        rows,
		"sample_rows": result.SampleRows,
		"total_rows":  result.TotalRows,
		"method":      result.Params.SampleMethod,
	})
}

func (s *Server) handleSummary(c *gin.Context) {
	result, err := s.view(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":       result.Summary,
		"over_full":     result.Params.UseFullForSummary,
		"rows_analyzed": summaryRows(result),
	})
}

func (s *Server) handleScatter(c *gin.Context) {
	result, err := s.view(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if len(result.Classification.Numeric) < 2 {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	spec, err := ScatterSpec(result.Sample, result.Params.XCol, result.Params.YCol, result.Params.ColorBy)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "chart": spec})
}

func (s *Server) handleFrequency(c *gin.Context) {
	result, err := s.view(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if result.Params.CategoricalCol == "" {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	spec := FrequencySpec(result.Frequency, string(result.Params.ChartMode), result.Params.CategoricalCol, result.Params.TopN)
	c.JSON(http.StatusOK, gin.H{
		"available": true,
		"chart":     spec,
		"entries":   result.Frequency,
	})
}

func (s *Server) handleCorrelation(c *gin.Context) {
	result, err := s.view(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if result.Correlation.Empty() {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": true,
		"chart":     HeatmapSpec(result.Correlation),
		"matrix":    result.Correlation,
	})
}

func (s *Server) handleProfiles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	profiles, err := s.service.RecentProfiles(c.Request.Context(), limit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "count": len(profiles)})
}

// view runs one pipeline pass with params parsed from the query string
func (s *Server) view(c *gin.Context) (*app.ViewResult, error) {
	params := parseViewParams(c, s.cfg.Sampling.DefaultN)
	return s.service.View(c.Request.Context(), s.cfg.Data.FilePath, params)
}

// parseViewParams reads the control surface from query parameters; anything
// absent or malformed falls back to the default and is later normalized
// against the table.
func parseViewParams(c *gin.Context, defaultN int) app.ViewParams {
	params := app.DefaultViewParams(defaultN)
	// Chart endpoints imply their own view toggles
	params.ShowCorr = true

	if v, err := strconv.Atoi(c.Query("sample_n")); err == nil {
		params.SampleN = v
	}
	if c.Query("sample_method") == string(table.SampleRandom) {
		params.SampleMethod = table.SampleRandom
	}
	params.UseFullForSummary = c.Query("use_full_for_summary") == "true"

	if v, err := strconv.Atoi(c.Query("top_n")); err == nil {
		params.TopN = v
	}
	if mode := c.Query("chart_mode"); mode != "" {
		params.ChartMode = app.ChartMode(mode)
	}

	params.XCol = c.Query("x_col")
	params.YCol = c.Query("y_col")
	params.ColorBy = c.Query("color_by")
	params.CategoricalCol = c.Query("categorical_col")
	return params
}

func summaryRows(result *app.ViewResult) int {
	if result.Params.UseFullForSummary {
		return result.TotalRows
	}
	return result.SampleRows
}

func (s *Server) render(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		s.log.Error("template %s failed: %v", name, err)
		c.String(http.StatusInternalServerError, "template error")
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("embedded directory %s missing: %v", dir, err))
	}
	return sub
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
