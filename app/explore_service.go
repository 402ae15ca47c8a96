package app

import (
	"context"
	"sync"

	"datalens/domain/dataset"
	"datalens/domain/table"
	"datalens/internal"
	"datalens/internal/analysis"
	loader "datalens/internal/dataset"
	"datalens/ports"
)

// ExploreService drives one full pipeline pass per interaction:
// cached load -> classify -> sample -> requested aggregations. Every pass is
// a fresh, stateless recomputation; the only shared state is the loader
// cache and the optional profile registry.
type ExploreService struct {
	loader   *loader.Loader
	profiles ports.ProfileRepository
	minN     int
	seed     int64
	log      *internal.Logger

	mu       sync.Mutex
	profiled map[string]bool
}

// NewExploreService creates the service. profiles may be nil.
func NewExploreService(l *loader.Loader, profiles ports.ProfileRepository, minSampleN int, seed int64) *ExploreService {
	return &ExploreService{
		loader:   l,
		profiles: profiles,
		minN:     minSampleN,
		seed:     seed,
		log:      internal.DefaultLogger,
		profiled: make(map[string]bool),
	}
}

// ViewResult carries everything one render pass produced
type ViewResult struct {
	Params         ViewParams                 `json:"params"`
	TotalRows      int                        `json:"total_rows"`
	SampleRows     int                        `json:"sample_rows"`
	Classification table.Classification       `json:"classification"`
	Sample         *table.Table               `json:"-"`
	Summary        []analysis.ColumnSummary   `json:"summary,omitempty"`
	Frequency      []analysis.FrequencyEntry  `json:"frequency,omitempty"`
	Correlation    analysis.CorrelationMatrix `json:"correlation"`
}

// Dataset loads (or re-serves from cache) the table at path along with its
// column classification.
func (s *ExploreService) Dataset(ctx context.Context, path string) (*table.Table, table.Classification, error) {
	t, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, table.Classification{}, err
	}
	s.recordProfile(ctx, path, t)
	return t, t.Classify(), nil
}

// View runs the full pipeline for one interaction. Params are normalized
// in place against the loaded table; any load failure aborts the pass.
func (s *ExploreService) View(ctx context.Context, path string, params ViewParams) (*ViewResult, error) {
	t, cls, err := s.Dataset(ctx, path)
	if err != nil {
		return nil, err
	}

	params.Normalize(t, cls, s.minN)
	sample := t.SampleSeeded(params.SampleN, params.SampleMethod, s.seed)

	result := &ViewResult{
		Params:         params,
		TotalRows:      t.RowCount(),
		SampleRows:     sample.RowCount(),
		Classification: cls,
		Sample:         sample,
	}

	if params.ShowSummary {
		target := sample
		if params.UseFullForSummary {
			target = t
		}
		result.Summary = analysis.Summarize(target)
	}

	if params.ShowVisuals && params.CategoricalCol != "" {
		if col, ok := sample.Column(params.CategoricalCol); ok {
			result.Frequency = analysis.Frequency(col, params.TopN)
		}
	}

	if params.ShowCorr {
		result.Correlation = analysis.Correlation(sample, cls.Numeric)
	}

	return result, nil
}

// recordProfile stores a load snapshot once per path when a registry is
// configured. Registry failures are logged, never fatal to the render pass.
func (s *ExploreService) recordProfile(ctx context.Context, path string, t *table.Table) {
	if s.profiles == nil {
		return
	}
	s.mu.Lock()
	done := s.profiled[path]
	if !done {
		s.profiled[path] = true
	}
	s.mu.Unlock()
	if done {
		return
	}

	if err := s.profiles.Save(ctx, dataset.NewProfile(path, t)); err != nil {
		s.log.Warn("failed to record dataset profile for %s: %v", path, err)
	}
}

// RecentProfiles lists recent load snapshots, empty without a registry
func (s *ExploreService) RecentProfiles(ctx context.Context, limit int) ([]*dataset.Profile, error) {
	if s.profiles == nil {
		return nil, nil
	}
	return s.profiles.ListRecent(ctx, limit)
}
