package ports

import (
	"context"

	"datalens/domain/dataset"
)

// ProfileRepository persists dataset load snapshots. The repository is
// optional: the explorer runs fully without one, and callers must tolerate a
// nil repository.
type ProfileRepository interface {
	Save(ctx context.Context, profile *dataset.Profile) error
	ListRecent(ctx context.Context, limit int) ([]*dataset.Profile, error)
}
