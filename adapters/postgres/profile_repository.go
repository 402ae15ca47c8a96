package postgres

import (
	"context"
	"encoding/json"
	"time"

	"datalens/domain/core"
	"datalens/domain/dataset"
	"datalens/internal/errors"
	"datalens/ports"

	"github.com/jmoiron/sqlx"
)

// profileRepository implements ports.ProfileRepository over postgres
type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates the repository and ensures its schema
func NewProfileRepository(ctx context.Context, db *sqlx.DB) (ports.ProfileRepository, error) {
	r := &profileRepository{db: db}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *profileRepository) ensureSchema(ctx context.Context) error {
	schema := `CREATE TABLE IF NOT EXISTS dataset_profiles (
		id UUID PRIMARY KEY,
		path TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		field_count INTEGER NOT NULL,
		columns JSONB NOT NULL,
		loaded_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "failed to ensure dataset_profiles schema")
	}
	return nil
}

// Save inserts a load snapshot
func (r *profileRepository) Save(ctx context.Context, profile *dataset.Profile) error {
	columnsJSON, err := json.Marshal(profile.Columns)
	if err != nil {
		return errors.Wrap(err, "failed to marshal column profiles")
	}

	query := `INSERT INTO dataset_profiles (
		id, path, record_count, field_count, columns, loaded_at
	) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		profile.ID.String(), profile.Path, profile.RowCount, profile.ColumnCount,
		columnsJSON, profile.LoadedAt.Time(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to save dataset profile")
	}
	return nil
}

// ListRecent returns the most recently loaded snapshots, newest first
func (r *profileRepository) ListRecent(ctx context.Context, limit int) ([]*dataset.Profile, error) {
	query := `SELECT id, path, record_count, field_count, columns, loaded_at
	FROM dataset_profiles
	ORDER BY loaded_at DESC
	LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query dataset profiles")
	}
	defer rows.Close()

	var profiles []*dataset.Profile
	for rows.Next() {
		var (
			p           dataset.Profile
			id          string
			columnsJSON []byte
			loadedAt    time.Time
		)
		if err := rows.Scan(&id, &p.Path, &p.RowCount, &p.ColumnCount, &columnsJSON, &loadedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan dataset profile")
		}
		p.ID = core.ID(id)
		p.LoadedAt = core.NewTimestamp(loadedAt)
		if err := json.Unmarshal(columnsJSON, &p.Columns); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal column profiles")
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}
