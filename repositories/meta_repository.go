package repositories

import (
	"context"
	"database/sql"

	"github.com/campfield/campops/models"
)

// MetaRepository handles the singleton meta record holding the last-reset
// date marker.
type MetaRepository interface {
	GetResetState(ctx context.Context) (*models.ResetState, error)
	SetLastResetDate(ctx context.Context, date string) error
}

// metaRepository implements MetaRepository interface
type metaRepository struct {
	db *sql.DB
}

// NewMetaRepository creates a new meta repository
func NewMetaRepository(db *sql.DB) MetaRepository {
	return &metaRepository{db: db}
}

// GetResetState retrieves the singleton reset marker. The row is seeded by
// the initial migration, so a missing row means a broken schema.
func (r *metaRepository) GetResetState(ctx context.Context) (*models.ResetState, error) {
	var state models.ResetState
	err := r.db.QueryRowContext(ctx,
		`SELECT id, last_reset_date FROM meta WHERE id = 1`,
	).Scan(&state.ID, &state.LastResetDate)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("meta record", "1")
	}
	if err != nil {
		return nil, models.NewStoreError("get reset state", err)
	}

	return &state, nil
}

// SetLastResetDate updates the reset marker
func (r *metaRepository) SetLastResetDate(ctx context.Context, date string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE meta SET last_reset_date = ? WHERE id = 1`, date)
	if err != nil {
		return models.NewStoreError("set reset state", err)
	}

	return nil
}
