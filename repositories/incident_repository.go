package repositories

import (
	"context"
	"database/sql"

	"github.com/campfield/campops/models"
)

// IncidentRepository handles incident report persistence. Same insert-only
// lifecycle as the audit log.
type IncidentRepository interface {
	Create(ctx context.Context, entry *models.IncidentEntry) error
	List(ctx context.Context, limit int) ([]models.IncidentEntry, error)
	Count(ctx context.Context) (int, error)
}

// incidentRepository implements IncidentRepository interface
type incidentRepository struct {
	db *sql.DB
}

// NewIncidentRepository creates a new incident repository
func NewIncidentRepository(db *sql.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

// Create inserts a new incident entry and records the store-assigned id
func (r *incidentRepository) Create(ctx context.Context, entry *models.IncidentEntry) error {
	query := `
		INSERT INTO incidents (timestamp, staff, child, note)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.Timestamp,
		entry.Staff,
		entry.Child,
		entry.Note,
	)
	if err != nil {
		return models.NewStoreError("append incident", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.NewStoreError("append incident", err)
	}

	entry.ID = id
	return nil
}

// List retrieves incident entries newest first, ties broken by insertion
// order. A limit of 0 means no limit.
func (r *incidentRepository) List(ctx context.Context, limit int) ([]models.IncidentEntry, error) {
	query := `
		SELECT id, timestamp, staff, child, note
		FROM incidents
		ORDER BY timestamp DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.NewStoreError("list incidents", err)
	}
	defer rows.Close()

	var entries []models.IncidentEntry
	for rows.Next() {
		var entry models.IncidentEntry
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Staff, &entry.Child, &entry.Note); err != nil {
			return nil, models.NewStoreError("scan incident", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("iterate incidents", err)
	}

	return entries, nil
}

// Count returns the total number of incident entries
func (r *incidentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM incidents`).Scan(&count)
	if err != nil {
		return 0, models.NewStoreError("count incidents", err)
	}

	return count, nil
}
