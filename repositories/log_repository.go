package repositories

import (
	"context"
	"database/sql"

	"github.com/campfield/campops/models"
)

// LogRepository handles audit log persistence. Entries are insert-only;
// there is no update or single-row delete.
type LogRepository interface {
	Create(ctx context.Context, entry *models.LogEntry) error
	List(ctx context.Context, limit int) ([]models.LogEntry, error)
	CountByStaff(ctx context.Context) (map[string]int, error)
	Count(ctx context.Context) (int, error)
}

// logRepository implements LogRepository interface
type logRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *sql.DB) LogRepository {
	return &logRepository{db: db}
}

// Create inserts a new audit log entry and records the store-assigned id
func (r *logRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	query := `
		INSERT INTO logs (timestamp, action, staff, child, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.Timestamp,
		entry.Action,
		entry.Staff,
		entry.Child,
		entry.Notes,
	)
	if err != nil {
		return models.NewStoreError("append log entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.NewStoreError("append log entry", err)
	}

	entry.ID = id
	return nil
}

// List retrieves log entries newest first, ties broken by insertion order.
// A limit of 0 means no limit.
func (r *logRepository) List(ctx context.Context, limit int) ([]models.LogEntry, error) {
	query := `
		SELECT id, timestamp, action, staff, child, notes
		FROM logs
		ORDER BY timestamp DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.NewStoreError("list log entries", err)
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var entry models.LogEntry
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Action, &entry.Staff, &entry.Child, &entry.Notes); err != nil {
			return nil, models.NewStoreError("scan log entry", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("iterate log entries", err)
	}

	return entries, nil
}

// CountByStaff returns the number of log entries per staff display name
func (r *logRepository) CountByStaff(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT staff, COUNT(*)
		FROM logs
		GROUP BY staff
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.NewStoreError("count log entries by staff", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, models.NewStoreError("scan log count", err)
		}
		counts[name] = count
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("iterate log counts", err)
	}

	return counts, nil
}

// Count returns the total number of log entries
func (r *logRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM logs`).Scan(&count)
	if err != nil {
		return 0, models.NewStoreError("count log entries", err)
	}

	return count, nil
}
