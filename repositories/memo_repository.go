package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/campfield/campops/models"
)

// MemoRepository interface defines memo database operations. The
// (staff_name, date) uniqueness invariant lives in the memo service; the
// store stays dumb on purpose.
type MemoRepository interface {
	GetAll(ctx context.Context) ([]models.Memo, error)
	GetByID(ctx context.Context, id string) (*models.Memo, error)
	FindByStaffDate(ctx context.Context, staffName, date string) (*models.Memo, error)
	Create(ctx context.Context, memo *models.Memo) error
	Update(ctx context.Context, memo *models.Memo) error
	Delete(ctx context.Context, id string) error
	CountByDate(ctx context.Context, date string) (int, error)
}

// memoRepository implements MemoRepository interface
type memoRepository struct {
	db *sql.DB
}

// NewMemoRepository creates a new memo repository
func NewMemoRepository(db *sql.DB) MemoRepository {
	return &memoRepository{db: db}
}

// GetAll retrieves all memos
func (r *memoRepository) GetAll(ctx context.Context) ([]models.Memo, error) {
	query := `
		SELECT id, staff_name, date, memo
		FROM memos
		ORDER BY date DESC, staff_name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.NewStoreError("list memos", err)
	}
	defer rows.Close()

	var memos []models.Memo
	for rows.Next() {
		var m models.Memo
		if err := rows.Scan(&m.ID, &m.StaffName, &m.Date, &m.Memo); err != nil {
			return nil, models.NewStoreError("scan memo", err)
		}
		memos = append(memos, m)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("iterate memos", err)
	}

	return memos, nil
}

// GetByID retrieves a memo by id
func (r *memoRepository) GetByID(ctx context.Context, id string) (*models.Memo, error) {
	query := `
		SELECT id, staff_name, date, memo
		FROM memos
		WHERE id = ?
	`

	var m models.Memo
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.StaffName, &m.Date, &m.Memo)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("memo", id)
	}
	if err != nil {
		return nil, models.NewStoreError("get memo", err)
	}

	return &m, nil
}

// FindByStaffDate returns the first memo matching (staffName, date), or
// nil when none exists. First match in insertion order, which is unique
// as long as writers go through the memo service.
func (r *memoRepository) FindByStaffDate(ctx context.Context, staffName, date string) (*models.Memo, error) {
	query := `
		SELECT id, staff_name, date, memo
		FROM memos
		WHERE staff_name = ? AND date = ?
		ORDER BY rowid ASC
		LIMIT 1
	`

	var m models.Memo
	err := r.db.QueryRowContext(ctx, query, staffName, date).Scan(&m.ID, &m.StaffName, &m.Date, &m.Memo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewStoreError("find memo", err)
	}

	return &m, nil
}

// Create creates a new memo, assigning a fresh record id
func (r *memoRepository) Create(ctx context.Context, memo *models.Memo) error {
	query := `
		INSERT INTO memos (id, staff_name, date, memo)
		VALUES (?, ?, ?, ?)
	`

	if memo.ID == "" {
		memo.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, query, memo.ID, memo.StaffName, memo.Date, memo.Memo)
	if err != nil {
		return models.NewStoreError("create memo", err)
	}

	return nil
}

// Update updates an existing memo in place
func (r *memoRepository) Update(ctx context.Context, memo *models.Memo) error {
	query := `
		UPDATE memos
		SET staff_name = ?, date = ?, memo = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, memo.StaffName, memo.Date, memo.Memo, memo.ID)
	if err != nil {
		return models.NewStoreError("update memo", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStoreError("update memo", err)
	}
	if affected == 0 {
		return models.NewNotFoundError("memo", memo.ID)
	}

	return nil
}

// Delete deletes a memo by id
func (r *memoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM memos WHERE id = ?`, id)
	if err != nil {
		return models.NewStoreError("delete memo", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStoreError("delete memo", err)
	}
	if affected == 0 {
		return models.NewNotFoundError("memo", id)
	}

	return nil
}

// CountByDate returns the number of memos recorded for a calendar date
func (r *memoRepository) CountByDate(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memos WHERE date = ?`, date).Scan(&count)
	if err != nil {
		return 0, models.NewStoreError("count memos", err)
	}

	return count, nil
}
