package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campfield/campops/models"
)

// StaffRepository interface defines staff member database operations
type StaffRepository interface {
	GetAll(ctx context.Context) ([]models.StaffMember, error)
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
	GetByName(ctx context.Context, name string) (*models.StaffMember, error)
	Create(ctx context.Context, member *models.StaffMember) error
	Update(ctx context.Context, member *models.StaffMember) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// staffRepository implements StaffRepository interface
type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

// GetAll retrieves all staff members ordered by display name
func (r *staffRepository) GetAll(ctx context.Context) ([]models.StaffMember, error) {
	query := `
		SELECT id, name, location, date_added
		FROM staff
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.NewStoreError("list staff", err)
	}
	defer rows.Close()

	var members []models.StaffMember
	for rows.Next() {
		var member models.StaffMember
		if err := rows.Scan(&member.ID, &member.Name, &member.Location, &member.DateAdded); err != nil {
			return nil, models.NewStoreError("scan staff member", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("iterate staff", err)
	}

	return members, nil
}

// GetByID retrieves a staff member by id
func (r *staffRepository) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	query := `
		SELECT id, name, location, date_added
		FROM staff
		WHERE id = ?
	`

	var member models.StaffMember
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Location,
		&member.DateAdded,
	)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("staff member", id)
	}
	if err != nil {
		return nil, models.NewStoreError("get staff member", err)
	}

	return &member, nil
}

// GetByName retrieves a staff member by display name
func (r *staffRepository) GetByName(ctx context.Context, name string) (*models.StaffMember, error) {
	query := `
		SELECT id, name, location, date_added
		FROM staff
		WHERE name = ?
	`

	var member models.StaffMember
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&member.ID,
		&member.Name,
		&member.Location,
		&member.DateAdded,
	)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("staff member", name)
	}
	if err != nil {
		return nil, models.NewStoreError("get staff member by name", err)
	}

	return &member, nil
}

// Create creates a new staff member, assigning a fresh record id
func (r *staffRepository) Create(ctx context.Context, member *models.StaffMember) error {
	query := `
		INSERT INTO staff (id, name, location, date_added)
		VALUES (?, ?, ?, ?)
	`

	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.DateAdded.IsZero() {
		member.DateAdded = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.Name,
		member.Location,
		member.DateAdded,
	)
	if err != nil {
		return models.NewStoreError("create staff member", err)
	}

	return nil
}

// Update updates an existing staff member's name and location
func (r *staffRepository) Update(ctx context.Context, member *models.StaffMember) error {
	query := `
		UPDATE staff
		SET name = ?, location = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, member.Name, member.Location, member.ID)
	if err != nil {
		return models.NewStoreError("update staff member", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStoreError("update staff member", err)
	}
	if affected == 0 {
		return models.NewNotFoundError("staff member", member.ID)
	}

	return nil
}

// Delete deletes a staff member by id. Administrative override: existing
// assignments are left untouched.
func (r *staffRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id)
	if err != nil {
		return models.NewStoreError("delete staff member", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStoreError("delete staff member", err)
	}
	if affected == 0 {
		return models.NewNotFoundError("staff member", id)
	}

	return nil
}

// Count returns the total number of staff members
func (r *staffRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count)
	if err != nil {
		return 0, models.NewStoreError("count staff", err)
	}

	return count, nil
}
