package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/campfield/campops/models"
)

// AssignmentRepository interface defines assignment ledger database operations
type AssignmentRepository interface {
	GetAll(ctx context.Context) ([]models.Assignment, error)
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	GetByStaffName(ctx context.Context, staffName string) ([]models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int, error)
	RenameStaff(ctx context.Context, staffID, newName string) error
	CountByStaff(ctx context.Context) (map[string]int, error)
}

// assignmentRepository implements AssignmentRepository interface
type assignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *sql.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func scanAssignments(rows *sql.Rows) ([]models.Assignment, error) {
	var assignments []models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.StaffID, &a.StaffName, &a.ChildName, &a.Location); err != nil {
			return nil, models.NewStoreError("scan assignment", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("iterate assignments", err)
	}

	return assignments, nil
}

// GetAll retrieves every current assignment
func (r *assignmentRepository) GetAll(ctx context.Context) ([]models.Assignment, error) {
	query := `
		SELECT id, staff_id, staff_name, child_name, location
		FROM assignments
		ORDER BY staff_name ASC, child_name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.NewStoreError("list assignments", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetByID retrieves an assignment by id
func (r *assignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	query := `
		SELECT id, staff_id, staff_name, child_name, location
		FROM assignments
		WHERE id = ?
	`

	var a models.Assignment
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.StaffID, &a.StaffName, &a.ChildName, &a.Location)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFoundError("assignment", id)
	}
	if err != nil {
		return nil, models.NewStoreError("get assignment", err)
	}

	return &a, nil
}

// GetByStaffName retrieves all assignments under a staff display name,
// sorted by child name. Filtering on the denormalized name keeps orphaned
// rows visible after an administrative staff deletion.
func (r *assignmentRepository) GetByStaffName(ctx context.Context, staffName string) ([]models.Assignment, error) {
	query := `
		SELECT id, staff_id, staff_name, child_name, location
		FROM assignments
		WHERE staff_name = ?
		ORDER BY child_name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, staffName)
	if err != nil {
		return nil, models.NewStoreError("list assignments by staff", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Create creates a new assignment, assigning a fresh record id
func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (id, staff_id, staff_name, child_name, location)
		VALUES (?, ?, ?, ?, ?)
	`

	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, query,
		assignment.ID,
		assignment.StaffID,
		assignment.StaffName,
		assignment.ChildName,
		assignment.Location,
	)
	if err != nil {
		return models.NewStoreError("create assignment", err)
	}

	return nil
}

// Update rewrites an assignment in place. No lock is held between read and
// write; a concurrently deleted id surfaces as NotFound.
func (r *assignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET staff_id = ?, staff_name = ?, child_name = ?, location = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		assignment.StaffID,
		assignment.StaffName,
		assignment.ChildName,
		assignment.Location,
		assignment.ID,
	)
	if err != nil {
		return models.NewStoreError("update assignment", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStoreError("update assignment", err)
	}
	if affected == 0 {
		return models.NewNotFoundError("assignment", assignment.ID)
	}

	return nil
}

// Delete removes an assignment by id
func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return models.NewStoreError("delete assignment", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStoreError("delete assignment", err)
	}
	if affected == 0 {
		return models.NewNotFoundError("assignment", id)
	}

	return nil
}

// DeleteAll truncates the assignment table and returns how many rows were
// dropped. Used by the daily reset.
func (r *assignmentRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assignments`)
	if err != nil {
		return 0, models.NewStoreError("truncate assignments", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, models.NewStoreError("truncate assignments", err)
	}

	return int(affected), nil
}

// RenameStaff rewrites the denormalized staff display name on every
// assignment referencing staffID.
func (r *assignmentRepository) RenameStaff(ctx context.Context, staffID, newName string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE assignments SET staff_name = ? WHERE staff_id = ?`,
		newName, staffID,
	)
	if err != nil {
		return models.NewStoreError("rename staff on assignments", err)
	}

	return nil
}

// CountByStaff returns the number of current assignments per staff display name
func (r *assignmentRepository) CountByStaff(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT staff_name, COUNT(*)
		FROM assignments
		GROUP BY staff_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.NewStoreError("count assignments by staff", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, models.NewStoreError("scan assignment count", err)
		}
		counts[name] = count
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("iterate assignment counts", err)
	}

	return counts, nil
}
