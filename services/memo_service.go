package services

import (
	"context"
	"strings"

	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories"
)

// MemoService enforces the (staff, date) → single-memo invariant by
// lookup-before-write. The store carries no unique constraint.
type MemoService interface {
	Find(ctx context.Context, staffName, date string) (*models.Memo, error)
	Upsert(ctx context.Context, form *models.MemoForm) (*models.Memo, error)
	Delete(ctx context.Context, id string) error
	BulkUpsert(ctx context.Context, form *models.BulkMemoForm) (int, error)
	ListAll(ctx context.Context) ([]models.Memo, error)
}

// memoService implements MemoService interface
type memoService struct {
	memoRepo repositories.MemoRepository
}

// NewMemoService creates a new memo service
func NewMemoService(memoRepo repositories.MemoRepository) MemoService {
	return &memoService{memoRepo: memoRepo}
}

// Find returns the memo for (staffName, date), or nil when none exists
func (s *memoService) Find(ctx context.Context, staffName, date string) (*models.Memo, error) {
	if !models.IsValidDate(date) {
		return nil, models.NewValidationError("Date must be in YYYY-MM-DD format")
	}

	return s.memoRepo.FindByStaffDate(ctx, strings.TrimSpace(staffName), date)
}

// Upsert updates the existing memo for (staff, date) in place, or creates
// one when absent. Line breaks are canonicalized before storage.
func (s *memoService) Upsert(ctx context.Context, form *models.MemoForm) (*models.Memo, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	staffName := strings.TrimSpace(form.StaffName)
	text := models.NormalizeLineBreaks(form.Memo)

	existing, err := s.memoRepo.FindByStaffDate(ctx, staffName, form.Date)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Memo = text
		if err := s.memoRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	memo := &models.Memo{
		StaffName: staffName,
		Date:      form.Date,
		Memo:      text,
	}
	if err := s.memoRepo.Create(ctx, memo); err != nil {
		return nil, err
	}

	return memo, nil
}

// Delete removes a memo by id. A missing id is a not-found condition, not
// a silent success.
func (s *memoService) Delete(ctx context.Context, id string) error {
	return s.memoRepo.Delete(ctx, id)
}

// BulkUpsert applies Upsert once per staff name for the given date and
// returns how many were written. A mid-loop failure leaves earlier staff
// updated and later ones untouched; there is no rollback.
func (s *memoService) BulkUpsert(ctx context.Context, form *models.BulkMemoForm) (int, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return 0, models.NewValidationError(errs...)
	}

	written := 0
	for _, staffName := range form.StaffNames {
		single := &models.MemoForm{
			StaffName: staffName,
			Date:      form.Date,
			Memo:      form.Memo,
		}
		if _, err := s.Upsert(ctx, single); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// ListAll retrieves every memo
func (s *memoService) ListAll(ctx context.Context) ([]models.Memo, error) {
	return s.memoRepo.GetAll(ctx)
}
