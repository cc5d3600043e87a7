package services

import (
	"context"

	"github.com/campfield/campops/repositories"
)

// SummaryData is the read-only aggregation behind the admin overview:
// per-staff child and log counts plus totals for a calendar date.
type SummaryData struct {
	Date          string         `json:"date"`
	StaffCount    int            `json:"staff_count"`
	TotalChildren int            `json:"total_children"`
	ChildCounts   map[string]int `json:"child_counts"`
	LogCounts     map[string]int `json:"log_counts"`
	IncidentCount int            `json:"incident_count"`
	MemoCount     int            `json:"memo_count"`
}

// SummaryService provides the admin overview aggregation
type SummaryService interface {
	Overview(ctx context.Context, date string) (*SummaryData, error)
}

// summaryService implements SummaryService interface
type summaryService struct {
	staffRepo      repositories.StaffRepository
	assignmentRepo repositories.AssignmentRepository
	logRepo        repositories.LogRepository
	incidentRepo   repositories.IncidentRepository
	memoRepo       repositories.MemoRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	staffRepo repositories.StaffRepository,
	assignmentRepo repositories.AssignmentRepository,
	logRepo repositories.LogRepository,
	incidentRepo repositories.IncidentRepository,
	memoRepo repositories.MemoRepository,
) SummaryService {
	return &summaryService{
		staffRepo:      staffRepo,
		assignmentRepo: assignmentRepo,
		logRepo:        logRepo,
		incidentRepo:   incidentRepo,
		memoRepo:       memoRepo,
	}
}

// Overview aggregates the dashboard counts for a calendar date
func (s *summaryService) Overview(ctx context.Context, date string) (*SummaryData, error) {
	staffCount, err := s.staffRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	childCounts, err := s.assignmentRepo.CountByStaff(ctx)
	if err != nil {
		return nil, err
	}

	logCounts, err := s.logRepo.CountByStaff(ctx)
	if err != nil {
		return nil, err
	}

	incidentCount, err := s.incidentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	memoCount, err := s.memoRepo.CountByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range childCounts {
		total += n
	}

	return &SummaryData{
		Date:          date,
		StaffCount:    staffCount,
		TotalChildren: total,
		ChildCounts:   childCounts,
		LogCounts:     logCounts,
		IncidentCount: incidentCount,
		MemoCount:     memoCount,
	}, nil
}
