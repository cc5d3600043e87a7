package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/campfield/campops/metrics"
	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories"
	"github.com/campfield/campops/timefmt"
)

// ImportService loads spreadsheet exports (one CSV per collection) into
// the store. Log and incident rows carry the legacy display-format
// timestamp, which is parsed back to a canonical time; unparsable strings
// are stamped with the zero time and sort last.
type ImportService interface {
	Import(ctx context.Context, collection string, r io.Reader) (int, error)
}

// importService implements ImportService interface
type importService struct {
	repos *repositories.Repositories
	log   *logrus.Logger
}

// NewImportService creates a new import service
func NewImportService(repos *repositories.Repositories, log *logrus.Logger) ImportService {
	return &importService{repos: repos, log: log}
}

// Import reads a header row plus data rows and loads them into the named
// collection. Returns how many rows were created; a mid-file failure
// leaves earlier rows loaded.
func (s *importService) Import(ctx context.Context, collection string, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return 0, models.NewValidationError("CSV file is empty")
	}
	if err != nil {
		return 0, models.NewValidationError("Failed to read CSV header: " + err.Error())
	}

	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, names ...string) string {
		for _, name := range names {
			if idx, ok := columns[name]; ok && idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
		}
		return ""
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, models.NewValidationError("Malformed CSV row: " + err.Error())
		}

		switch collection {
		case "staff":
			err = s.importStaff(ctx, field(record, "name", "staff"), field(record, "location"))
		case "assignments":
			err = s.importAssignment(ctx,
				field(record, "staff"),
				// both field names appear in historical exports
				field(record, "child", "name"),
				field(record, "location"),
			)
		case "logs":
			err = s.importLog(ctx,
				field(record, "timestamp"),
				field(record, "action"),
				field(record, "staff"),
				field(record, "child"),
				field(record, "notes"),
			)
		case "incidents":
			err = s.importIncident(ctx,
				field(record, "timestamp"),
				field(record, "staff"),
				field(record, "child"),
				field(record, "note"),
			)
		case "memos":
			err = s.importMemo(ctx,
				field(record, "staff"),
				field(record, "date"),
				field(record, "memo"),
			)
		default:
			return imported, models.NewValidationError("Unknown collection: " + collection)
		}

		if err != nil {
			return imported, fmt.Errorf("failed to import row %d: %w", imported+1, err)
		}
		imported++
	}

	metrics.ImportedRowsTotal.WithLabelValues(collection).Add(float64(imported))
	s.log.WithFields(logrus.Fields{
		"collection": collection,
		"rows":       imported,
	}).Info("import complete")

	return imported, nil
}

func (s *importService) importStaff(ctx context.Context, name, location string) error {
	if name == "" {
		return models.NewValidationError("Staff name is required")
	}

	existing, err := s.repos.Staff.GetByName(ctx, name)
	if err != nil && !models.IsNotFound(err) {
		return err
	}
	if existing != nil {
		// already migrated, skip silently
		return nil
	}

	return s.repos.Staff.Create(ctx, &models.StaffMember{Name: name, Location: location})
}

func (s *importService) importAssignment(ctx context.Context, staffName, childName, location string) error {
	if childName == "" {
		return models.NewValidationError("Child name is required")
	}

	assignment := &models.Assignment{
		StaffName: staffName,
		ChildName: childName,
		Location:  location,
	}

	// resolve the stable reference when the staff record exists; orphan
	// rows load with the denormalized name only
	if staff, err := s.repos.Staff.GetByName(ctx, staffName); err == nil {
		assignment.StaffID = staff.ID
	} else if !models.IsNotFound(err) {
		return err
	}

	return s.repos.Assignment.Create(ctx, assignment)
}

func (s *importService) importLog(ctx context.Context, timestamp, action, staff, child, notes string) error {
	if action == "" {
		return models.NewValidationError("Action is required")
	}

	parsed, ok := timefmt.Parse(timestamp)
	if !ok && timestamp != "" {
		s.log.WithField("timestamp", timestamp).Warn("unparsable log timestamp, stamping as unknown")
	}

	return s.repos.Log.Create(ctx, &models.LogEntry{
		Timestamp: parsed,
		Action:    action,
		Staff:     staff,
		Child:     child,
		Notes:     notes,
	})
}

func (s *importService) importIncident(ctx context.Context, timestamp, staff, child, note string) error {
	parsed, ok := timefmt.Parse(timestamp)
	if !ok && timestamp != "" {
		s.log.WithField("timestamp", timestamp).Warn("unparsable incident timestamp, stamping as unknown")
	}

	return s.repos.Incident.Create(ctx, &models.IncidentEntry{
		Timestamp: parsed,
		Staff:     staff,
		Child:     child,
		Note:      note,
	})
}

func (s *importService) importMemo(ctx context.Context, staffName, date, memo string) error {
	if staffName == "" {
		return models.NewValidationError("Staff name is required")
	}
	if !models.IsValidDate(date) {
		return models.NewValidationError("Date must be in YYYY-MM-DD format")
	}

	text := models.NormalizeLineBreaks(memo)

	// lookup-before-write keeps the one-memo-per-(staff, date) invariant
	// intact even across repeated imports
	existing, err := s.repos.Memo.FindByStaffDate(ctx, staffName, date)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Memo = text
		return s.repos.Memo.Update(ctx, existing)
	}

	return s.repos.Memo.Create(ctx, &models.Memo{
		StaffName: staffName,
		Date:      date,
		Memo:      text,
	})
}
