package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/repository"
)

const (
	logDateFormat      = "2006-01-02"
	logTimestampFormat = "2006-01-02 15:04:05"
)

// exportHeader is the fixed CSV header of the log export. Column order is a
// contract with downstream consumers.
var exportHeader = []string{"id", "user", "action", "task_id", "timestamp", "details"}

// LogService reads the audit log. It never mutates other stores.
type LogService struct {
	logRepo repository.LogRepository
}

// NewLogService creates a new LogService
func NewLogService(logRepo repository.LogRepository) *LogService {
	return &LogService{logRepo: logRepo}
}

// RawLogFilter carries the unparsed query-string filter values.
type RawLogFilter struct {
	Actor     string
	Action    string
	TaskID    string
	StartDate string
	EndDate   string
}

// ParseFilter turns raw query values into a LogFilter. A task_id that does
// not parse as an integer and dates that do not parse as YYYY-MM-DD are
// silently dropped rather than surfaced, a documented leniency carried over
// from the search-box behavior this endpoint has always had.
func ParseFilter(raw RawLogFilter) repository.LogFilter {
	filter := repository.LogFilter{
		Actor:  raw.Actor,
		Action: raw.Action,
	}

	if raw.TaskID != "" {
		if id, err := strconv.ParseUint(raw.TaskID, 10, 64); err == nil {
			filter.TaskID = &id
		}
	}

	if raw.StartDate != "" {
		if t, err := time.Parse(logDateFormat, raw.StartDate); err == nil {
			filter.Start = &t
		}
	}

	if raw.EndDate != "" {
		if t, err := time.Parse(logDateFormat, raw.EndDate); err == nil {
			// Inclusive of the whole end day: upper bound is the start of
			// the following day, exclusive.
			end := t.Add(24 * time.Hour)
			filter.End = &end
		}
	}

	return filter
}

// Query returns entries matching the raw filter, newest first.
func (s *LogService) Query(raw RawLogFilter) ([]models.LogEntry, error) {
	entries, err := s.logRepo.Search(ParseFilter(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	return entries, nil
}

// ExportCSV writes the full unfiltered log as CSV, newest first.
func (s *LogService) ExportCSV(w io.Writer) error {
	entries, err := s.logRepo.Search(repository.LogFilter{})
	if err != nil {
		return fmt.Errorf("failed to read logs for export: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, e := range entries {
		taskID := ""
		if e.TaskID != nil {
			taskID = strconv.FormatUint(*e.TaskID, 10)
		}

		row := []string{
			strconv.FormatUint(e.ID, 10),
			e.Actor,
			string(e.Action),
			taskID,
			e.Timestamp.Format(logTimestampFormat),
			e.Details,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
