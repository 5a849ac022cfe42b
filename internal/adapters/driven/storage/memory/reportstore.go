package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: make(map[string]domain.Report),
	}
}

// Save stores or replaces a report.
func (s *ReportStore) Save(_ context.Context, report *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.SessionID] = cloneReport(report)
	return nil
}

// Get retrieves a report by session ID.
func (s *ReportStore) Get(_ context.Context, sessionID string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := cloneReport(&report)
	return &clone, nil
}

// List returns report summaries, newest first.
func (s *ReportStore) List(_ context.Context) ([]domain.ReportSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.ReportSummary, 0, len(s.reports))
	for _, report := range s.reports {
		result = append(result, report.Summary())
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].SessionID < result[j].SessionID
	})
	return result, nil
}

// Delete removes a report.
func (s *ReportStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reports, sessionID)
	return nil
}

// cloneReport copies the cell map so callers cannot mutate stored state.
func cloneReport(report *domain.Report) domain.Report {
	clone := *report
	clone.Cells = make(map[domain.Coordinate]string, len(report.Cells))
	for k, v := range report.Cells {
		clone.Cells[k] = v
	}
	return clone
}
