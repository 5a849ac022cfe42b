package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService reads and prunes the archive of finalized reports.
type ReportService struct {
	store driven.ReportStore
}

// NewReportService creates a new report service.
func NewReportService(store driven.ReportStore) *ReportService {
	return &ReportService{store: store}
}

// List returns summaries of archived reports, newest first.
func (s *ReportService) List(ctx context.Context) ([]domain.ReportSummary, error) {
	summaries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return summaries, nil
}

// Get returns an archived report. A unique ID prefix is accepted.
func (s *ReportService) Get(ctx context.Context, sessionID string) (*domain.Report, error) {
	id, err := s.resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// Delete removes an archived report. A unique ID prefix is accepted.
func (s *ReportService) Delete(ctx context.Context, sessionID string) error {
	id, err := s.resolve(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// resolve expands a short ID prefix to a full session ID.
func (s *ReportService) resolve(ctx context.Context, prefix string) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", fmt.Errorf("%w: empty report id", domain.ErrInvalidInput)
	}

	summaries, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for i := range summaries {
		id := summaries[i].SessionID
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("report %s: %w", prefix, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: report id %q is ambiguous (%d matches)", domain.ErrInvalidInput, prefix, len(matches))
	}
}
