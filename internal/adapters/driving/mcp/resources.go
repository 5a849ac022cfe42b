package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for fieldreport resources.
	uriScheme = "fieldreport://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing archived reports.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "reports",
		Name:        "reports",
		Description: "Archived daily reports, newest first",
		MIMEType:    "application/json",
	}, s.handleReportsResource)

	// Template for a single report's cells.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reports/{reportId}",
		Name:        "report",
		Description: "Every cell written for a specific report",
		MIMEType:    "application/json",
	}, s.handleReportResource)
}

// handleReportsResource returns summaries of all archived reports.
func (s *Server) handleReportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Reports == nil {
		return jsonResult(req.Params.URI, []byte("[]")), nil
	}

	summaries, err := s.ports.Reports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	if summaries == nil {
		summaries = []domain.ReportSummary{}
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling reports: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

// handleReportResource returns one archived report.
func (s *Server) handleReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Reports == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract reportId from URI: fieldreport://reports/{reportId}
	reportID := extractReportID(req.Params.URI)
	if reportID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	report, err := s.ports.Reports.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting report: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling report: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractReportID extracts the report ID from a URI like fieldreport://reports/{reportId}.
func extractReportID(uri string) string {
	const prefix = uriScheme + "reports/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
