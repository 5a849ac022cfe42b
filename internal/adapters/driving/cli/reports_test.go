package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

func newMockReports() *mockReportService {
	return &mockReportService{reports: map[string]*domain.Report{
		"aaa111": {
			SessionID:  "aaa111",
			Date:       "2024-06-02",
			Location:   "Austin, Texas, United States",
			Weather:    "Clear sky, 75.2°F",
			Cells:      map[domain.Coordinate]string{"K4": "2024-06-02", "C4": "12-345", "B15": "Carpenter"},
			OutputPath: "VoiceReport.xlsx",
		},
		"bbb222": {
			SessionID: "bbb222",
			Date:      "2024-06-03",
			Location:  domain.UnknownLocation,
			Cells:     map[domain.Coordinate]string{"C4": "99-000"},
			CreatedAt: testNow,
		},
	}}
}

func TestReportsCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(reportsCmd.Commands()))
	for _, c := range reportsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "show", "delete"}, names)
}

func TestReportsList(t *testing.T) {
	cleanup := setupServices(nil, newMockReports(), nil)
	defer cleanup()

	out, err := runCommand(t, "", "reports", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "bbb222")
	assert.Contains(t, out, "Austin, Texas, United States")
	assert.Less(t, strings.Index(out, "bbb222"), strings.Index(out, "aaa111"))
}

func TestReportsList_Empty(t *testing.T) {
	cleanup := setupServices(nil, &mockReportService{}, nil)
	defer cleanup()

	out, err := runCommand(t, "", "reports", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No reports yet")
}

func TestReportsList_JSON(t *testing.T) {
	cleanup := setupServices(nil, newMockReports(), nil)
	defer cleanup()

	out, err := runCommand(t, "", "reports", "list", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"session_id": "aaa111"`)
	assert.Contains(t, out, `"cell_count": 3`)
}

func TestReportsShow(t *testing.T) {
	cleanup := setupServices(nil, newMockReports(), nil)
	defer cleanup()

	out, err := runCommand(t, "", "reports", "show", "aaa111")

	require.NoError(t, err)
	assert.Contains(t, out, "Weather:   Clear sky, 75.2°F")
	assert.Contains(t, out, "File:      VoiceReport.xlsx")
	assert.NotContains(t, out, "Published:")
	// Template reading order: row 4 before row 15.
	assert.Less(t, strings.Index(out, "C4"), strings.Index(out, "B15"))
	assert.Less(t, strings.Index(out, "C4"), strings.Index(out, "K4"))
}

func TestReportsShow_NotFound(t *testing.T) {
	cleanup := setupServices(nil, newMockReports(), nil)
	defer cleanup()

	_, err := runCommand(t, "", "reports", "show", "zzz")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportsDelete(t *testing.T) {
	reports := newMockReports()
	cleanup := setupServices(nil, reports, nil)
	defer cleanup()

	out, err := runCommand(t, "", "reports", "delete", "aaa111")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted report aaa111")
	assert.Equal(t, []string{"aaa111"}, reports.deleted)
}

func TestReportsCmd_NotConfigured(t *testing.T) {
	cleanup := setupServices(nil, nil, nil)
	defer cleanup()

	for _, args := range [][]string{{"reports", "list"}, {"reports", "show", "x"}, {"reports", "delete", "x"}} {
		_, err := runCommand(t, "", args...)
		assert.ErrorContains(t, err, "report service not configured")
	}
}
