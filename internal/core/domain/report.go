package domain

import "time"

// DateLayout is the interview date format written to the report.
const DateLayout = "2006-01-02"

// Report is the finalized, flat cell map of one interview.
type Report struct {
	// SessionID links the report to the interview that produced it.
	SessionID string `json:"session_id"`

	// Date is the interview date (YYYY-MM-DD).
	Date string `json:"date"`

	// Location is the enrichment location string.
	Location string `json:"location"`

	// Weather is the enrichment weather string.
	Weather string `json:"weather"`

	// Cells maps every written coordinate to its value, enrichment included.
	Cells map[Coordinate]string `json:"cells"`

	// OutputPath is where the spreadsheet was written; empty until written.
	OutputPath string `json:"output_path,omitempty"`

	// PublishedTo is the remote location of the published copy, if any.
	PublishedTo string `json:"published_to,omitempty"`

	// CreatedAt is when the report was archived.
	CreatedAt time.Time `json:"created_at"`
}

// BuildReport merges a session's answers with its enrichment values.
// It does not modify the session and returns the same cells for the same input.
func BuildReport(s *Session) *Report {
	cells := s.Answers.Cells()
	date := s.Date.Format(DateLayout)
	cells[CoordLocation] = s.Location
	cells[CoordWeather] = s.Weather
	cells[CoordDate] = date

	return &Report{
		SessionID: s.ID,
		Date:      date,
		Location:  s.Location,
		Weather:   s.Weather,
		Cells:     cells,
	}
}

// Coordinates returns the report's cells in template reading order.
func (r *Report) Coordinates() []Coordinate {
	return SortedCoordinates(r.Cells)
}

// Summary returns the listing view of the report.
func (r *Report) Summary() ReportSummary {
	return ReportSummary{
		SessionID:  r.SessionID,
		Date:       r.Date,
		Location:   r.Location,
		CellCount:  len(r.Cells),
		OutputPath: r.OutputPath,
		CreatedAt:  r.CreatedAt,
	}
}

// ReportSummary is a lightweight view of an archived report for listings.
type ReportSummary struct {
	SessionID  string    `json:"session_id"`
	Date       string    `json:"date"`
	Location   string    `json:"location"`
	CellCount  int       `json:"cell_count"`
	OutputPath string    `json:"output_path"`
	CreatedAt  time.Time `json:"created_at"`
}

// Location is the result of a geolocation lookup.
type Location struct {
	// Display is the human-readable "City, Region, Country" string.
	Display string

	// Latitude and Longitude are only meaningful when HasCoordinates is true.
	Latitude  float64
	Longitude float64

	// HasCoordinates is false when the lookup could not place the site.
	HasCoordinates bool
}

// Enrichment fallbacks.
const (
	UnknownLocation    = "Unknown location"
	WeatherUnavailable = "Weather unavailable"
	NoCoordinates      = "Unavailable"
)
