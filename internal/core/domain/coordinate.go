package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Coordinate is an A1-style cell reference in the report template (e.g. "B15").
// The zero value means "no cell": questions without a coordinate are count questions.
type Coordinate string

var coordinatePattern = regexp.MustCompile(`^([A-Z]{1,3})([1-9][0-9]*)$`)

// Cell builds a coordinate from a column letter and a 1-based row.
func Cell(column string, row int) Coordinate {
	return Coordinate(strings.ToUpper(column) + strconv.Itoa(row))
}

// IsZero returns true if no cell is bound.
func (c Coordinate) IsZero() bool {
	return c == ""
}

// IsValid returns true if the coordinate is a well-formed A1 reference.
func (c Coordinate) IsValid() bool {
	return coordinatePattern.MatchString(string(c))
}

// Column returns the column letters, or "" for an invalid coordinate.
func (c Coordinate) Column() string {
	m := coordinatePattern.FindStringSubmatch(string(c))
	if m == nil {
		return ""
	}
	return m[1]
}

// Row returns the 1-based row number, or 0 for an invalid coordinate.
func (c Coordinate) Row() int {
	m := coordinatePattern.FindStringSubmatch(string(c))
	if m == nil {
		return 0
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}
	return row
}

// String returns the string representation.
func (c Coordinate) String() string {
	return string(c)
}

// Less orders coordinates by row, then by column width, then alphabetically,
// which matches reading order in the template.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row() != other.Row() {
		return c.Row() < other.Row()
	}
	a, b := c.Column(), other.Column()
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	if a != b {
		return a < b
	}
	return c < other
}

// Fixed cells for the enrichment values written at finalization.
const (
	CoordLocation Coordinate = "F5"
	CoordWeather  Coordinate = "C8"
	CoordDate     Coordinate = "K4"
)
