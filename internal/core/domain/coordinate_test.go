package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell(t *testing.T) {
	assert.Equal(t, Coordinate("B15"), Cell("B", 15))
	assert.Equal(t, Coordinate("AA3"), Cell("aa", 3))
}

func TestCoordinate_Parts(t *testing.T) {
	tests := []struct {
		coord  Coordinate
		valid  bool
		column string
		row    int
	}{
		{"B15", true, "B", 15},
		{"K4", true, "K", 4},
		{"AB120", true, "AB", 120},
		{"", false, "", 0},
		{"15B", false, "", 0},
		{"B0", false, "", 0},
		{"b15", false, "", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.coord), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.coord.IsValid())
			assert.Equal(t, tt.column, tt.coord.Column())
			assert.Equal(t, tt.row, tt.coord.Row())
		})
	}
}

func TestCoordinate_IsZero(t *testing.T) {
	assert.True(t, Coordinate("").IsZero())
	assert.False(t, CoordDate.IsZero())
}
