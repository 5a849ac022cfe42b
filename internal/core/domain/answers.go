package domain

import "sort"

// AnswerStore holds verbatim responses keyed by target cell.
type AnswerStore struct {
	cells map[Coordinate]string
}

// NewAnswerStore creates an empty store.
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{cells: make(map[Coordinate]string)}
}

// Set records a response. The text is stored as given; a repeated
// coordinate overwrites the earlier value.
func (s *AnswerStore) Set(coord Coordinate, text string) {
	s.cells[coord] = text
}

// Get returns the response recorded for a cell.
func (s *AnswerStore) Get(coord Coordinate) (string, bool) {
	v, ok := s.cells[coord]
	return v, ok
}

// Len returns the number of answered cells.
func (s *AnswerStore) Len() int {
	return len(s.cells)
}

// Cells returns a copy of all answers.
func (s *AnswerStore) Cells() map[Coordinate]string {
	out := make(map[Coordinate]string, len(s.cells))
	for k, v := range s.cells {
		out[k] = v
	}
	return out
}

// Coordinates returns the answered cells in template reading order.
func (s *AnswerStore) Coordinates() []Coordinate {
	return SortedCoordinates(s.cells)
}

// SortedCoordinates returns the keys of a cell map in template reading order.
func SortedCoordinates(cells map[Coordinate]string) []Coordinate {
	keys := make([]Coordinate, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
