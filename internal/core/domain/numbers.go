package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// punctuationPattern matches anything that is neither a word character nor whitespace.
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	digitRunPattern    = regexp.MustCompile(`[0-9]+`)
)

// numberWords is the closed vocabulary of spoken counts.
var numberWords = map[string]int{
	"zero":  0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

// ExtractCount finds a non-negative count in transcribed speech.
// A run of digits anywhere in the text wins over number words, even when a
// word comes first ("two crews, 5 people" is 5). Otherwise the first token
// naming zero through ten is used. The boolean is false when neither is found.
func ExtractCount(text string) (int, bool) {
	cleaned := strings.ToLower(punctuationPattern.ReplaceAllString(text, ""))

	if run := digitRunPattern.FindString(cleaned); run != "" {
		n, err := strconv.Atoi(run)
		if err != nil {
			// Out of range for int; no sensible count.
			return 0, false
		}
		return n, true
	}

	for _, word := range strings.Fields(cleaned) {
		if n, ok := numberWords[word]; ok {
			return n, true
		}
	}
	return 0, false
}
