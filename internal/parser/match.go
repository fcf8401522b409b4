// Package parser maps typed player input onto the menu options currently on
// screen. Players can answer with the option number, the full text, or a
// close-enough fragment of it.
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Match resolves input to an option index. A bare number picks by position
// (1-based); otherwise the options are scored by exact, prefix, containment
// and edit-distance matching.
func Match(input string, options []string) (int, bool) {
	in := normalise(input)
	if in == "" || len(options) == 0 {
		return 0, false
	}

	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}

	bestIdx := -1
	bestScore := 0.0
	for i, opt := range options {
		score := scoreOption(in, normalise(opt))
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 || bestScore < 0.5 {
		return 0, false
	}
	return bestIdx, true
}

func scoreOption(in, opt string) float64 {
	if opt == "" {
		return 0
	}
	if in == opt {
		return 1
	}
	if strings.HasPrefix(opt, in) {
		return 0.9
	}
	if strings.Contains(opt, in) {
		return 0.8
	}

	dist := levenshtein.ComputeDistance(in, opt)
	limit := distanceLimit(len([]rune(opt)))
	if dist > limit {
		return 0
	}
	return 0.72 - 0.08*float64(dist)
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// normalise lowercases and strips everything but letters and digits, so
// punctuation and annotations like "(-30金钱)" never block a match.
func normalise(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
