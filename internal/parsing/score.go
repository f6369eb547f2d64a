package parsing

import (
	"strconv"
	"strings"
)

// DefaultScore is substituted when no score can be recovered from the
// feedback text. The substitution is silent by design; the returned
// fallback flag makes it observable.
const DefaultScore = 0.5

// scoreMarker is the literal the evaluation prompt instructs the model
// to emit, as in "Score: 7/10".
const scoreMarker = "Score:"

// ExtractScore locates the "Score:" marker in feedback text, parses the
// value before the next "/" and normalizes it to [0,1]. Any failure
// (missing marker, non-numeric text, missing denominator) yields
// DefaultScore with fallback=true rather than an error.
func ExtractScore(feedback string) (score float64, fallback bool) {
	idx := strings.Index(feedback, scoreMarker)
	if idx < 0 {
		return DefaultScore, true
	}

	rest := feedback[idx+len(scoreMarker):]
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return DefaultScore, true
	}

	raw, err := strconv.ParseFloat(strings.TrimSpace(rest[:slash]), 64)
	if err != nil {
		return DefaultScore, true
	}

	return clamp01(raw / 10), false
}

// clamp01 keeps normalized scores inside [0,1] even when the model
// reports something like 12/10.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
