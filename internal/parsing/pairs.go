// Package parsing recovers structured data from the model's free-text
// responses. The textual markers ("Q1.", "Score:") are the de facto
// response contract; every extractor here substitutes a defined fallback
// instead of failing, and reports when it did so the caller can log it.
package parsing

import (
	"regexp"
	"strings"
)

// QAPair is one extracted question with its ideal answer.
type QAPair struct {
	Question    string
	IdealAnswer string
}

var (
	questionPrefix = regexp.MustCompile(`^Q\d+\.\s*`)
	answerPrefix   = regexp.MustCompile(`^A\d+\.\s*`)
)

// ExtractPairs splits response text on blank lines into chunks and keeps
// every chunk of exactly two lines shaped "Q<n>. ..." / "A<n>. ...".
// Chunks not matching are discarded; a malformed response simply yields
// fewer pairs than requested. The second return value counts discarded
// chunks so callers can observe degraded responses.
func ExtractPairs(text string) ([]QAPair, int) {
	chunks := splitChunks(text)

	var pairs []QAPair
	discarded := 0
	for _, chunk := range chunks {
		lines := nonEmptyLines(chunk)
		if len(lines) != 2 {
			discarded++
			continue
		}
		if !questionPrefix.MatchString(lines[0]) || !answerPrefix.MatchString(lines[1]) {
			discarded++
			continue
		}
		pairs = append(pairs, QAPair{
			Question:    strings.TrimSpace(questionPrefix.ReplaceAllString(lines[0], "")),
			IdealAnswer: strings.TrimSpace(answerPrefix.ReplaceAllString(lines[1], "")),
		})
	}

	return pairs, discarded
}

// Dedupe removes pairs whose question text matches an earlier pair
// case-insensitively. Order is preserved; the first occurrence wins.
func Dedupe(pairs []QAPair) []QAPair {
	seen := make(map[string]bool, len(pairs))
	out := make([]QAPair, 0, len(pairs))
	for _, p := range pairs {
		key := strings.ToLower(strings.TrimSpace(p.Question))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// splitChunks splits on blank lines, tolerating \r\n and lines of only
// whitespace as separators.
func splitChunks(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	raw := regexp.MustCompile(`\n\s*\n`).Split(normalized, -1)

	chunks := make([]string, 0, len(raw))
	for _, c := range raw {
		if strings.TrimSpace(c) != "" {
			chunks = append(chunks, c)
		}
	}
	return chunks
}

func nonEmptyLines(chunk string) []string {
	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
