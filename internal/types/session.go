// Package types defines the shared data structures exchanged between the
// interview session core, persistence, export, and the HTTP API.
package types

import (
	"github.com/google/uuid"
)

// InterviewType selects the style of questions generated for a session.
type InterviewType string

// Supported interview types.
const (
	InterviewTechnical  InterviewType = "technical"
	InterviewBehavioral InterviewType = "behavioral"
)

// Valid reports whether the interview type is one of the supported values.
func (t InterviewType) Valid() bool {
	return t == InterviewTechnical || t == InterviewBehavioral
}

// QAResult is the record of one answered question. It is produced by
// answer evaluation and never mutated afterwards.
type QAResult struct {
	Question    string  `json:"question"`
	Answer      string  `json:"answer"`
	IdealAnswer string  `json:"ideal_answer"`
	Feedback    string  `json:"feedback"`
	Score       float64 `json:"score"` // normalized to [0,1]
}

// Resource is a study resource suggested in the final summary.
// URL may be empty when the model only returned a title; the raw title
// string is passed through unmodified so the presentation layer can
// decide whether it links.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SessionSummary is the terminal view of a completed session.
type SessionSummary struct {
	AverageScore float64    `json:"average_score"`
	Narrative    string     `json:"summary"`
	QAPairs      []QAResult `json:"qa_pairs"`
	Resources    []Resource `json:"resources,omitempty"`
}

// StepView is what the presentation layer needs after an answer has been
// submitted: the evaluated question plus progress through the session.
type StepView struct {
	Question    string  `json:"question"`
	Index       int     `json:"index"`
	Total       int     `json:"total"`
	Score       float64 `json:"score"`
	Feedback    string  `json:"feedback"`
	IdealAnswer string  `json:"ideal_answer"`
}

// Metadata is merged into every persisted session record.
type Metadata struct {
	Timestamp     string        `json:"timestamp"`
	Role          string        `json:"role"`
	Domain        string        `json:"domain"`
	InterviewType InterviewType `json:"interview_type"`
}

// SessionRecord is the persisted form of a completed session: the summary
// plus identifying metadata. This is the structure written to disk as JSON
// and consumed by the PDF exporter.
type SessionRecord struct {
	ID            uuid.UUID     `json:"id"`
	Role          string        `json:"role"`
	Domain        string        `json:"domain,omitempty"`
	InterviewType InterviewType `json:"interview_type"`
	Narrative     string        `json:"summary"`
	AverageScore  float64       `json:"average_score"`
	QAPairs       []QAResult    `json:"qa_pairs"`
	Resources     []Resource    `json:"resources,omitempty"`
	Metadata      Metadata      `json:"metadata"`
}
