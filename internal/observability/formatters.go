// Package observability provides formatted terminal output for the
// interactive interview flow.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxResourcesToShow is the number of suggested resources displayed
	maxResourcesToShow = 5
)

// Printer handles formatted output for the interview terminal UI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrapLine(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// wrapLine breaks a line into chunks at word boundaries where possible.
func wrapLine(line string, width int) []string {
	if len(line) <= width {
		return []string{line}
	}

	var out []string
	for len(line) > width {
		cut := strings.LastIndex(line[:width], " ")
		if cut <= 0 {
			cut = width
		}
		out = append(out, strings.TrimRight(line[:cut], " "))
		line = strings.TrimLeft(line[cut:], " ")
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}

// PrintQuestion outputs the current question with its position.
func (p *Printer) PrintQuestion(step types.StepView) {
	title := fmt.Sprintf("QUESTION %d OF %d", step.Index+1, step.Total)
	p.printBox(title, step.Question)
}

// PrintFeedback outputs the feedback and score for a submitted answer.
func (p *Printer) PrintFeedback(step types.StepView) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.0f%%\n\n", step.Score*100))
	sb.WriteString(step.Feedback)
	if step.IdealAnswer != "" {
		sb.WriteString("\n\nIdeal answer:\n")
		sb.WriteString(step.IdealAnswer)
	}
	p.printBox(fmt.Sprintf("FEEDBACK ON QUESTION %d", step.Index+1), sb.String())
}

// PrintSummary outputs the final session report.
func (p *Printer) PrintSummary(summary *types.SessionSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.0f%%\n", summary.AverageScore*100))

	if len(summary.QAPairs) > 0 {
		sb.WriteString("\nPer-question scores:\n")
		for i, qa := range summary.QAPairs {
			question := qa.Question
			if len(question) > 48 {
				question = question[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %d. [%3.0f%%] %s\n", i+1, qa.Score*100, question))
		}
	}

	if summary.Narrative != "" {
		sb.WriteString("\n")
		sb.WriteString(summary.Narrative)
	}

	if len(summary.Resources) > 0 {
		sb.WriteString("\n\nSuggested resources:\n")
		count := min(len(summary.Resources), maxResourcesToShow)
		for i := 0; i < count; i++ {
			r := summary.Resources[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", r.Title))
			if r.URL != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", r.URL))
			}
		}
		if len(summary.Resources) > maxResourcesToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Resources)-maxResourcesToShow))
		}
	}

	p.printBox("INTERVIEW SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSessionHeader outputs the role and interview type before the
// first question.
func (p *Printer) PrintSessionHeader(role, domain string, interviewType types.InterviewType, questionCount int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", role))
	if domain != "" {
		sb.WriteString(fmt.Sprintf("Domain:    %s\n", domain))
	}
	sb.WriteString(fmt.Sprintf("Type:      %s\n", interviewType))
	sb.WriteString(fmt.Sprintf("Questions: %d", questionCount))
	p.printBox("MOCK INTERVIEW", sb.String())
}
