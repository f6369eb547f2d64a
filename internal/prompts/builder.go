package prompts

import (
	"strconv"
	"strings"

	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

// templateFile holds all interview prompt templates.
const templateFile = "interview.json"

// QuestionRequest describes one question-generation call.
type QuestionRequest struct {
	Role    string
	Domain  string
	Type    types.InterviewType
	Count   int
	Exclude []string // already-accepted questions the model must not repeat
}

// BuildQuestionPrompt produces the prompt instructing the model to emit
// Count question/ideal-answer pairs in the fixed "Q<i>. / A<i>." format.
func BuildQuestionPrompt(req QuestionRequest) string {
	tmpl := MustGet(templateFile, "generate-questions")
	g := Lookup(req.Role, req.Domain)

	typeWord := "technical"
	var instructions string
	if req.Type == types.InterviewBehavioral {
		typeWord = "behavioral"
		instructions = MustGet(templateFile, "behavioral-instructions")
	} else {
		instructions = Format(MustGet(templateFile, "technical-instructions"), map[string]string{
			"Guidance": formatTopics(g),
		})
	}

	domainClause := ""
	if req.Domain != "" {
		domainClause = " with focus on " + req.Domain
	}

	exclusions := "\n"
	if len(req.Exclude) > 0 {
		var sb strings.Builder
		sb.WriteString("\nDo not repeat or rephrase any of these already-used questions:\n")
		for _, q := range req.Exclude {
			sb.WriteString("- ")
			sb.WriteString(q)
			sb.WriteString("\n")
		}
		exclusions = sb.String()
	}

	return Format(tmpl, map[string]string{
		"Count":            strconv.Itoa(req.Count),
		"TypeWord":         typeWord,
		"Role":             req.Role,
		"DomainClause":     domainClause,
		"TypeInstructions": instructions,
		"Exclusions":       exclusions,
	})
}

// QuestionSystemPrompt returns the system prompt for question generation.
func QuestionSystemPrompt(role string) string {
	return Format(MustGet(templateFile, "system-interviewer"), map[string]string{
		"Role": role,
	})
}

// BuildEvaluationPrompt produces the prompt asking for bullet-listed
// strengths, bullet-listed improvement areas, and a literal "Score: X/10"
// line for one question/answer pair.
func BuildEvaluationPrompt(question, answer, role, domain string, interviewType types.InterviewType) string {
	var criteriaBlock string
	if interviewType == types.InterviewBehavioral {
		criteriaBlock = MustGet(templateFile, "evaluate-behavioral-criteria")
	} else {
		g := Lookup(role, domain)
		var sb strings.Builder
		sb.WriteString("   - Correctness of technical concepts\n")
		for _, c := range g.Criteria {
			sb.WriteString("   - ")
			sb.WriteString(c)
			sb.WriteString("\n")
		}
		criteriaBlock = Format(MustGet(templateFile, "evaluate-technical-criteria"), map[string]string{
			"Criteria": sb.String(),
		})
	}

	return Format(MustGet(templateFile, "evaluate-answer"), map[string]string{
		"Question":      question,
		"Answer":        answer,
		"CriteriaBlock": criteriaBlock,
	})
}

// EvaluationSystemPrompt returns the system prompt for answer evaluation.
// The focus clause names the domain when one is set, the role otherwise.
func EvaluationSystemPrompt(role, domain string) string {
	focus := "the role"
	if domain != "" {
		focus = domain
	}
	return Format(MustGet(templateFile, "system-evaluator"), map[string]string{
		"Role":  role,
		"Focus": focus,
	})
}

// BuildSummaryPrompt produces the prompt requesting top-3 strengths,
// top-3 improvement areas, resource suggestions, and an overall 0-10
// score for the whole session.
func BuildSummaryPrompt(pairs []types.QAResult, role, domain string, interviewType types.InterviewType) string {
	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString("Q: ")
		sb.WriteString(p.Question)
		sb.WriteString("\nA: ")
		sb.WriteString(p.Answer)
		sb.WriteString("\n\n")
	}

	return Format(MustGet(templateFile, "summarize-session"), map[string]string{
		"Role":          role,
		"Domain":        domain,
		"InterviewType": string(interviewType),
		"QAPairs":       strings.TrimRight(sb.String(), "\n"),
	})
}

// SummarySystemPrompt returns the system prompt for the final summary.
func SummarySystemPrompt() string {
	return MustGet(templateFile, "system-summarizer")
}

// BuildResourcePrompt produces the prompt demanding a strict JSON array
// of {title, url} objects, count entries, no surrounding commentary.
func BuildResourcePrompt(summary string, count int) string {
	return Format(MustGet(templateFile, "suggest-resources"), map[string]string{
		"Summary": summary,
		"Count":   strconv.Itoa(count),
	})
}

// formatTopics renders role and domain topic hints as focus bullet lists.
func formatTopics(g Guidance) string {
	var sb strings.Builder
	sb.WriteString("Focus on:\n")
	for _, t := range g.RoleTopics {
		sb.WriteString("- ")
		sb.WriteString(t)
		sb.WriteString("\n")
	}
	for _, t := range g.DomainTopics {
		sb.WriteString("- ")
		sb.WriteString(t)
		sb.WriteString("\n")
	}
	return sb.String()
}
