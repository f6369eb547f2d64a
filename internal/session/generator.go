package session

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/IshanviChauhan/Interview-Bot/internal/llm"
	"github.com/IshanviChauhan/Interview-Bot/internal/parsing"
	"github.com/IshanviChauhan/Interview-Bot/internal/prompts"
	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

// extraCandidates is how many pairs beyond the requested count the first
// generation call asks for, to absorb the duplicates models tend to emit.
const extraCandidates = 5

// fillerTopics is the fixed rotating list used to synthesize
// deterministic filler questions when the model cannot produce enough
// unique ones. Novelty is traded for determinism in the degenerate case.
var fillerTopics = []string{
	"the CAP theorem",
	"ACID vs BASE trade-offs",
	"horizontal vs vertical scaling",
	"caching strategies and eviction policies",
	"load balancing approaches",
	"database indexing",
	"message queues and asynchronous processing",
	"idempotency in distributed systems",
	"monitoring and observability",
	"testing strategies and test pyramids",
}

// Generator produces exactly the requested number of unique
// question/ideal-answer pairs: one generous model call, a dedup pass, at
// most one retry excluding already-accepted questions, then deterministic
// filler.
type Generator struct {
	client llm.Client
	log    *zap.Logger
}

// NewGenerator returns a Generator using the given gateway client.
func NewGenerator(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, log: logger}
}

// Generate returns exactly count unique pairs for the given role, domain
// and interview type. Questions are unique case-insensitively, including
// through the filler path.
func (g *Generator) Generate(ctx context.Context, role, domain string, interviewType types.InterviewType, count int) ([]parsing.QAPair, error) {
	if count < 1 {
		return nil, &GenerationError{Message: fmt.Sprintf("count must be >= 1, got %d", count)}
	}

	accepted, err := g.requestPairs(ctx, role, domain, interviewType, count+extraCandidates, nil)
	if err != nil {
		return nil, err
	}

	// One backfill call, explicitly excluding what we already accepted.
	if len(accepted) < count {
		exclude := questionTexts(accepted)
		g.log.Info("question generation came up short, retrying with exclusions",
			zap.Int("accepted", len(accepted)),
			zap.Int("requested", count))

		more, err := g.requestPairs(ctx, role, domain, interviewType, count-len(accepted)+extraCandidates, exclude)
		if err != nil {
			return nil, err
		}
		accepted = parsing.Dedupe(append(accepted, more...))
	}

	// Deterministic filler guarantees the contract of exactly count pairs.
	if len(accepted) < count {
		g.log.Warn("falling back to synthetic filler questions",
			zap.Int("accepted", len(accepted)),
			zap.Int("requested", count))
		accepted = backfill(accepted, role, count)
	}

	return accepted[:count], nil
}

// requestPairs performs one generation call and returns the deduplicated
// pairs it yielded.
func (g *Generator) requestPairs(ctx context.Context, role, domain string, interviewType types.InterviewType, count int, exclude []string) ([]parsing.QAPair, error) {
	prompt := prompts.BuildQuestionPrompt(prompts.QuestionRequest{
		Role:    role,
		Domain:  domain,
		Type:    interviewType,
		Count:   count,
		Exclude: exclude,
	})

	response, err := g.client.Complete(ctx, prompts.QuestionSystemPrompt(role), prompt, llm.TierStandard)
	if err != nil {
		return nil, &GenerationError{Message: "completion call failed", Cause: err}
	}

	pairs, discarded := parsing.ExtractPairs(response)
	if discarded > 0 {
		g.log.Warn("discarded malformed question chunks", zap.Int("discarded", discarded))
	}

	return parsing.Dedupe(pairs), nil
}

// backfill appends filler pairs cycling through fillerTopics by index
// until count is reached, skipping any collision with already-accepted
// questions so post-backfill uniqueness still holds.
func backfill(accepted []parsing.QAPair, role string, count int) []parsing.QAPair {
	seen := make(map[string]bool, count)
	for _, p := range accepted {
		seen[strings.ToLower(strings.TrimSpace(p.Question))] = true
	}

	for i := 0; len(accepted) < count; i++ {
		topic := fillerTopics[i%len(fillerTopics)]
		question := fmt.Sprintf("Explain %s and how it applies to your work as a %s.", topic, role)
		if round := i / len(fillerTopics); round > 0 {
			question = fmt.Sprintf("%s (follow-up %d)", question, round+1)
		}

		key := strings.ToLower(question)
		if seen[key] {
			continue
		}
		seen[key] = true

		accepted = append(accepted, parsing.QAPair{
			Question:    question,
			IdealAnswer: fmt.Sprintf("A strong answer defines %s, weighs its trade-offs, and grounds it in a concrete production example.", topic),
		})
	}

	return accepted
}

func questionTexts(pairs []parsing.QAPair) []string {
	texts := make([]string, len(pairs))
	for i, p := range pairs {
		texts[i] = p.Question
	}
	return texts
}
