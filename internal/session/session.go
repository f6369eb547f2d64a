// Package session implements the interview session state machine: an
// ordered set of questions, per-question answers/feedback/scores, and a
// cursor that only moves forward. One Session is owned by one logical
// user flow; there is no internal locking. Anything serving concurrent
// users must keep one Session per user and add its own boundary.
package session

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IshanviChauhan/Interview-Bot/internal/llm"
	"github.com/IshanviChauhan/Interview-Bot/internal/parsing"
	"github.com/IshanviChauhan/Interview-Bot/internal/prompts"
	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

// State is the lifecycle state of a Session.
type State string

// Session lifecycle states.
const (
	StateEmpty           State = "EMPTY"
	StateAwaitingAnswer  State = "AWAITING_ANSWER"
	StateAnswerSubmitted State = "ANSWER_SUBMITTED"
	StateComplete        State = "COMPLETE"
)

// resourceCount is how many study resources the summary requests.
const resourceCount = 5

// Session holds the full state of one mock interview. Invariant after
// every operation: len(answers) == len(feedback) == len(scores), all
// index-aligned with questions up to the cursor; questions and
// idealAnswers are fixed once Start succeeds.
type Session struct {
	id            uuid.UUID
	role          string
	domain        string
	interviewType types.InterviewType

	questions    []string
	idealAnswers []string
	answers      []string
	feedback     []string
	scores       []float64
	cursor       int
	state        State

	client llm.Client
	log    *zap.Logger
}

// New constructs an empty session. The gateway client is injected here
// and used for every model call the session makes.
func New(client llm.Client, logger *zap.Logger, role, domain string, interviewType types.InterviewType) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		id:            uuid.New(),
		role:          role,
		domain:        domain,
		interviewType: interviewType,
		state:         StateEmpty,
		client:        client,
		log:           logger,
	}
}

// Start populates the question list and moves the session to
// AWAITING_ANSWER. Exactly count questions and ideal answers are
// guaranteed by the generator's backfill policy.
func (s *Session) Start(ctx context.Context, count int) error {
	if s.state != StateEmpty {
		return &InvalidStateError{Op: "start", State: s.state}
	}

	pairs, err := NewGenerator(s.client, s.log).Generate(ctx, s.role, s.domain, s.interviewType, count)
	if err != nil {
		return err
	}

	s.questions = make([]string, len(pairs))
	s.idealAnswers = make([]string, len(pairs))
	for i, p := range pairs {
		s.questions[i] = p.Question
		s.idealAnswers[i] = p.IdealAnswer
	}
	s.cursor = 0
	s.state = StateAwaitingAnswer
	return nil
}

// SubmitAnswer evaluates the answer to the current question and records
// answer, feedback and score at the cursor index. Valid only in
// AWAITING_ANSWER, so a second submission for the same question is
// rejected before anything is appended. Blank-answer rejection is the
// caller's concern.
func (s *Session) SubmitAnswer(ctx context.Context, answer string) (types.StepView, error) {
	if s.state != StateAwaitingAnswer {
		return types.StepView{}, &InvalidStateError{Op: "submit_answer", State: s.state}
	}

	question := s.questions[s.cursor]
	prompt := prompts.BuildEvaluationPrompt(question, answer, s.role, s.domain, s.interviewType)
	feedback, err := s.client.Complete(ctx, prompts.EvaluationSystemPrompt(s.role, s.domain), prompt, llm.TierStandard)
	if err != nil {
		return types.StepView{}, err
	}

	score, usedFallback := parsing.ExtractScore(feedback)
	if usedFallback {
		s.log.Warn("score extraction fell back to default",
			zap.String("session_id", s.id.String()),
			zap.Int("question_index", s.cursor),
			zap.Float64("default", parsing.DefaultScore))
	}

	s.answers = append(s.answers, answer)
	s.feedback = append(s.feedback, feedback)
	s.scores = append(s.scores, score)
	s.state = StateAnswerSubmitted

	return types.StepView{
		Question:    question,
		Index:       s.cursor,
		Total:       len(s.questions),
		Score:       score,
		Feedback:    feedback,
		IdealAnswer: s.idealAnswers[s.cursor],
	}, nil
}

// Advance moves the cursor to the next question. Valid only in
// ANSWER_SUBMITTED with questions remaining; advancing past the last
// question fails rather than moving the cursor out of bounds.
func (s *Session) Advance() error {
	if s.state != StateAnswerSubmitted || s.cursor >= len(s.questions)-1 {
		return &InvalidStateError{Op: "advance", State: s.state}
	}
	s.cursor++
	s.state = StateAwaitingAnswer
	return nil
}

// Complete moves the session to its terminal state. Valid only in
// ANSWER_SUBMITTED on the last question. Afterwards SubmitAnswer and
// Advance fail with an InvalidStateError.
func (s *Session) Complete() error {
	if s.state != StateAnswerSubmitted || s.cursor != len(s.questions)-1 {
		return &InvalidStateError{Op: "complete", State: s.state}
	}
	s.state = StateComplete
	return nil
}

// Summarize builds the final summary from all accumulated pairs. Valid
// only in COMPLETE. It is idempotent in the sense that it may be called
// repeatedly; each call issues fresh model calls, so narrative text may
// differ between calls while average score and pairs stay stable.
func (s *Session) Summarize(ctx context.Context) (*types.SessionSummary, error) {
	if s.state != StateComplete {
		return nil, &InvalidStateError{Op: "summarize", State: s.state}
	}

	pairs := s.QAResults()
	prompt := prompts.BuildSummaryPrompt(pairs, s.role, s.domain, s.interviewType)
	narrative, err := s.client.Complete(ctx, prompts.SummarySystemPrompt(), prompt, llm.TierAdvanced)
	if err != nil {
		return nil, err
	}

	resources := s.suggestResources(ctx, narrative)

	return &types.SessionSummary{
		AverageScore: s.AverageScore(),
		Narrative:    narrative,
		QAPairs:      pairs,
		Resources:    resources,
	}, nil
}

// suggestResources asks the model for study resources based on the
// narrative. Resource suggestions are best-effort: a gateway failure
// here yields an empty list, not a failed summary.
func (s *Session) suggestResources(ctx context.Context, narrative string) []types.Resource {
	response, err := s.client.Complete(ctx, prompts.SummarySystemPrompt(), prompts.BuildResourcePrompt(narrative, resourceCount), llm.TierLite)
	if err != nil {
		s.log.Warn("resource suggestion call failed", zap.Error(err))
		return nil
	}

	resources, usedFallback := parsing.ParseResources(response)
	if usedFallback {
		s.log.Warn("resource list parsing fell back to line format",
			zap.String("session_id", s.id.String()),
			zap.Int("parsed", len(resources)))
	}
	return resources
}

// AverageScore is the mean of recorded scores, 0 when none are recorded.
func (s *Session) AverageScore() float64 {
	if len(s.scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.scores {
		sum += v
	}
	return sum / float64(len(s.scores))
}

// QAResults returns one QAResult per answered question, index-aligned.
func (s *Session) QAResults() []types.QAResult {
	results := make([]types.QAResult, len(s.answers))
	for i := range s.answers {
		results[i] = types.QAResult{
			Question:    s.questions[i],
			Answer:      s.answers[i],
			IdealAnswer: s.idealAnswers[i],
			Feedback:    s.feedback[i],
			Score:       s.scores[i],
		}
	}
	return results
}

// Record assembles the persistable form of a completed session. The
// timestamp is stamped by the store at save time.
func (s *Session) Record(narrative string, resources []types.Resource) types.SessionRecord {
	return types.SessionRecord{
		ID:            s.id,
		Role:          s.role,
		Domain:        s.domain,
		InterviewType: s.interviewType,
		Narrative:     narrative,
		AverageScore:  s.AverageScore(),
		QAPairs:       s.QAResults(),
		Resources:     resources,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Role returns the role the session interviews for.
func (s *Session) Role() string { return s.role }

// Domain returns the optional domain focus, empty when unset.
func (s *Session) Domain() string { return s.domain }

// InterviewType returns the session's interview type.
func (s *Session) InterviewType() types.InterviewType { return s.interviewType }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Cursor returns the index of the current question.
func (s *Session) Cursor() int { return s.cursor }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// CurrentQuestion returns the question at the cursor, empty before Start.
func (s *Session) CurrentQuestion() string {
	if s.cursor < len(s.questions) {
		return s.questions[s.cursor]
	}
	return ""
}

// Questions returns a copy of the generated questions.
func (s *Session) Questions() []string {
	out := make([]string, len(s.questions))
	copy(out, s.questions)
	return out
}

// IdealAnswers returns a copy of the generated ideal answers.
func (s *Session) IdealAnswers() []string {
	out := make([]string, len(s.idealAnswers))
	copy(out, s.idealAnswers)
	return out
}

// Scores returns a copy of the recorded scores.
func (s *Session) Scores() []float64 {
	out := make([]float64, len(s.scores))
	copy(out, s.scores)
	return out
}
