package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

func TestGenerate_ExactCountFromSingleCall(t *testing.T) {
	client := &fakeClient{script: []fakeResponse{
		{Text: pairsResponse(8, "alpha")},
	}}
	gen := NewGenerator(client, nil)

	pairs, err := gen.Generate(context.Background(), "Software Engineer", "", types.InterviewTechnical, 3)

	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Len(t, client.calls, 1)
	// first call requests count+5 candidates to absorb duplicates
	assert.Contains(t, client.calls[0].User, "exactly 8")
	assert.Equal(t, "alpha question 1?", pairs[0].Question)
	assert.Equal(t, "Ideal answer 1.", pairs[0].IdealAnswer)
}

func TestGenerate_RetriesWithExclusions(t *testing.T) {
	// First call yields only two unique questions (lots of duplicates),
	// the retry supplies the rest.
	duplicated := "Q1. Repeated question?\nA1. One.\n\n" +
		"Q2. repeated question?\nA2. Two.\n\n" +
		"Q3. Another question?\nA3. Three.\n\n" +
		"Q4. ANOTHER QUESTION?\nA4. Four.\n"

	client := &fakeClient{script: []fakeResponse{
		{Text: duplicated},
		{Text: pairsResponse(7, "backfill")},
	}}
	gen := NewGenerator(client, nil)

	pairs, err := gen.Generate(context.Background(), "Data Scientist", "Machine Learning", types.InterviewTechnical, 4)

	require.NoError(t, err)
	require.Len(t, pairs, 4)
	require.Len(t, client.calls, 2)

	// the retry prompt excludes the already-accepted questions
	assert.Contains(t, client.calls[1].User, "already-used questions")
	assert.Contains(t, client.calls[1].User, "- Repeated question?")
	assert.Contains(t, client.calls[1].User, "- Another question?")

	// no case-insensitive duplicates in the result
	seen := map[string]bool{}
	for _, p := range pairs {
		key := strings.ToLower(p.Question)
		assert.False(t, seen[key], "duplicate question: %s", p.Question)
		seen[key] = true
	}
}

func TestGenerate_FillerGuaranteesCount(t *testing.T) {
	// Model returns nothing usable on either call.
	client := &fakeClient{script: []fakeResponse{
		{Text: "Sorry, I cannot help with that."},
		{Text: ""},
	}}
	gen := NewGenerator(client, nil)

	pairs, err := gen.Generate(context.Background(), "DevOps Engineer", "", types.InterviewTechnical, 6)

	require.NoError(t, err)
	require.Len(t, pairs, 6)
	assert.Len(t, client.calls, 2)

	// deterministic: filler cycles the canonical topic list in order
	assert.Contains(t, pairs[0].Question, "the CAP theorem")
	assert.Contains(t, pairs[1].Question, "ACID vs BASE")
	assert.Contains(t, pairs[0].Question, "DevOps Engineer")
	assert.NotEmpty(t, pairs[0].IdealAnswer)
}

func TestGenerate_FillerUniqueAcrossRounds(t *testing.T) {
	client := &fakeClient{script: []fakeResponse{
		{Text: ""},
		{Text: ""},
	}}
	gen := NewGenerator(client, nil)

	// more than the topic list holds, forcing a second rotation
	pairs, err := gen.Generate(context.Background(), "UX Designer", "", types.InterviewBehavioral, 12)

	require.NoError(t, err)
	require.Len(t, pairs, 12)

	seen := map[string]bool{}
	for _, p := range pairs {
		key := strings.ToLower(p.Question)
		assert.False(t, seen[key], "duplicate filler question: %s", p.Question)
		seen[key] = true
	}
	// second rotation is disambiguated
	assert.Contains(t, pairs[10].Question, "follow-up 2")
}

func TestGenerate_PartialPlusFiller(t *testing.T) {
	client := &fakeClient{script: []fakeResponse{
		{Text: pairsResponse(2, "real")},
		{Text: ""},
	}}
	gen := NewGenerator(client, nil)

	pairs, err := gen.Generate(context.Background(), "Software Engineer", "", types.InterviewTechnical, 5)

	require.NoError(t, err)
	require.Len(t, pairs, 5)
	// real questions come first, filler after
	assert.Equal(t, "real question 1?", pairs[0].Question)
	assert.Contains(t, pairs[2].Question, "the CAP theorem")
}

func TestGenerate_CountBelowOne(t *testing.T) {
	gen := NewGenerator(&fakeClient{}, nil)

	_, err := gen.Generate(context.Background(), "Software Engineer", "", types.InterviewTechnical, 0)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestGenerate_TransportErrorPropagates(t *testing.T) {
	cause := errors.New("connection reset")
	client := &fakeClient{script: []fakeResponse{{Err: cause}}}
	gen := NewGenerator(client, nil)

	_, err := gen.Generate(context.Background(), "Software Engineer", "", types.InterviewTechnical, 3)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, cause)
}
