package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/IshanviChauhan/Interview-Bot/internal/llm"
)

// fakeCall records one Complete invocation for inspection.
type fakeCall struct {
	System string
	User   string
	Tier   llm.ModelTier
}

// fakeResponse is one scripted reply: either text or an error.
type fakeResponse struct {
	Text string
	Err  error
}

// fakeClient is a scripted llm.Client. Responses are consumed in call
// order; running out of script is a test bug and fails loudly.
type fakeClient struct {
	script []fakeResponse
	calls  []fakeCall
}

func (f *fakeClient) Complete(_ context.Context, system, user string, tier llm.ModelTier) (string, error) {
	f.calls = append(f.calls, fakeCall{System: system, User: user, Tier: tier})
	if len(f.script) == 0 {
		return "", fmt.Errorf("fakeClient: no scripted response for call %d", len(f.calls))
	}
	next := f.script[0]
	f.script = f.script[1:]
	if next.Err != nil {
		return "", next.Err
	}
	return next.Text, nil
}

func (f *fakeClient) Close() error { return nil }

// pairsResponse builds a well-formed generation response with n unique
// Q/A pairs, questions prefixed for distinguishability across calls.
func pairsResponse(n int, prefix string) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "Q%d. %s question %d?\nA%d. Ideal answer %d.\n\n", i, prefix, i, i, i)
	}
	return sb.String()
}
