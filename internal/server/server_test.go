package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IshanviChauhan/Interview-Bot/internal/config"
	"github.com/IshanviChauhan/Interview-Bot/internal/llm"
	"github.com/IshanviChauhan/Interview-Bot/internal/store"
)

// scriptedClient is a fake llm.Client returning canned responses in
// call order.
type scriptedClient struct {
	responses []string
	calls     int
}

func (c *scriptedClient) Complete(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
	if c.calls >= len(c.responses) {
		return "", fmt.Errorf("scriptedClient: no response for call %d", c.calls+1)
	}
	resp := c.responses[c.calls]
	c.calls++
	return resp, nil
}

func (c *scriptedClient) Close() error { return nil }

// generationResponse builds a well-formed question generation reply.
func generationResponse(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "Q%d. Question number %d?\nA%d. Ideal answer %d.\n\n", i, i, i, i)
	}
	return sb.String()
}

// testPasswordHash is bcrypt("secret", cost 10), precomputed per test run.
func testServer(t *testing.T, client llm.Client) *Server {
	t.Helper()

	authCfg := &config.AuthConfig{JWTSecret: "x", ExpirationHours: 1, BcryptCost: 10}
	hash, err := authCfg.HashPassword("secret")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "")
	t.Setenv("API_USERNAME", "operator")
	t.Setenv("API_PASSWORD_HASH", hash)
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	fileStore, err := store.NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)

	srv, err := New(Config{Addr: ":0", DefaultQuestionCount: 2}, client, fileStore, nil)
	require.NoError(t, err)
	return srv
}

func login(t *testing.T, srv *Server) string {
	t.Helper()
	rec := doJSON(srv, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "operator",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func doJSON(srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := testServer(t, &scriptedClient{})

	rec := doJSON(srv, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := testServer(t, &scriptedClient{})

	rec := doJSON(srv, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "operator",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	srv := testServer(t, &scriptedClient{})

	rec := doJSON(srv, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "operator",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessions_RequireAuth(t *testing.T) {
	srv := testServer(t, &scriptedClient{})

	rec := doJSON(srv, http.MethodGet, "/sessions", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateSession_Validation(t *testing.T) {
	srv := testServer(t, &scriptedClient{})
	token := login(t, srv)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing role", body: map[string]any{"interview_type": "technical"}},
		{name: "bad type", body: map[string]any{"role": "SE", "interview_type": "casual"}},
		{name: "count too high", body: map[string]any{"role": "SE", "interview_type": "technical", "question_count": 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(srv, http.MethodPost, "/sessions", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSessionFlow(t *testing.T) {
	client := &scriptedClient{responses: []string{
		generationResponse(7), // generation asks for count+5
		"Score: 6/10",
		"Score: 8/10",
		"Overall a solid performance.",
		`[{"title": "Reading", "url": "https://example.com/r"}]`,
	}}
	srv := testServer(t, client)
	token := login(t, srv)

	// create
	rec := doJSON(srv, http.MethodPost, "/sessions", token, map[string]any{
		"role":           "Software Engineer",
		"interview_type": "technical",
		"question_count": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "AWAITING_ANSWER", created.State)
	assert.Equal(t, 2, created.Total)
	assert.NotEmpty(t, created.CurrentQuestion)

	base := "/sessions/" + created.ID

	// answer first question
	rec = doJSON(srv, http.MethodPost, base+"/answers", token, map[string]string{"answer": "my answer"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var step StepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &step))
	assert.InDelta(t, 0.6, step.Score, 1e-9)

	// double submit is a state conflict
	rec = doJSON(srv, http.MethodPost, base+"/answers", token, map[string]string{"answer": "again"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// advance, answer second, complete
	rec = doJSON(srv, http.MethodPost, base+"/advance", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(srv, http.MethodPost, base+"/answers", token, map[string]string{"answer": "second answer"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(srv, http.MethodPost, base+"/complete", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// summary saves and returns the record
	rec = doJSON(srv, http.MethodPost, base+"/summary", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var summary SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.InDelta(t, 0.7, summary.Record.AverageScore, 1e-9)
	assert.Equal(t, "Overall a solid performance.", summary.Record.Narrative)
	require.Len(t, summary.Record.QAPairs, 2)
	assert.NotEmpty(t, summary.SavedPath)

	// delete
	rec = doJSON(srv, http.MethodDelete, base, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(srv, http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSession_InvalidID(t *testing.T) {
	srv := testServer(t, &scriptedClient{})
	token := login(t, srv)

	rec := doJSON(srv, http.MethodGet, "/sessions/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdvance_UnknownSession(t *testing.T) {
	srv := testServer(t, &scriptedClient{})
	token := login(t, srv)

	rec := doJSON(srv, http.MethodPost, "/sessions/7b8f3c1e-9a4d-4f2b-8c6e-1d2e3f4a5b6c/advance", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
