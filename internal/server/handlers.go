package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IshanviChauhan/Interview-Bot/internal/export"
	"github.com/IshanviChauhan/Interview-Bot/internal/session"
	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

// CreateSessionRequest is the body for POST /sessions.
type CreateSessionRequest struct {
	Role          string `json:"role" validate:"required"`
	Domain        string `json:"domain"`
	InterviewType string `json:"interview_type" validate:"required,oneof=technical behavioral"`
	QuestionCount int    `json:"question_count" validate:"omitempty,min=1,max=20"`
}

// AnswerRequest is the body for POST /sessions/{id}/answers.
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// SessionResponse is the live view of a session.
type SessionResponse struct {
	ID              string  `json:"id"`
	Role            string  `json:"role"`
	Domain          string  `json:"domain,omitempty"`
	InterviewType   string  `json:"interview_type"`
	State           string  `json:"state"`
	Cursor          int     `json:"cursor"`
	Total           int     `json:"total"`
	CurrentQuestion string  `json:"current_question,omitempty"`
	AverageScore    float64 `json:"average_score"`
}

// StepResponse is the result of submitting an answer.
type StepResponse struct {
	Question    string  `json:"question"`
	Index       int     `json:"index"`
	Total       int     `json:"total"`
	Score       float64 `json:"score"`
	Feedback    string  `json:"feedback"`
	IdealAnswer string  `json:"ideal_answer,omitempty"`
}

// SummaryResponse is the final report plus where it was saved.
type SummaryResponse struct {
	Record    types.SessionRecord `json:"record"`
	SavedPath string              `json:"saved_path,omitempty"`
}

func sessionResponse(sess *session.Session) SessionResponse {
	return SessionResponse{
		ID:              sess.ID().String(),
		Role:            sess.Role(),
		Domain:          sess.Domain(),
		InterviewType:   string(sess.InterviewType()),
		State:           string(sess.State()),
		Cursor:          sess.Cursor(),
		Total:           sess.Total(),
		CurrentQuestion: sess.CurrentQuestion(),
		AverageScore:    sess.AverageScore(),
	}
}

// handleCreateSession creates and starts a new interview session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	count := req.QuestionCount
	if count == 0 {
		count = s.defaultQuestionCount
	}

	sess := session.New(s.client, s.log, req.Role, req.Domain, types.InterviewType(req.InterviewType))
	if err := sess.Start(r.Context(), count); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.registry.add(sess)

	s.log.Info("session created",
		zap.String("session_id", sess.ID().String()),
		zap.String("role", req.Role),
		zap.Int("questions", count))

	s.jsonResponse(w, http.StatusCreated, sessionResponse(sess))
}

// handleListSessions lists the IDs of live sessions.
func (s *Server) handleListSessions(w http.ResponseWriter, _ *http.Request) {
	ids := s.registry.ids()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"sessions": out})
}

// handleGetSession returns the current view of one session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	entry.mu.Lock()
	resp := sessionResponse(entry.sess)
	entry.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSubmitAnswer evaluates an answer to the current question.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	entry.mu.Lock()
	step, err := entry.sess.SubmitAnswer(r.Context(), req.Answer)
	entry.mu.Unlock()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, StepResponse{
		Question:    step.Question,
		Index:       step.Index,
		Total:       step.Total,
		Score:       step.Score,
		Feedback:    step.Feedback,
		IdealAnswer: step.IdealAnswer,
	})
}

// handleAdvance moves the session to the next question.
func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	entry.mu.Lock()
	err := entry.sess.Advance()
	resp := sessionResponse(entry.sess)
	entry.mu.Unlock()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleComplete moves the session to its terminal state.
func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	entry.mu.Lock()
	err := entry.sess.Complete()
	resp := sessionResponse(entry.sess)
	entry.mu.Unlock()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSummary builds the final report, saves it to disk, and returns
// the saved record. Save failures are reported but do not discard the
// summary.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	entry.mu.Lock()
	summary, err := entry.sess.Summarize(r.Context())
	var record types.SessionRecord
	if err == nil {
		record = entry.sess.Record(summary.Narrative, summary.Resources)
	}
	entry.mu.Unlock()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := SummaryResponse{Record: record}
	if s.store != nil {
		path, saveErr := s.store.Save(record)
		if saveErr != nil {
			s.log.Error("failed to save session record", zap.Error(saveErr))
		} else {
			resp.SavedPath = path
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleReport renders the session's HTML report. Valid once complete.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	entry.mu.Lock()
	summary, err := entry.sess.Summarize(r.Context())
	var record types.SessionRecord
	if err == nil {
		record = entry.sess.Record(summary.Narrative, summary.Resources)
	}
	entry.mu.Unlock()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	html, err := export.RenderHTML(&record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleDeleteSession drops a session from the registry.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseSessionID(w, r)
	if !ok {
		return
	}

	if !s.registry.remove(id) {
		err := &ErrSessionNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseSessionID reads and validates the {id} path segment.
func (s *Server) parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID format")
		return uuid.Nil, false
	}
	return id, true
}

// sessionFromPath resolves the {id} path segment to a registry entry.
func (s *Server) sessionFromPath(w http.ResponseWriter, r *http.Request) (*sessionEntry, bool) {
	id, ok := s.parseSessionID(w, r)
	if !ok {
		return nil, false
	}

	entry, found := s.registry.get(id)
	if !found {
		err := &ErrSessionNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return entry, true
}
