package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillpath/mitra/internal/catalog"
	"github.com/skillpath/mitra/internal/interview"
	"github.com/skillpath/mitra/internal/llm"
	"github.com/skillpath/mitra/internal/pathgen"
	"github.com/skillpath/mitra/internal/prompts"
	"github.com/skillpath/mitra/internal/session"
	"github.com/skillpath/mitra/internal/speech"
	"github.com/skillpath/mitra/internal/types"
)

// User-visible failure messages. Provider internals are never surfaced.
const (
	msgModelUnavailable = "The model service is temporarily unavailable. Please try again later."
	msgModelUnusable    = "The model failed to return a usable result."
	msgUnexpected       = "An unexpected error occurred. Please try again later."
)

// ---------------------------------------------------------------------
// Path generation
// ---------------------------------------------------------------------

type generatePathRequest struct {
	Profile        types.LearnerProfile       `json:"profile"`
	LabourMarket   *types.LabourMarketSignals `json:"labour_market,omitempty"`
	SessionID      string                     `json:"session_id,omitempty"`
	ConsentToShare bool                       `json:"consent_to_share"`
}

func (s *Server) handleGeneratePath(w http.ResponseWriter, r *http.Request) {
	var req generatePathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	path, err := s.pathgen.GeneratePath(r.Context(), pathgen.GenerateRequest{
		Profile:        req.Profile,
		LabourMarket:   req.LabourMarket,
		SessionID:      req.SessionID,
		ConsentToShare: req.ConsentToShare,
	})
	if err != nil {
		s.actionError(w, err)
		return
	}

	if req.SessionID != "" {
		_ = s.sessions.SetProfile(req.SessionID, &req.Profile)
		_ = s.sessions.SetPath(req.SessionID, path)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"path": path})
}

// ---------------------------------------------------------------------
// Summarization and explanation
// ---------------------------------------------------------------------

type summarizePathRequest struct {
	LearningPath *types.LearningPath `json:"learning_path"`
}

func (s *Server) handleSummarizePath(w http.ResponseWriter, r *http.Request) {
	var req summarizePathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LearningPath == nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := s.pathgen.SummarizePath(r.Context(), req.LearningPath)
	if err != nil {
		s.actionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

type explainCourseRequest struct {
	CourseID     string                `json:"course_id"`
	Profile      *types.LearnerProfile `json:"profile"`
	LearningPath *types.LearningPath   `json:"learning_path"`
}

func (s *Server) handleExplainCourse(w http.ResponseWriter, r *http.Request) {
	var req explainCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CourseID == "" || req.Profile == nil || req.LearningPath == nil {
		s.errorResponse(w, http.StatusBadRequest, "course_id, profile, and learning_path are required")
		return
	}

	explanation, err := s.pathgen.ExplainCourse(r.Context(), req.CourseID, req.Profile, req.LearningPath)
	if err != nil {
		s.actionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"explanation": explanation})
}

// ---------------------------------------------------------------------
// Interview and speech
// ---------------------------------------------------------------------

type interviewTurnRequest struct {
	CourseTitle string                   `json:"courseTitle"`
	Messages    []types.InterviewMessage `json:"messages"`
}

func (s *Server) handleInterviewTurn(w http.ResponseWriter, r *http.Request) {
	var req interviewTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CourseTitle == "" {
		s.errorResponse(w, http.StatusBadRequest, "courseTitle is required")
		return
	}

	result, err := s.interview.Turn(r.Context(), interview.TurnRequest{
		CourseTitle: req.CourseTitle,
		Session:     types.InterviewSession{Messages: req.Messages},
	})
	if err != nil {
		s.actionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

type speakSummaryRequest struct {
	Summary  string `json:"summary"`
	Lang     string `json:"lang"`
	UserName string `json:"userName"`
}

func (s *Server) handleSpeakSummary(w http.ResponseWriter, r *http.Request) {
	var req speakSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lang := prompts.Lang(req.Lang)
	if !lang.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "lang must be \"en\" or \"hi\"")
		return
	}
	if req.Summary == "" {
		s.errorResponse(w, http.StatusBadRequest, "summary is required")
		return
	}

	result, err := s.speech.SpeakSummary(r.Context(), speech.SpeakRequest{
		Summary:  req.Summary,
		Lang:     lang,
		UserName: req.UserName,
	})
	if err != nil {
		s.actionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"audioDataUri": result.AudioDataURI})
}

// ---------------------------------------------------------------------
// Catalog and sessions
// ---------------------------------------------------------------------

func (s *Server) handleCatalogCourses(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"courses": catalog.Courses()})
}

func (s *Server) handleGetSessionPath(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	path, err := s.sessions.GetPath(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "No path for this session")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, msgUnexpected)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"path": path})
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if err := s.sessions.Clear(sessionID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, msgUnexpected)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// ---------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------

// actionError maps orchestration errors to HTTP responses. Validation
// errors surface their field messages verbatim; everything else becomes
// a single human-readable string.
func (s *Server) actionError(w http.ResponseWriter, err error) {
	var pve *types.ProfileValidationError
	if errors.As(err, &pve) {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation_failed",
			"fields": pve.Errors,
		})
		return
	}

	var transient *llm.TransientError
	if errors.As(err, &transient) {
		s.errorResponse(w, http.StatusServiceUnavailable, msgModelUnavailable)
		return
	}

	var malformed *llm.MalformedOutputError
	if errors.As(err, &malformed) {
		s.errorResponse(w, http.StatusBadGateway, msgModelUnusable)
		return
	}

	s.errorResponse(w, http.StatusInternalServerError, msgUnexpected)
}
