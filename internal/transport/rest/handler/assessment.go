package handler

import (
	"encoding/json"
	"net/http"

	"cyclica-api/internal/model"
	"cyclica-api/internal/service"
)

// AssessmentHandler handles the assessment and chat endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	chatSvc       *service.ChatService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService, chatSvc *service.ChatService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		chatSvc:       chatSvc,
	}
}

// ChatRequest is the request body for POST /chat
type ChatRequest struct {
	SessionID  string `json:"session_id"`
	Message    string `json:"message"`
	QuestionID int    `json:"question_id,omitempty"`
	Phase      string `json:"phase"`
}

// Status handles GET /
func (h *AssessmentHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"message":   "Cyclica Cultural Fit Assessment API",
		"endpoints": []string{"/start-session", "/chat", "/get-questions"},
	})
}

// GetQuestions handles GET /get-questions
func (h *AssessmentHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.assessmentSvc.GetQuestions(),
	})
}

// StartSession handles POST /start-session
func (h *AssessmentHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.assessmentSvc.StartSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Chat handles POST /chat, dispatching on the requested phase.
func (h *AssessmentHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SessionID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "session_id and message are required")
		return
	}

	switch {
	case req.Phase == model.PhaseQuestionnaire && req.QuestionID > 0:
		next, complete, err := h.assessmentSvc.SubmitAnswer(r.Context(), req.SessionID, req.QuestionID, req.Message)
		if err != nil {
			writeDetailedError(w, http.StatusInternalServerError, "Internal server error", err.Error())
			return
		}
		if next != nil {
			writeJSON(w, http.StatusOK, next)
			return
		}
		writeJSON(w, http.StatusOK, complete)

	case req.Phase == model.PhaseFreeChat:
		reply, err := h.chatSvc.Chat(r.Context(), req.SessionID, req.Message)
		if err != nil {
			writeDetailedError(w, http.StatusInternalServerError, "Internal server error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, model.ChatResponse{
			Type:    "chat_response",
			Message: reply,
		})

	default:
		writeError(w, http.StatusBadRequest, "Invalid phase. Use 'questionnaire' or 'free_chat'")
	}
}
