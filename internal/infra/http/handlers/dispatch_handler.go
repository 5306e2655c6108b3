package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadgenius/internal/entity"
	"github.com/xavierca1/leadgenius/internal/infra/http/middleware"
	"github.com/xavierca1/leadgenius/internal/usecase"
)

type DispatchHandler struct {
	UseCase *usecase.DispatchEmailUseCase
	Log     entity.SendLogRepositoryInterface
}

func NewDispatchHandler(uc *usecase.DispatchEmailUseCase, sendLog entity.SendLogRepositoryInterface) *DispatchHandler {
	return &DispatchHandler{UseCase: uc, Log: sendLog}
}

type LinkedInMessageRequest struct {
	LinkedInMessage string `json:"linkedin_message"`
}

type LinkedInMessageResponse struct {
	Message string `json:"message"`
}

// Send dispatches an approved (possibly user-edited) draft to the lead's
// email address.
func (h *DispatchHandler) Send(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	var draft entity.OutreachDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	entry, err := h.UseCase.SendEmail(r.Context(), id, draft)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("email")
			middleware.RecordEmailSent(entity.OutcomeFailure)
		}
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordEmailSent(entity.OutcomeSuccess)
	writeJSON(w, http.StatusOK, entry)
}

func (h *DispatchHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	lead, err := h.UseCase.Reject(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// LinkedInMessage echoes the LinkedIn variant back for the shell to place on
// the clipboard.
func (h *DispatchHandler) LinkedInMessage(w http.ResponseWriter, r *http.Request) {
	var req LinkedInMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	message := h.UseCase.LinkedInMessage(entity.OutreachDraft{LinkedInMessage: req.LinkedInMessage})
	writeJSON(w, http.StatusOK, LinkedInMessageResponse{Message: message})
}

func (h *DispatchHandler) SendLog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Log.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
