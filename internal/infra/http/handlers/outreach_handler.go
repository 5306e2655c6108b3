package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadgenius/internal/entity"
	"github.com/xavierca1/leadgenius/internal/infra/http/middleware"
	"github.com/xavierca1/leadgenius/internal/usecase"
)

type OutreachHandler struct {
	UseCase *usecase.ComposeOutreachUseCase
	Repo    entity.LeadRepositoryInterface
}

func NewOutreachHandler(uc *usecase.ComposeOutreachUseCase, repo entity.LeadRepositoryInterface) *OutreachHandler {
	return &OutreachHandler{UseCase: uc, Repo: repo}
}

type BatchComposeRequest struct {
	// LeadIDs selects which leads to compose for. Empty means every lead in
	// the store.
	LeadIDs []string `json:"lead_ids,omitempty"`
}

type SaveDraftsRequest struct {
	Drafts []entity.OutreachDraft `json:"drafts"`
	Dir    string                 `json:"dir,omitempty"`
}

type SaveDraftsResponse struct {
	Path string `json:"path"`
}

func (h *OutreachHandler) Compose(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	lead, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	draft, err := h.UseCase.Execute(r.Context(), *lead)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("gemini")
		}
		middleware.RecordOutreachComposed(entity.OutcomeFailure)
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordOutreachComposed(entity.OutcomeSuccess)
	writeJSON(w, http.StatusOK, draft)
}

func (h *OutreachHandler) ComposeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	leads, err := h.resolveLeads(r, req.LeadIDs)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	output, err := h.UseCase.ExecuteBatch(r.Context(), leads, func(p usecase.ComposeProgress) {
		outcome := entity.OutcomeSuccess
		if p.Failed {
			outcome = entity.OutcomeFailure
			middleware.RecordIntegrationError("gemini")
		}
		middleware.RecordOutreachComposed(outcome)
		log.Printf("composed %d/%d: %s (failed: %v)", p.Index, p.Total, p.LeadName, p.Failed)
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *OutreachHandler) SaveDrafts(w http.ResponseWriter, r *http.Request) {
	var req SaveDraftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	if len(req.Drafts) == 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "at least one draft is required")
		return
	}

	path, err := h.UseCase.SaveDrafts(req.Drafts, req.Dir)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SaveDraftsResponse{Path: path})
}

func (h *OutreachHandler) resolveLeads(r *http.Request, ids []string) ([]entity.Lead, error) {
	if len(ids) == 0 {
		return h.Repo.List(r.Context(), entity.LeadFilter{})
	}

	leads := make([]entity.Lead, 0, len(ids))
	for _, id := range ids {
		lead, err := h.Repo.FindByID(r.Context(), id)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, nil
}
