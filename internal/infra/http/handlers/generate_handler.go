package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/leadgenius/internal/infra/http/middleware"
	"github.com/xavierca1/leadgenius/internal/usecase"
)

type GenerateHandler struct {
	UseCase *usecase.GenerateLeadsUseCase
}

func NewGenerateHandler(uc *usecase.GenerateLeadsUseCase) *GenerateHandler {
	return &GenerateHandler{UseCase: uc}
}

// Generate runs one synchronous generation batch. Progress is logged per
// candidate; the response carries the full batch result.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	output, err := h.UseCase.Execute(r.Context(), input, func(p usecase.GenerateProgress) {
		middleware.RecordLeadGenerated()
		log.Printf("generated %d/%d: %s (email found: %v)", p.Index, p.Total, p.LeadName, p.EmailFound)
	})
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("places")
		}
		writeUsecaseError(w, err)
		return
	}

	log.Printf("generation run finished: %d leads created, %d with email, %d skipped",
		len(output.Created), output.EmailsFound, output.Skipped)

	writeJSON(w, http.StatusOK, output)
}
