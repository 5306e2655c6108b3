package handlers

import (
	"net/http"
	"time"

	"github.com/xavierca1/leadgenius/internal/config"
)

type HealthHandler struct {
	Config    *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		Config:    cfg,
		StartTime: time.Now(),
	}
}

// Handle reports which components are live. Missing credentials show up as
// "not configured" rather than failing the check: a degraded deployment is
// still a working CRUD app.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := map[string]string{
		"lead_store": h.Config.LeadsFile,
		"send_log":   h.Config.SendLogFile,
	}

	if h.Config.GeneratorEnabled() {
		deps["places"] = "configured"
	} else {
		deps["places"] = "not configured"
	}

	if h.Config.ComposerEnabled() {
		deps["gemini"] = "configured"
	} else {
		deps["gemini"] = "not configured"
	}

	if h.Config.SendGridAPIKey != "" {
		deps["email"] = "sendgrid configured"
	} else if h.Config.MailHost != "" {
		deps["email"] = "smtp configured"
	} else {
		deps["email"] = "not configured"
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	})
}
