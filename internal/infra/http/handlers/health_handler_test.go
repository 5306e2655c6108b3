package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadgenius/internal/config"
)

func TestHealthCheck(t *testing.T) {
	cfg := &config.Config{
		LeadsFile:      "leads_database.json",
		SendLogFile:    "email_log.json",
		PlacesAPIKey:   "k",
		SendGridAPIKey: "k",
	}
	h := NewHealthHandler(cfg)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "configured", resp.Dependencies["places"])
	assert.Equal(t, "not configured", resp.Dependencies["gemini"])
	assert.Equal(t, "sendgrid configured", resp.Dependencies["email"])
	assert.Equal(t, "leads_database.json", resp.Dependencies["lead_store"])
}
