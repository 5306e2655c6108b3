package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/leadgenius/internal/entity"
	"github.com/xavierca1/leadgenius/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeUsecaseError maps the error taxonomy onto HTTP statuses: domain
// errors are the caller's problem (400/404/503), technical errors are an
// upstream's problem (502) unless the store itself failed (500).
func writeUsecaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case usecase.CodeLeadNotFound:
			status = http.StatusNotFound
		case usecase.CodeGeneratorDisabled, usecase.CodeComposerDisabled, usecase.CodeDispatchDisabled:
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, domainErr.Code, domainErr.Message)
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		status := http.StatusBadGateway
		if techErr.Code == usecase.CodeDatabaseError {
			status = http.StatusInternalServerError
		}
		writeError(w, status, techErr.Code, techErr.Message)
		return
	}

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, usecase.CodeValidation, validationErr.Error())
		return
	}

	if errors.Is(err, entity.ErrLeadNotFound) {
		writeError(w, http.StatusNotFound, usecase.CodeLeadNotFound, err.Error())
		return
	}

	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
