package utils

import (
	"encoding/json"
	"net/http"

	"TASK_MANAGER_API/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a structured error response
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg string, details string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{
		Error:   errMsg,
		Message: details,
	})
}

// WriteValidationErrors writes a 400 response carrying field-level errors
func WriteValidationErrors(w http.ResponseWriter, errors map[string]string) {
	WriteJSONResponse(w, http.StatusBadRequest, dto.ValidationErrorResponse{
		Error:  "Validation error",
		Errors: errors,
	})
}
