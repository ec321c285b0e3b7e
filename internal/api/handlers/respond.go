package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/inotebook/server/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeValidationErrors(w http.ResponseWriter, fieldErrors []validation.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"errors":  fieldErrors,
	})
}
