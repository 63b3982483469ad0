package handlers

import (
	"encoding/json"
	"net/http"
)

// writeError sends a plain error response with the given status
func writeError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}

// writeJSON is used by the operational endpoints
func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
