package middleware

import (
	"encoding/json"
	"net/http"

	"gobeer/internal/domain"
	apperror "gobeer/internal/errors"
)

// writeError responde com o mesmo corpo de erro usado pelos handlers.
func writeError(w http.ResponseWriter, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}
