package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"dmdstore-be/internal/order"
	"dmdstore-be/internal/product"
	"dmdstore-be/internal/upload"
	"dmdstore-be/internal/user"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

// writeDomainError maps domain sentinels to their HTTP status. Anything
// unrecognized is a storage failure and surfaces as an opaque 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, product.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, product.ErrTitleRequired):
		writeJSONError(w, http.StatusBadRequest, "title required")
	case errors.Is(err, product.ErrInvalidPrice):
		writeJSONError(w, http.StatusBadRequest, product.ErrInvalidPrice.Error())
	case errors.Is(err, user.ErrLoginTaken):
		writeJSONError(w, http.StatusConflict, "login already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		writeJSONError(w, http.StatusUnauthorized, "wrong credentials")
	case errors.Is(err, order.ErrInvalidOrder):
		writeJSONError(w, http.StatusBadRequest, "Invalid order data")
	case errors.Is(err, upload.ErrNoFile),
		errors.Is(err, upload.ErrBadType),
		errors.Is(err, upload.ErrFileTooLarge):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, "db error")
	}
}
