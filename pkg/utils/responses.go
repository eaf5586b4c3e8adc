package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body contract: a coarse category plus the
// user-visible detail.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

const (
	ErrorCategoryNotFound   = "Resource not found."
	ErrorCategoryValidation = "Invalid parameter value."
	ErrorCategoryUnexpected = "Unexpected error."
)

// ResponseJSON writes data as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, description string) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:       ErrorCategoryValidation,
		Description: description,
	})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, description string) {
	ResponseJSON(w, http.StatusNotFound, ErrorResponse{
		Error:       ErrorCategoryNotFound,
		Description: description,
	})
}

// returns 500 Internal Server Error with no detail leaked
func ResponseInternalError(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorCategoryUnexpected,
	})
}
