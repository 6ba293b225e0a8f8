package response

import (
	"encoding/json"
	"net/http"
)

// M is the body of an API response. Success bodies carry a "message" string
// plus one payload key ("user", "room", "booking", "payment", ...); error
// bodies carry only "message".
type M map[string]interface{}

// JSON writes a JSON body with the given status
func JSON(w http.ResponseWriter, status int, body M) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// OK sends a 200 response
func OK(w http.ResponseWriter, body M) {
	JSON(w, http.StatusOK, body)
}

// Created sends a 201 response
func Created(w http.ResponseWriter, body M) {
	JSON(w, http.StatusCreated, body)
}

// Error sends an error response of the form {"message": ...}
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, M{"message": message})
}

// BadRequest sends a 400 response
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// NotFound sends a 404 response
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Conflict reports duplicate resources and booking overlaps. The API's error
// taxonomy maps conflicts to 400, not 409.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// InternalError sends a generic 500 response without leaking internals
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error")
}
