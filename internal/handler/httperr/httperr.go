// Package httperr defines the JSON error body every endpoint returns.
package httperr

import "net/http"

// Response is the flat error payload the API emits: {"error": "<message>"}.
// Status is the HTTP status to write alongside it.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}

// Internal is the catch-all body for panics and unmapped failures.
func Internal() Response {
	return New(http.StatusInternalServerError, "Internal server error")
}
