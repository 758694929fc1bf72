package models

import "net/http"

// APIError is a domain outcome that maps directly onto an HTTP status and a
// single-field {msg} body. Validation failures are raised where they are
// detected and travel unchanged to the boundary.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

var (
	ErrBadRequest         = &APIError{Status: http.StatusBadRequest, Msg: "Bad request"}
	ErrNotFound           = &APIError{Status: http.StatusNotFound, Msg: "Content not found"}
	ErrInvalidCredentials = &APIError{Status: http.StatusBadRequest, Msg: "Invalid credentials"}
	ErrAccountExists      = &APIError{Status: http.StatusBadRequest, Msg: "Account already exists"}
)
