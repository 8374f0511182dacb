package dto

import "github.com/google/uuid"

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

// MessageResponse answers the /test probes of each resource.
type MessageResponse struct {
	Msg string `json:"msg"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// TokenResponse is returned by login. Token already carries the "Bearer " prefix.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type CurrentUserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
}

// FieldErrors is the field → message body used for validation and domain errors.
type FieldErrors map[string]string
