// Package dto holds the request payloads of the HTTP API. Response bodies
// reuse the service result envelope directly.
package dto

// LoginRequest is the POST /api/auth/login payload.
type LoginRequest struct {
	Username string `json:"usuario" binding:"required"`
	Password string `json:"password" binding:"required"`
}
