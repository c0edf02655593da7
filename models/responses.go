package models

import "time"

// TokenTypeBearer is the only token type issued by the API.
const TokenTypeBearer = "bearer"

// AccessTokenResponse is the body returned by the register and login
// endpoints.
type AccessTokenResponse struct {
	// AccessToken is the compact signed JWT.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// NewAccessTokenResponse wraps a signed token into the wire representation.
func NewAccessTokenResponse(token Token) AccessTokenResponse {
	return AccessTokenResponse{
		AccessToken: token.SignedString,
		TokenType:   TokenTypeBearer,
	}
}

// UserOut is the public projection of [User]. It never carries the
// password hash.
type UserOut struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// NewUserOut builds the public projection of user.
func NewUserOut(user User) UserOut {
	return UserOut{
		ID:        user.UserID,
		FullName:  user.FullName,
		Email:     user.Email,
		Timezone:  user.Timezone,
		CreatedAt: user.CreatedAt,
		IsActive:  user.IsActive,
	}
}

// MessageResponse is a generic informational body.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is returned by the health endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
