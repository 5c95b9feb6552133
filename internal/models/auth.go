package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest carries the organizer passphrase.
type LoginRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// SessionClaims is the JWT payload of an organizer session.
type SessionClaims struct {
	jwt.RegisteredClaims
}
