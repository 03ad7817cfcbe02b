package admin

import (
	"context"
	"time"
)

// Subject is the only principal an admin session can carry.
const Subject = "admin"

// Principal is the verified identity behind an admin bearer token.
type Principal struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session is a freshly issued admin token.
type Session struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// TokenVerifier resolves a bearer token into a principal.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (Principal, error)
}
