package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/cricket-team/internal/domain/admin"
)

const (
	adminTokenIssuer = "cricket-team"
	adminTokenType   = "Bearer"
)

type AdminAuthConfig struct {
	Password   string
	Secret     string
	SessionTTL time.Duration
}

// AdminAuthService guards the admin surface with a shared password and a
// signed session token.
type AdminAuthService struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAdminAuthService(cfg AdminAuthConfig) *AdminAuthService {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &AdminAuthService{
		password: []byte(cfg.Password),
		secret:   []byte(cfg.Secret),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *AdminAuthService) Login(ctx context.Context, password string) (admin.Session, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AdminAuthService.Login")
	defer span.End()

	if password == "" {
		return admin.Session{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if len(s.password) == 0 || subtle.ConstantTimeCompare([]byte(password), s.password) != 1 {
		return admin.Session{}, fmt.Errorf("%w: invalid admin password", ErrUnauthorized)
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    adminTokenIssuer,
		Subject:   admin.Subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return admin.Session{}, fmt.Errorf("sign admin token: %w", err)
	}

	return admin.Session{
		AccessToken: signed,
		TokenType:   adminTokenType,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AdminAuthService) VerifyAccessToken(ctx context.Context, token string) (admin.Principal, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AdminAuthService.VerifyAccessToken")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return admin.Principal{}, fmt.Errorf("%w: missing access token", ErrUnauthorized)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(admin.Subject),
		jwt.WithIssuer(adminTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return admin.Principal{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	principal := admin.Principal{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal, nil
}
