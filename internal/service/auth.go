package service

import (
	"context"
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("service")

// AuthService resolves the acting user from a bearer token.
type AuthService struct {
	secret []byte
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

// Enabled reports whether tokens can be verified at all.
func (s *AuthService) Enabled() bool {
	return len(s.secret) > 0
}

// Actor validates an HS256 token and returns its subject.
func (s *AuthService) Actor(ctx context.Context, token string) (string, error) {
	_, span := tracer.Start(ctx, "Auth.Service.Actor")
	defer span.End()

	if !s.Enabled() {
		err := fmt.Errorf("jwt secret not configured")
		span.RecordError(err)
		return "", err
	}

	claims := &jwt.StandardClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return "", err
	}

	if claims.Subject == "" {
		err := fmt.Errorf("jwt has no subject")
		span.RecordError(err)
		return "", err
	}

	return claims.Subject, nil
}
