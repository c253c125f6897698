package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/pkg/logger"
)

const sessionIssuer = "callcenter-admin"

// SignIn issues a session token for a seeded staff member. There is no password:
// this is the development sign-in used by the front-end.
func (s *Service) SignIn(ctx context.Context, email string) (string, entity.User, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return "", entity.User{}, err
	}

	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "sign in with unknown email")
			return "", entity.User{}, fmt.Errorf("user %s: %w", email, entity.ErrUnauthorized)
		}

		return "", entity.User{}, fmt.Errorf("get user by email: %w", err)
	}

	ctx = logger.SetUserID(ctx, user.ID)

	if user.Status == entity.UserStatusSuspended {
		slog.WarnContext(ctx, "suspended user tried to sign in")
		return "", entity.User{}, entity.ErrUserSuspended
	}

	now := s.now()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.SessionClaims{
		OrganizationID: user.OrganizationID,
		Role:           user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Session.TTL)),
		},
	}).SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		return "", entity.User{}, fmt.Errorf("sign session token: %w", err)
	}

	slog.InfoContext(ctx, "user signed in", "role", user.Role)

	return token, user, nil
}

// Authenticate resolves a session token to the current state of its user.
func (s *Service) Authenticate(ctx context.Context, token string) (entity.User, error) {
	var claims entity.SessionClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		return []byte(s.cfg.Session.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: %w", entity.ErrInvalidToken, err)
	}

	user, err := s.store.User(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, fmt.Errorf("session user %s: %w", claims.Subject, entity.ErrInvalidToken)
		}

		return entity.User{}, fmt.Errorf("get session user: %w", err)
	}

	if user.Status == entity.UserStatusSuspended {
		return entity.User{}, entity.ErrUserSuspended
	}

	return user, nil
}
