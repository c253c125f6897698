package oauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

const stateIssuer = "callcenter-oauth"

// StateSigner issues and verifies the signed state parameter. The nonce is the
// token ID; callers persist it to make every state single-use.
type StateSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewStateSigner(secret string, ttl time.Duration) *StateSigner {
	return &StateSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *StateSigner) Issue(provider, orgID, userID string) (string, entity.OAuthState, error) {
	now := s.now()

	st := entity.OAuthState{
		Nonce:          uuid.Must(uuid.NewV4()).String(),
		Provider:       provider,
		OrganizationID: orgID,
		UserID:         userID,
		ExpiresAt:      now.Add(s.ttl),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.StateClaims{
		Provider:       provider,
		OrganizationID: orgID,
		UserID:         userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        st.Nonce,
			Issuer:    stateIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(st.ExpiresAt),
		},
	}).SignedString(s.secret)
	if err != nil {
		return "", entity.OAuthState{}, fmt.Errorf("sign state: %w", err)
	}

	return token, st, nil
}

// Parse verifies signature, expiry and provider binding.
func (s *StateSigner) Parse(state, provider string) (entity.StateClaims, error) {
	if state == "" {
		return entity.StateClaims{}, fmt.Errorf("empty state: %w", entity.ErrOAuthInvalidState)
	}

	var claims entity.StateClaims

	token, err := jwt.ParseWithClaims(state, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(stateIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.StateClaims{}, fmt.Errorf("state expired: %w", entity.ErrOAuthInvalidState)
		}

		return entity.StateClaims{}, fmt.Errorf("parse state: %v: %w", err, entity.ErrOAuthInvalidState)
	}

	if !token.Valid || claims.ID == "" {
		return entity.StateClaims{}, fmt.Errorf("invalid state: %w", entity.ErrOAuthInvalidState)
	}

	if claims.Provider != provider {
		return entity.StateClaims{}, fmt.Errorf("state issued for %q: %w", claims.Provider, entity.ErrOAuthInvalidState)
	}

	return claims, nil
}
