package entity

import "github.com/golang-jwt/jwt/v5"

type SessionClaims struct {
	OrganizationID string `json:"org"`
	Role           Role   `json:"role"`
	jwt.RegisteredClaims
}

type StateClaims struct {
	Provider       string `json:"provider"`
	OrganizationID string `json:"org,omitempty"`
	UserID         string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}
