// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package auth issues and verifies the bearer tokens used by the HTTP API
// and tracks revoked tokens.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mentorlink/mentorlink/internal/apperrors"
)

// TokenIssuer is the iss claim on every token.
const TokenIssuer = "mentorlink"

// DefaultTokenTTL is used when no lifetime is configured.
const DefaultTokenTTL = 24 * time.Hour

// minSecretLength guards against trivially guessable HMAC keys.
const minSecretLength = 16

// Claims are the validated contents of an access token.
type Claims struct {
	UserID    int
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer. A nil now uses time.Now.
func NewIssuer(secret string, ttl time.Duration, now func() time.Time) (*Issuer, error) {
	if len(strings.TrimSpace(secret)) < minSecretLength {
		return nil, fmt.Errorf("auth secret must be at least %d characters", minSecretLength)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: now}, nil
}

// TTL returns the token lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for userID.
func (i *Issuer) Issue(userID int) (string, Claims, error) {
	issued := i.now().UTC().Truncate(time.Second)
	c := Claims{
		UserID:    userID,
		ID:        uuid.NewString(),
		IssuedAt:  issued,
		ExpiresAt: issued.Add(i.ttl),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   strconv.Itoa(userID),
		ID:        c.ID,
		IssuedAt:  jwt.NewNumericDate(c.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", Claims{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, c, nil
}

// Verify parses raw and checks signature, issuer and expiry.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperrors.E(apperrors.CodeTokenMissing)
	}

	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, mapJWTError(err)
	}

	userID, err := strconv.Atoi(parsed.Subject)
	if err != nil || userID <= 0 {
		return nil, apperrors.New(apperrors.CodeTokenInvalid, "token subject is not a user id")
	}
	if parsed.ID == "" {
		return nil, apperrors.New(apperrors.CodeTokenInvalid, "token jti is required")
	}
	c := &Claims{UserID: userID, ID: parsed.ID, ExpiresAt: parsed.ExpiresAt.Time.UTC()}
	if parsed.IssuedAt != nil {
		c.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return c, nil
}

func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return apperrors.Wrap(apperrors.CodeTokenExpired, "token has expired", err)
	}
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		return apperrors.Wrap(apperrors.CodeTokenInvalid, "token signature is invalid", err)
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return apperrors.Wrap(apperrors.CodeTokenInvalid, "token alg is invalid", err)
	}
	return apperrors.Wrap(apperrors.CodeTokenInvalid, "token is invalid", err)
}
