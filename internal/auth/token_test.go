// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef-test-secret"

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	iss, err := NewIssuer(testSecret, time.Hour, fixedNow(now))
	require.NoError(t, err)

	raw, issued, err := iss.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, now.Add(time.Hour), issued.ExpiresAt)

	claims, err := iss.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, issued.ExpiresAt, claims.ExpiresAt)

	_, other, err := iss.Issue(42)
	require.NoError(t, err)
	assert.NotEqual(t, issued.ID, other.ID, "token ids must be unique")
}

func TestIssuer_Expired(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	iss, err := NewIssuer(testSecret, time.Minute, fixedNow(now))
	require.NoError(t, err)
	raw, _, err := iss.Issue(1)
	require.NoError(t, err)

	later, err := NewIssuer(testSecret, time.Minute, fixedNow(now.Add(2*time.Minute)))
	require.NoError(t, err)
	_, err = later.Verify(raw)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTokenExpired), "got %v", err)
}

func TestIssuer_Invalid(t *testing.T) {
	iss, err := NewIssuer(testSecret, time.Hour, nil)
	require.NoError(t, err)
	other, err := NewIssuer("another-secret-of-enough-length", time.Hour, nil)
	require.NoError(t, err)

	foreign, _, err := other.Issue(1)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   "1",
		ID:        "x",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   "alice",
		ID:        "x",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": foreign,
		"alg none":     noneToken,
		"bad subject":  badSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := iss.Verify(raw)
			assert.True(t, apperrors.HasCode(err, apperrors.CodeTokenInvalid), "got %v", err)
		})
	}

	_, err = iss.Verify("  ")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTokenMissing))
}

func TestNewIssuer_RejectsShortSecret(t *testing.T) {
	_, err := NewIssuer("short", time.Hour, nil)
	assert.Error(t, err)

	iss, err := NewIssuer(testSecret, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, iss.TTL())
}
