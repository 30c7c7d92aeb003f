// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/mentorlink/mentorlink/internal/apperrors"
)

type contextKey struct{}

// ErrorWriter renders an authentication failure.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// WithClaims returns a copy of ctx carrying c.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// ClaimsFrom returns the claims stored by Middleware, or nil.
func ClaimsFrom(ctx context.Context) *Claims {
	c, _ := ctx.Value(contextKey{}).(*Claims)
	return c
}

// UserIDFrom returns the authenticated user id, or 0.
func UserIDFrom(ctx context.Context) int {
	if c := ClaimsFrom(ctx); c != nil {
		return c.UserID
	}
	return 0
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) < len("Bearer ") || !strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}

// Middleware rejects requests without a valid, unrevoked bearer token and
// stores the claims in the request context. A nil revoker skips the
// revocation check.
func Middleware(iss *Issuer, rev Revoker, fail ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := BearerToken(r)
			if raw == "" {
				fail(w, r, apperrors.E(apperrors.CodeTokenMissing))
				return
			}
			claims, err := iss.Verify(raw)
			if err != nil {
				fail(w, r, err)
				return
			}
			if rev != nil {
				revoked, err := rev.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					fail(w, r, apperrors.Wrap(apperrors.CodeInternal, "revocation check failed", err))
					return
				}
				if revoked {
					fail(w, r, apperrors.E(apperrors.CodeTokenRevoked))
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
