// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	iss, err := NewIssuer(testSecret, time.Hour, nil)
	require.NoError(t, err)
	rev := NewMemoryRevoker(nil)

	var gotUser int
	protected := Middleware(iss, rev, func(w http.ResponseWriter, r *http.Request, err error) {
		w.Header().Set("X-Error-Code", string(apperrors.CodeOf(err)))
		w.WriteHeader(apperrors.StatusOf(err))
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		return rec
	}

	rec := do("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(apperrors.CodeTokenMissing), rec.Header().Get("X-Error-Code"))

	rec = do("Basic abc")
	assert.Equal(t, string(apperrors.CodeTokenMissing), rec.Header().Get("X-Error-Code"))

	rec = do("Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(apperrors.CodeTokenInvalid), rec.Header().Get("X-Error-Code"))

	raw, claims, err := iss.Issue(7)
	require.NoError(t, err)
	rec = do("bearer " + raw)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 7, gotUser)

	require.NoError(t, rev.Revoke(context.Background(), claims.ID, claims.ExpiresAt))
	rec = do("Bearer " + raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(apperrors.CodeTokenRevoked), rec.Header().Get("X-Error-Code"))
}

func TestClaimsFromEmptyContext(t *testing.T) {
	assert.Nil(t, ClaimsFrom(context.Background()))
	assert.Equal(t, 0, UserIDFrom(context.Background()))
}
