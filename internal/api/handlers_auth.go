// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"net/http"

	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/mentorlink/mentorlink/internal/auth"
	"github.com/mentorlink/mentorlink/internal/core"
	"github.com/mentorlink/mentorlink/internal/logging"
)

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	AccessExpiry int64  `json:"access_expiry"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.Username == "" || body.Password == "" {
		writeError(w, r, apperrors.New(apperrors.CodeInvalidRequest, "username and password are required"))
		return
	}
	u, err := s.deps.Users.Authenticate(r.Context(), body.Username, body.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	token, claims, err := s.deps.Issuer.Issue(u.ID)
	if err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.CodeInternal, "issue token", err))
		return
	}
	logging.Infof("user %s logged in", u)
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, AccessExpiry: claims.ExpiresAt.Unix()})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		writeError(w, r, apperrors.E(apperrors.CodeTokenMissing))
		return
	}
	if s.deps.Revoker != nil {
		if err := s.deps.Revoker.Revoke(r.Context(), claims.ID, claims.ExpiresAt); err != nil {
			writeError(w, r, apperrors.Wrap(apperrors.CodeInternal, "revoke token", err))
			return
		}
	}
	writeMessage(w, r, core.MsgLogoutSuccessful)
}
