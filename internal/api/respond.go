// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/mentorlink/mentorlink/internal/core"
	"github.com/mentorlink/mentorlink/internal/i18n"
	"github.com/mentorlink/mentorlink/internal/logging"
)

// messageResponse is the body of every message-only response.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warnf("api: encode response: %v", err)
	}
}

// localize renders key in the request's preferred language.
func localize(r *http.Request, key string) string {
	return i18n.TFor(key, r.Header.Get("Accept-Language"))
}

func writeMessage(w http.ResponseWriter, r *http.Request, msg core.Message) {
	writeJSON(w, http.StatusOK, messageResponse{Message: localize(r, string(msg))})
}

// writeError renders err with the status and message of its code. Non-domain
// errors become INTERNAL and are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeInternal {
		logging.Errorf("api: %s %s: %v", r.Method, r.URL.Path, err)
	} else {
		logging.Debugf("api: %s %s: %s", r.Method, r.URL.Path, code)
	}
	writeJSON(w, code.HTTPStatus(), messageResponse{Message: localize(r, code.MessageID())})
}

// pathInt parses a positive integer URL parameter.
func pathInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v <= 0 {
		return 0, apperrors.New(apperrors.CodeInvalidRequest, "invalid "+name)
	}
	return v, nil
}

// decodeJSON reads a JSON body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidRequest, "invalid request body", err)
	}
	return nil
}
