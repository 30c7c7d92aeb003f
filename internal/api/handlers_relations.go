// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/mentorlink/mentorlink/internal/auth"
	"github.com/mentorlink/mentorlink/internal/core"
	"github.com/mentorlink/mentorlink/internal/model"
)

// sendRequestBody is the payload of POST /mentorship_relation/send_request.
// end_date is a Unix timestamp in seconds.
type sendRequestBody struct {
	MentorID *int     `json:"mentor_id"`
	MenteeID *int     `json:"mentee_id"`
	EndDate  *float64 `json:"end_date"`
	Notes    string   `json:"notes"`
}

func (b sendRequestBody) toRequest() (core.RelationRequest, error) {
	if b.MentorID == nil || b.MenteeID == nil || b.EndDate == nil {
		return core.RelationRequest{}, apperrors.New(apperrors.CodeInvalidRequest, "mentor_id, mentee_id and end_date are required")
	}
	if math.IsNaN(*b.EndDate) || math.IsInf(*b.EndDate, 0) {
		return core.RelationRequest{}, apperrors.New(apperrors.CodeInvalidRequest, "end_date is not a number")
	}
	sec, frac := math.Modf(*b.EndDate)
	return core.RelationRequest{
		MentorID: *b.MentorID,
		MenteeID: *b.MenteeID,
		EndDate:  time.Unix(int64(sec), int64(frac*1e9)).UTC(),
		Notes:    b.Notes,
	}, nil
}

func (s *Server) sendRequest(w http.ResponseWriter, r *http.Request) {
	var body sendRequestBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	req, err := body.toRequest()
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := s.deps.Mentorships.CreateRelation(r.Context(), auth.UserIDFrom(r.Context()), req); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, r, core.MsgRelationSent)
}

func (s *Server) listRelations(w http.ResponseWriter, r *http.Request) {
	var filter *model.RelationState
	if raw := r.URL.Query().Get("state"); raw != "" {
		st, err := model.ParseRelationState(raw)
		if err != nil {
			writeError(w, r, apperrors.Wrap(apperrors.CodeInvalidRequest, "invalid state filter", err))
			return
		}
		filter = &st
	}
	views, err := s.deps.Mentorships.ListRelations(r.Context(), auth.UserIDFrom(r.Context()), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) listPastRelations(w http.ResponseWriter, r *http.Request) {
	s.writeViews(w, r, s.deps.Mentorships.ListPastRelations)
}

func (s *Server) listPendingRelations(w http.ResponseWriter, r *http.Request) {
	s.writeViews(w, r, s.deps.Mentorships.ListPendingRelations)
}

func (s *Server) writeViews(w http.ResponseWriter, r *http.Request, list func(context.Context, int) ([]model.RelationView, error)) {
	views, err := list(r.Context(), auth.UserIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) listCurrentRelation(w http.ResponseWriter, r *http.Request) {
	view, err := s.deps.Mentorships.ListCurrentRelation(r.Context(), auth.UserIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if view == nil {
		writeMessage(w, r, core.MsgNotInRelation)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// transition adapts a relation state change to a handler.
func (s *Server) transition(op func(ctx context.Context, actorID, relationID int) error, ok core.Message) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathInt(r, "relation_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := op(r.Context(), auth.UserIDFrom(r.Context()), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, r, ok)
	}
}

func (s *Server) acceptRequest(w http.ResponseWriter, r *http.Request) {
	s.transition(s.deps.Mentorships.AcceptRequest, core.MsgRelationAccepted)(w, r)
}

func (s *Server) rejectRequest(w http.ResponseWriter, r *http.Request) {
	s.transition(s.deps.Mentorships.RejectRequest, core.MsgRelationRejected)(w, r)
}

func (s *Server) cancelRelation(w http.ResponseWriter, r *http.Request) {
	s.transition(s.deps.Mentorships.CancelRelation, core.MsgRelationCancelled)(w, r)
}

func (s *Server) deleteRequest(w http.ResponseWriter, r *http.Request) {
	s.transition(s.deps.Mentorships.DeleteRequest, core.MsgRelationDeleted)(w, r)
}
