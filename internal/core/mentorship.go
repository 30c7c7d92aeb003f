// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/mentorlink/mentorlink/internal/logging"
	"github.com/mentorlink/mentorlink/internal/model"
)

// Mentorship duration bounds, measured from the moment a request is sent.
const (
	MinimumMentorshipDuration = 4 * 7 * 24 * time.Hour
	MaximumMentorshipDuration = 24 * 7 * 24 * time.Hour
)

// RelationRequest is the payload for sending a mentorship request.
type RelationRequest struct {
	MentorID int       `json:"mentor_id"`
	MenteeID int       `json:"mentee_id"`
	EndDate  time.Time `json:"end_date"`
	Notes    string    `json:"notes"`
}

// MentorshipService implements the mentorship request lifecycle.
type MentorshipService struct {
	store Store
	opts  options
}

// NewMentorshipService returns a service backed by store.
func NewMentorshipService(store Store, opts ...Option) *MentorshipService {
	return &MentorshipService{store: store, opts: buildOptions(opts)}
}

// CreateRelation sends a mentorship request on behalf of actorID. Either
// participant may send it. The new relation is PENDING and owns an empty
// task list.
func (s *MentorshipService) CreateRelation(ctx context.Context, actorID int, req RelationRequest) (*model.MentorshipRelation, error) {
	if actorID != req.MentorID && actorID != req.MenteeID {
		return nil, apperrors.E(apperrors.CodeMatchEitherMentorOrMentee)
	}
	if req.MentorID == req.MenteeID {
		return nil, apperrors.E(apperrors.CodeMentorIDSameAsMenteeID)
	}

	current := now(s.opts.clock)
	end := req.EndDate.UTC().Truncate(time.Second)
	if end.Before(current) {
		return nil, apperrors.E(apperrors.CodeEndTimeBeforePresent)
	}
	duration := end.Sub(current)
	if duration > MaximumMentorshipDuration {
		return nil, apperrors.E(apperrors.CodeMentorTimeGreaterThanMax)
	}
	if duration < MinimumMentorshipDuration {
		return nil, apperrors.E(apperrors.CodeMentorTimeLessThanMin)
	}

	mentor, err := s.store.GetUser(ctx, req.MentorID)
	if err != nil {
		return nil, internal("load mentor", err)
	}
	if mentor == nil {
		return nil, apperrors.E(apperrors.CodeMentorDoesNotExist)
	}
	if !mentor.AvailableToMentor {
		return nil, apperrors.E(apperrors.CodeMentorNotAvailable)
	}

	mentee, err := s.store.GetUser(ctx, req.MenteeID)
	if err != nil {
		return nil, internal("load mentee", err)
	}
	if mentee == nil {
		return nil, apperrors.E(apperrors.CodeMenteeDoesNotExist)
	}
	if !mentee.NeedMentoring {
		return nil, apperrors.E(apperrors.CodeMenteeNotAvailable)
	}

	busy, err := s.hasAcceptedRelation(ctx, mentor.ID)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, apperrors.E(apperrors.CodeMentorInRelation)
	}
	busy, err = s.hasAcceptedRelation(ctx, mentee.ID)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, apperrors.E(apperrors.CodeMenteeAlreadyInRelation)
	}

	rel, err := s.store.AddRelation(ctx, model.MentorshipRelation{
		MentorID:     mentor.ID,
		MenteeID:     mentee.ID,
		ActionUserID: actorID,
		State:        model.StatePending,
		CreationDate: current,
		EndDate:      end,
		Notes:        strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return nil, internal("create relation", err)
	}
	s.audit(ctx, actorID, ActionSendRequest, fmt.Sprintf("relation %d: mentor %d, mentee %d", rel.ID, rel.MentorID, rel.MenteeID))
	s.opts.notify(model.StatePending)
	return &rel, nil
}

// ListRelations returns every relation actorID takes part in. A non-nil
// state restricts the result to that state.
func (s *MentorshipService) ListRelations(ctx context.Context, actorID int, state *model.RelationState) ([]model.RelationView, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	var filter model.RelationState
	if state != nil {
		filter = *state
	}
	rels, err := s.store.ListRelationsForUser(ctx, actorID, filter)
	if err != nil {
		return nil, internal("list relations", err)
	}
	return views(rels, actorID, nil), nil
}

// AcceptRequest moves a PENDING request to ACCEPTED. Only the participant
// who did not send the request may accept it, and only while they hold no
// other ACCEPTED relation.
func (s *MentorshipService) AcceptRequest(ctx context.Context, actorID, relationID int) error {
	rel, err := s.loadRequest(ctx, actorID, relationID)
	if err != nil {
		return err
	}
	if rel.State != model.StatePending {
		return apperrors.E(apperrors.CodeNotPendingStateRelation)
	}
	if rel.SentBy(actorID) {
		return apperrors.E(apperrors.CodeCantAcceptOwnRequest)
	}
	if !rel.Involves(actorID) {
		return apperrors.E(apperrors.CodeCantAcceptUninvolvedRelation)
	}
	busy, err := s.hasAcceptedRelation(ctx, actorID)
	if err != nil {
		return err
	}
	if busy {
		return apperrors.E(apperrors.CodeUserInvolvedInRelation)
	}

	rel.State = model.StateAccepted
	rel.AcceptDate = now(s.opts.clock)
	return s.persistTransition(ctx, actorID, rel, ActionAcceptRequest)
}

// RejectRequest moves a PENDING request to REJECTED. The sender cannot
// reject their own request.
func (s *MentorshipService) RejectRequest(ctx context.Context, actorID, relationID int) error {
	rel, err := s.loadRequest(ctx, actorID, relationID)
	if err != nil {
		return err
	}
	if rel.State != model.StatePending {
		return apperrors.E(apperrors.CodeNotPendingStateRelation)
	}
	if rel.SentBy(actorID) {
		return apperrors.E(apperrors.CodeCantRejectOwnRequest)
	}
	if !rel.Involves(actorID) {
		return apperrors.E(apperrors.CodeCantRejectUninvolvedRequest)
	}

	rel.State = model.StateRejected
	return s.persistTransition(ctx, actorID, rel, ActionRejectRequest)
}

// CancelRelation moves an ACCEPTED relation to CANCELLED. Either
// participant may cancel.
func (s *MentorshipService) CancelRelation(ctx context.Context, actorID, relationID int) error {
	rel, err := s.loadRequest(ctx, actorID, relationID)
	if err != nil {
		return err
	}
	if rel.State != model.StateAccepted {
		return apperrors.E(apperrors.CodeUnacceptedStateRelation)
	}
	if !rel.Involves(actorID) {
		return apperrors.E(apperrors.CodeCantCancelUninvolvedRelation)
	}

	rel.State = model.StateCancelled
	return s.persistTransition(ctx, actorID, rel, ActionCancelRelation)
}

// DeleteRequest removes a PENDING request and its task list. Only the
// sender may delete it.
func (s *MentorshipService) DeleteRequest(ctx context.Context, actorID, relationID int) error {
	rel, err := s.loadRequest(ctx, actorID, relationID)
	if err != nil {
		return err
	}
	if rel.State != model.StatePending {
		return apperrors.E(apperrors.CodeNotPendingStateRelation)
	}
	if !rel.SentBy(actorID) {
		return apperrors.E(apperrors.CodeCantDeleteUninvolvedRequest)
	}

	if err := s.store.DeleteRelation(ctx, rel.ID); err != nil {
		return internal("delete relation", err)
	}
	s.audit(ctx, actorID, ActionDeleteRequest, fmt.Sprintf("relation %d", rel.ID))
	return nil
}

// ListPastRelations returns relations whose end date has passed, in any state.
func (s *MentorshipService) ListPastRelations(ctx context.Context, actorID int) ([]model.RelationView, error) {
	current := now(s.opts.clock)
	return s.listWhere(ctx, actorID, "", func(r model.MentorshipRelation) bool {
		return r.EndDate.Before(current)
	})
}

// ListPendingRelations returns PENDING requests that have not yet expired.
func (s *MentorshipService) ListPendingRelations(ctx context.Context, actorID int) ([]model.RelationView, error) {
	current := now(s.opts.clock)
	return s.listWhere(ctx, actorID, model.StatePending, func(r model.MentorshipRelation) bool {
		return r.EndDate.After(current)
	})
}

// ListCurrentRelation returns actorID's ACCEPTED relation. A nil view with a
// nil error means the user is not currently in a relation.
func (s *MentorshipService) ListCurrentRelation(ctx context.Context, actorID int) (*model.RelationView, error) {
	rels, err := s.listWhere(ctx, actorID, model.StateAccepted, nil)
	if err != nil {
		return nil, err
	}
	if len(rels) == 0 {
		return nil, nil
	}
	return &rels[0], nil
}

// CompleteOverdueRelations marks every ACCEPTED relation whose end date is
// before at as COMPLETED and returns how many were changed.
func (s *MentorshipService) CompleteOverdueRelations(ctx context.Context, at time.Time) (int, error) {
	rels, err := s.store.ListRelationsByState(ctx, model.StateAccepted)
	if err != nil {
		return 0, internal("list accepted relations", err)
	}
	at = at.UTC()
	completed := 0
	for _, rel := range rels {
		if !rel.EndDate.Before(at) {
			continue
		}
		rel.State = model.StateCompleted
		if err := s.persistTransition(ctx, 0, &rel, ActionCompleteRelation); err != nil {
			return completed, err
		}
		completed++
	}
	return completed, nil
}

func (s *MentorshipService) listWhere(ctx context.Context, actorID int, state model.RelationState, keep func(model.MentorshipRelation) bool) ([]model.RelationView, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	rels, err := s.store.ListRelationsForUser(ctx, actorID, state)
	if err != nil {
		return nil, internal("list relations", err)
	}
	return views(rels, actorID, keep), nil
}

// loadRequest resolves the actor and the relation, in that order.
func (s *MentorshipService) loadRequest(ctx context.Context, actorID, relationID int) (*model.MentorshipRelation, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	rel, err := s.store.GetRelation(ctx, relationID)
	if err != nil {
		return nil, internal("load relation", err)
	}
	if rel == nil {
		return nil, apperrors.E(apperrors.CodeRequestDoesNotExist)
	}
	return rel, nil
}

func (s *MentorshipService) requireUser(ctx context.Context, userID int) error {
	return requireUser(ctx, s.store, userID)
}

// hasAcceptedRelation checks the user's own relations in either role.
func (s *MentorshipService) hasAcceptedRelation(ctx context.Context, userID int) (bool, error) {
	rels, err := s.store.ListRelationsForUser(ctx, userID, model.StateAccepted)
	if err != nil {
		return false, internal("check accepted relations", err)
	}
	return len(rels) > 0, nil
}

func (s *MentorshipService) persistTransition(ctx context.Context, actorID int, rel *model.MentorshipRelation, action string) error {
	if err := s.store.UpdateRelation(ctx, *rel); err != nil {
		return internal("update relation", err)
	}
	s.audit(ctx, actorID, action, fmt.Sprintf("relation %d -> %s", rel.ID, rel.State))
	s.opts.notify(rel.State)
	return nil
}

func (s *MentorshipService) audit(ctx context.Context, actorID int, action, details string) {
	writeAudit(ctx, s.store, actorID, action, details)
}

func views(rels []model.MentorshipRelation, actorID int, keep func(model.MentorshipRelation) bool) []model.RelationView {
	out := make([]model.RelationView, 0, len(rels))
	for _, r := range rels {
		if keep != nil && !keep(r) {
			continue
		}
		out = append(out, r.ViewFor(actorID))
	}
	return out
}

func requireUser(ctx context.Context, store UserStore, userID int) error {
	u, err := store.GetUser(ctx, userID)
	if err != nil {
		return internal("load user", err)
	}
	if u == nil {
		return apperrors.E(apperrors.CodeUserDoesNotExist)
	}
	return nil
}

// writeAudit records an action. Failures are logged, not returned.
func writeAudit(ctx context.Context, w AuditWriter, actorID int, action, details string) {
	if err := w.LogAction(ctx, actorID, action, details); err != nil {
		logging.Warnf("failed to write audit entry %s (%s): %v", action, details, err)
	}
}

func internal(op string, err error) error {
	return apperrors.Wrap(apperrors.CodeInternal, op+": "+err.Error(), err)
}
