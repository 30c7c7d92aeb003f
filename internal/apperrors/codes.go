// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package apperrors

import "net/http"

// Code is a machine-readable error code. It doubles as the i18n message id
// used to render the client-facing message.
type Code string

const (
	// Generic
	CodeInternal       Code = "INTERNAL"
	CodeInvalidRequest Code = "INVALID_REQUEST"

	// Users
	CodeUserDoesNotExist        Code = "USER_DOES_NOT_EXIST"
	CodeUsernameTaken           Code = "USERNAME_TAKEN"
	CodeWrongUsernameOrPassword Code = "WRONG_USERNAME_OR_PASSWORD"

	// Sending a request
	CodeMatchEitherMentorOrMentee Code = "MATCH_EITHER_MENTOR_OR_MENTEE"
	CodeMentorIDSameAsMenteeID    Code = "MENTOR_ID_SAME_AS_MENTEE_ID"
	CodeEndTimeBeforePresent      Code = "END_TIME_BEFORE_PRESENT"
	CodeMentorTimeGreaterThanMax  Code = "MENTOR_TIME_GREATER_THAN_MAX_TIME"
	CodeMentorTimeLessThanMin     Code = "MENTOR_TIME_LESS_THAN_MIN_TIME"
	CodeMentorDoesNotExist        Code = "MENTOR_DOES_NOT_EXIST"
	CodeMentorNotAvailable        Code = "MENTOR_NOT_AVAILABLE_TO_MENTOR"
	CodeMenteeDoesNotExist        Code = "MENTEE_DOES_NOT_EXIST"
	CodeMenteeNotAvailable        Code = "MENTEE_NOT_AVAIL_TOBE_MENTORED"
	CodeMentorInRelation          Code = "MENTOR_IN_RELATION"
	CodeMenteeAlreadyInRelation   Code = "MENTEE_ALREADY_IN_A_RELATION"

	// Request state transitions
	CodeRequestDoesNotExist          Code = "MENTORSHIP_RELATION_REQUEST_DOES_NOT_EXIST"
	CodeNotPendingStateRelation      Code = "NOT_PENDING_STATE_RELATION"
	CodeCantAcceptOwnRequest         Code = "CANT_ACCEPT_MENTOR_REQ_SENT_BY_USER"
	CodeCantAcceptUninvolvedRelation Code = "CANT_ACCEPT_UNINVOLVED_MENTOR_RELATION"
	CodeUserInvolvedInRelation       Code = "USER_IS_INVOLVED_IN_A_MENTORSHIP_RELATION"
	CodeCantRejectOwnRequest         Code = "USER_CANT_REJECT_REQUEST_FOR_MENTOR"
	CodeCantRejectUninvolvedRequest  Code = "CANT_REJECT_UNINVOLVED_RELATION_REQUEST"
	CodeUnacceptedStateRelation      Code = "UNACCEPTED_STATE_RELATION"
	CodeCantCancelUninvolvedRelation Code = "CANT_CANCEL_UNINVOLVED_REQUEST"
	CodeCantDeleteUninvolvedRequest  Code = "CANT_DELETE_UNINVOLVED_REQUEST"

	// Tasks
	CodeRelationDoesNotExist Code = "MENTORSHIP_RELATION_DOES_NOT_EXIST"
	CodeRelationNotAccepted  Code = "MENTORSHIP_RELATION_NOT_IN_ACCEPT_STATE"
	CodeUserNotInvolved      Code = "USER_NOT_INVOLVED_IN_THIS_MENTOR_RELATION"
	CodeTaskDoesNotExist     Code = "TASK_DOES_NOT_EXIST"
	CodeTaskAlreadyAchieved  Code = "TASK_WAS_ALREADY_ACHIEVED"

	// Tokens
	CodeTokenExpired Code = "TOKEN_HAS_EXPIRED"
	CodeTokenInvalid Code = "TOKEN_IS_INVALID"
	CodeTokenMissing Code = "AUTHORISATION_TOKEN_IS_MISSING"
	CodeTokenRevoked Code = "TOKEN_REVOKED"
)

var httpStatus = map[Code]int{
	CodeInternal:       http.StatusInternalServerError,
	CodeInvalidRequest: http.StatusBadRequest,

	CodeUserDoesNotExist:        http.StatusNotFound,
	CodeUsernameTaken:           http.StatusConflict,
	CodeWrongUsernameOrPassword: http.StatusUnauthorized,

	CodeMatchEitherMentorOrMentee: http.StatusBadRequest,
	CodeMentorIDSameAsMenteeID:    http.StatusBadRequest,
	CodeEndTimeBeforePresent:      http.StatusBadRequest,
	CodeMentorTimeGreaterThanMax:  http.StatusBadRequest,
	CodeMentorTimeLessThanMin:     http.StatusBadRequest,
	CodeMentorDoesNotExist:        http.StatusNotFound,
	CodeMentorNotAvailable:        http.StatusBadRequest,
	CodeMenteeDoesNotExist:        http.StatusNotFound,
	CodeMenteeNotAvailable:        http.StatusBadRequest,
	CodeMentorInRelation:          http.StatusBadRequest,
	CodeMenteeAlreadyInRelation:   http.StatusBadRequest,

	CodeRequestDoesNotExist:          http.StatusNotFound,
	CodeNotPendingStateRelation:      http.StatusBadRequest,
	CodeCantAcceptOwnRequest:         http.StatusBadRequest,
	CodeCantAcceptUninvolvedRelation: http.StatusBadRequest,
	CodeUserInvolvedInRelation:       http.StatusBadRequest,
	CodeCantRejectOwnRequest:         http.StatusBadRequest,
	CodeCantRejectUninvolvedRequest:  http.StatusBadRequest,
	CodeUnacceptedStateRelation:      http.StatusBadRequest,
	CodeCantCancelUninvolvedRelation: http.StatusBadRequest,
	CodeCantDeleteUninvolvedRequest:  http.StatusBadRequest,

	CodeRelationDoesNotExist: http.StatusNotFound,
	CodeRelationNotAccepted:  http.StatusBadRequest,
	CodeUserNotInvolved:      http.StatusUnauthorized,
	CodeTaskDoesNotExist:     http.StatusNotFound,
	CodeTaskAlreadyAchieved:  http.StatusBadRequest,

	CodeTokenExpired: http.StatusUnauthorized,
	CodeTokenInvalid: http.StatusUnauthorized,
	CodeTokenMissing: http.StatusUnauthorized,
	CodeTokenRevoked: http.StatusUnauthorized,
}

// HTTPStatus maps the code to the status returned to API clients. Unknown
// codes are treated as internal errors.
func (c Code) HTTPStatus() int {
	if s, ok := httpStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// MessageID is the i18n message id for the code.
func (c Code) MessageID() string {
	return string(c)
}

// Codes lists every known code. Used by catalog completeness tests.
func Codes() []Code {
	out := make([]Code, 0, len(httpStatus))
	for c := range httpStatus {
		out = append(out, c)
	}
	return out
}
