// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

// Message is a success message key, rendered through the i18n catalog.
type Message string

const (
	MsgRelationSent      Message = "MENTORSHIP_RELATION_WAS_SENT_SUCCESSFULLY"
	MsgRelationAccepted  Message = "MENTORSHIP_RELATION_WAS_ACCEPTED_SUCCESSFULLY"
	MsgRelationRejected  Message = "MENTORSHIP_RELATION_WAS_REJECTED_SUCCESSFULLY"
	MsgRelationCancelled Message = "MENTORSHIP_RELATION_WAS_CANCELLED_SUCCESSFULLY"
	MsgRelationDeleted   Message = "MENTORSHIP_RELATION_WAS_DELETED_SUCCESSFULLY"
	MsgNotInRelation     Message = "NOT_IN_MENTORED_RELATION_CURRENTLY"
	MsgTaskCreated       Message = "TASK_WAS_CREATED_SUCCESSFULLY"
	MsgTaskDeleted       Message = "TASK_WAS_DELETED_SUCCESSFULLY"
	MsgTaskAchieved      Message = "TASK_WAS_ACHIEVED_SUCCESSFULLY"
	MsgLogoutSuccessful  Message = "LOGOUT_SUCCESSFUL"
)

// Messages lists every success message key.
func Messages() []Message {
	return []Message{
		MsgRelationSent, MsgRelationAccepted, MsgRelationRejected, MsgRelationCancelled,
		MsgRelationDeleted, MsgNotInRelation, MsgTaskCreated, MsgTaskDeleted,
		MsgTaskAchieved, MsgLogoutSuccessful,
	}
}

// Audit actions.
const (
	ActionSendRequest      = "SEND_REQUEST"
	ActionAcceptRequest    = "ACCEPT_REQUEST"
	ActionRejectRequest    = "REJECT_REQUEST"
	ActionCancelRelation   = "CANCEL_RELATION"
	ActionDeleteRequest    = "DELETE_REQUEST"
	ActionCompleteRelation = "COMPLETE_RELATION"
	ActionCreateTask       = "CREATE_TASK"
	ActionDeleteTask       = "DELETE_TASK"
	ActionCompleteTask     = "COMPLETE_TASK"
	ActionRegisterUser     = "REGISTER_USER"
	ActionSetAvailability  = "SET_AVAILABILITY"
)
