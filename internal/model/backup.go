// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// BackupSchemaVersion is written into every export.
const BackupSchemaVersion = 1

// BackupData is a container for all data to be exported for a backup.
type BackupData struct {
	// SchemaVersion helps in handling migrations during restore.
	SchemaVersion int `json:"schema_version"`

	Users           []BackupUser         `json:"users"`
	Relations       []MentorshipRelation `json:"relations"`
	TasksLists      []BackupTasksList    `json:"tasks_lists"`
	AuditLogEntries []AuditLogEntry      `json:"audit_log_entries"`
}

// BackupUser includes the password hash, which User hides from JSON.
type BackupUser struct {
	User
	PasswordHash string `json:"password_hash"`
}

// BackupTasksList is a task list with its tasks inlined.
type BackupTasksList struct {
	ID         int    `json:"id"`
	NextTaskID int    `json:"next_task_id"`
	Tasks      []Task `json:"tasks"`
}
