// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"net/http"

	"github.com/mentorlink/mentorlink/internal/auth"
	"github.com/mentorlink/mentorlink/internal/core"
)

type createTaskBody struct {
	Description string `json:"description"`
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "relation_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body createTaskBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := s.deps.Tasks.CreateTask(r.Context(), auth.UserIDFrom(r.Context()), id, body.Description); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, r, core.MsgTaskCreated)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "relation_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	tasks, err := s.deps.Tasks.ListTasks(r.Context(), auth.UserIDFrom(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	s.taskAction(w, r, s.deps.Tasks.DeleteTask, core.MsgTaskDeleted)
}

func (s *Server) completeTask(w http.ResponseWriter, r *http.Request) {
	s.taskAction(w, r, s.deps.Tasks.CompleteTask, core.MsgTaskAchieved)
}

func (s *Server) taskAction(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actorID, relationID, taskID int) error, ok core.Message) {
	relationID, err := pathInt(r, "relation_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	taskID, err := pathInt(r, "task_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := op(r.Context(), auth.UserIDFrom(r.Context()), relationID, taskID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, r, ok)
}
