// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package api exposes the mentorship services over HTTP with chi.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mentorlink/mentorlink/internal/auth"
	"github.com/mentorlink/mentorlink/internal/core"
	"github.com/mentorlink/mentorlink/internal/logging"
)

// Pinger reports backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Users       *core.UserService
	Mentorships *core.MentorshipService
	Tasks       *core.TaskService
	Issuer      *auth.Issuer
	Revoker     auth.Revoker
	Metrics     *Metrics
	// Health is checked by GET /health. Optional.
	Health Pinger
}

// Server implements the HTTP handlers.
type Server struct {
	deps Deps
}

// NewHandler builds the router for deps.
func NewHandler(deps Deps) http.Handler {
	if deps.Metrics == nil {
		deps.Metrics = NewMetrics()
	}
	s := &Server{deps: deps}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(deps.Metrics.Middleware)

	r.Get("/health", s.health)
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	r.Post("/login", s.login)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(deps.Issuer, deps.Revoker, writeError))

		r.Post("/logout", s.logout)

		r.Post("/mentorship_relation/send_request", s.sendRequest)
		r.Get("/mentorship_relations", s.listRelations)
		r.Get("/mentorship_relations/past", s.listPastRelations)
		r.Get("/mentorship_relations/current", s.listCurrentRelation)
		r.Get("/mentorship_relations/pending", s.listPendingRelations)

		r.Route("/mentorship_relation/{relation_id}", func(r chi.Router) {
			r.Put("/accept", s.acceptRequest)
			r.Put("/reject", s.rejectRequest)
			r.Put("/cancel", s.cancelRelation)
			r.Delete("/", s.deleteRequest)

			r.Post("/task", s.createTask)
			r.Get("/tasks", s.listTasks)
			r.Delete("/task/{task_id}", s.deleteTask)
			r.Put("/task/{task_id}/complete", s.completeTask)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: http.StatusText(http.StatusNotFound)})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, messageResponse{Message: http.StatusText(http.StatusMethodNotAllowed)})
	})
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.deps.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.deps.Health.Ping(ctx); err != nil {
			logging.Warnf("health check failed: %v", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger logs each request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.Debugf("%s %s -> %d (%s, req %s)", r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}
