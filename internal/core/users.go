// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/mentorlink/mentorlink/internal/db"
	"github.com/mentorlink/mentorlink/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// Registration describes a new user.
type Registration struct {
	Name              string
	Username          string
	Email             string
	Password          string
	AvailableToMentor bool
	NeedMentoring     bool
}

// UserService registers and authenticates users.
type UserService struct {
	store Store
	opts  options
	cost  int
}

// NewUserService returns a service backed by store.
func NewUserService(store Store, opts ...Option) *UserService {
	return &UserService{store: store, opts: buildOptions(opts), cost: bcrypt.DefaultCost}
}

// SetHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (s *UserService) SetHashCost(cost int) { s.cost = cost }

// Register validates r, hashes the password and stores the user.
func (s *UserService) Register(ctx context.Context, r Registration) (*model.User, error) {
	r.Username = strings.TrimSpace(r.Username)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.Username == "" || r.Name == "" {
		return nil, apperrors.New(apperrors.CodeInvalidRequest, "name and username are required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidRequest, "invalid email address", err)
	}
	if len(r.Password) < MinPasswordLength {
		return nil, apperrors.New(apperrors.CodeInvalidRequest, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.cost)
	if err != nil {
		return nil, internal("hash password", err)
	}
	u, err := s.store.AddUser(ctx, model.User{
		Name:              r.Name,
		Username:          r.Username,
		Email:             r.Email,
		PasswordHash:      string(hash),
		AvailableToMentor: r.AvailableToMentor,
		NeedMentoring:     r.NeedMentoring,
		RegisteredAt:      now(s.opts.clock),
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.CodeUsernameTaken, "username or email already registered", err)
		}
		return nil, internal("add user", err)
	}
	writeAudit(ctx, s.store, u.ID, ActionRegisterUser, u.Username)
	return &u, nil
}

// Authenticate checks username and password. Unknown users and wrong
// passwords produce the same error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, internal("load user", err)
	}
	if u == nil {
		return nil, apperrors.E(apperrors.CodeWrongUsernameOrPassword)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.E(apperrors.CodeWrongUsernameOrPassword)
	}
	return u, nil
}

// Get returns the user with id.
func (s *UserService) Get(ctx context.Context, id int) (*model.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, internal("load user", err)
	}
	if u == nil {
		return nil, apperrors.E(apperrors.CodeUserDoesNotExist)
	}
	return u, nil
}

// List returns all users ordered by username.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, internal("list users", err)
	}
	return users, nil
}

// SetAvailability updates whether a user mentors and whether they seek a
// mentor.
func (s *UserService) SetAvailability(ctx context.Context, id int, availableToMentor, needMentoring bool) error {
	ok, err := s.store.UpdateUserAvailability(ctx, id, availableToMentor, needMentoring)
	if err != nil {
		return internal("update availability", err)
	}
	if !ok {
		return apperrors.E(apperrors.CodeUserDoesNotExist)
	}
	writeAudit(ctx, s.store, id, ActionSetAvailability, fmt.Sprintf("mentor=%t mentee=%t", availableToMentor, needMentoring))
	return nil
}
