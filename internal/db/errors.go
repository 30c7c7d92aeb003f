// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when attempting to insert a record that already exists.
var ErrDuplicate = errors.New("duplicate record")

// MapDBError maps driver-level unique violations to ErrDuplicate. The match
// is string-based so this file does not depend on driver error types.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry (1062), Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
