// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import "time"

// Clock provides an abstraction over time.Now for testability.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// FixedClock always returns the same instant. Tests may advance it by
// assigning a new value.
type FixedClock struct{ T time.Time }

func (c *FixedClock) Now() time.Time { return c.T }

// now returns c's time in UTC at second precision, matching what the
// storage layer round-trips on every engine.
func now(c Clock) time.Time {
	return c.Now().UTC().Truncate(time.Second)
}
