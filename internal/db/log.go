// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/mentorlink/mentorlink/internal/logging"

var debugEnabled bool

// SetDebug enables or disables DB debug logging. Disabled by default.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

func dbLogf(format string, v ...any) {
	if debugEnabled {
		logging.Infof("[DB] "+format, v...)
	}
}
