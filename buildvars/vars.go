// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version, Commit and Date are set at link time via
// `-ldflags -X github.com/mentorlink/mentorlink/buildvars.Version=...`.
// They are empty for local or development builds.
var (
	Version string
	Commit  string
	Date    string
)

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}

// Composite renders version, commit and build date into a single line such as
// "1.2.0 (abc123) built: 2026-01-01T00:00:00Z".
func Composite() string {
	out := VersionOrDefault("dev")
	if Commit != "" && Commit != "dev" {
		out += " (" + Commit + ")"
	}
	if Date != "" {
		out += " built: " + Date
	}
	return out
}
