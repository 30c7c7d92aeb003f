// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Mentorlink.
//
// Usage:
//
//	go run . serve
//	./mentorlink [command] [flags]
//
// See --help for the available commands.
package main

import (
	"os"

	"github.com/mentorlink/mentorlink/internal/logging"
	"github.com/mentorlink/mentorlink/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("mentorlink: %v", err)
		os.Exit(1)
	}
}
