// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the Mentorlink command-line interface using cobra.
// Commands stay thin: they load configuration, open the store and delegate
// to the services in internal/core, internal/api and internal/db.
package cli
