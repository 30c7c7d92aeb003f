// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db is the data-access layer for Mentorlink.
//
// A single bun-backed BunStore serves SQLite, PostgreSQL and MySQL. Schema
// changes live in embedded, per-engine migrations/<type>/NNN_name.up.sql files
// and are tracked in the schema_migrations table.
//
// Conventions
//   - Lookups by primary key return (nil, nil) when the row does not exist;
//     callers decide which domain error that becomes.
//   - Unique violations surface as ErrDuplicate (see MapDBError).
//   - Times are stored in UTC.
//
// Testing notes
//   - Use a per-test shared in-memory SQLite DSN such as
//     "file:<test name>?mode=memory&cache=shared" to get real migrations
//     without touching disk.
//   - MySQL DSNs need parseTime=true so DATETIME columns scan into time.Time.
package db
