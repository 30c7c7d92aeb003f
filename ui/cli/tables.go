// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mentorlink/mentorlink/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	_, _ = fmt.Fprintln(w, t.Render())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func renderUsers(w io.Writer, users []model.User) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.Username, u.Name, u.Email,
			yesNo(u.AvailableToMentor), yesNo(u.NeedMentoring),
		})
	}
	renderTable(w, []string{"ID", "USERNAME", "NAME", "EMAIL", "MENTOR", "MENTEE"}, rows)
}

func renderRelations(w io.Writer, rels []model.MentorshipRelation) {
	rows := make([][]string, 0, len(rels))
	for _, r := range rels {
		rows = append(rows, []string{
			strconv.Itoa(r.ID), string(r.State),
			strconv.Itoa(r.MentorID), strconv.Itoa(r.MenteeID), strconv.Itoa(r.ActionUserID),
			formatTime(r.CreationDate), formatTime(r.AcceptDate), formatTime(r.EndDate),
		})
	}
	renderTable(w, []string{"ID", "STATE", "MENTOR", "MENTEE", "SENT BY", "CREATED", "ACCEPTED", "ENDS"}, rows)
}

func renderAudit(w io.Writer, entries []model.AuditLogEntry) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			formatTime(e.Timestamp), strconv.Itoa(e.UserID), e.Action, e.Details,
		})
	}
	renderTable(w, []string{"TIME", "USER", "ACTION", "DETAILS"}, rows)
}
