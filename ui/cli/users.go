// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mentorlink/mentorlink/internal/core"
	"github.com/mentorlink/mentorlink/internal/db"
	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword prompts on a terminal without echo and falls back to reading
// one line from the command's stdin.
func readPassword(cmd *cobra.Command) (string, error) {
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("could not read password: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users (add, list, availability)",
	}
	cmd.AddCommand(newUserAddCmd(), newUserListCmd(), newUserAvailabilityCmd())
	return cmd
}

func newUserAddCmd() *cobra.Command {
	var reg core.Registration
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Register a new user",
		Long: `Registers a user. The password is read from --password, from a terminal
prompt, or from the first line of stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg.Username = args[0]
			if reg.Name == "" {
				reg.Name = reg.Username
			}
			if reg.Password == "" {
				pw, err := readPassword(cmd)
				if err != nil {
					return err
				}
				reg.Password = pw
			}
			u, err := core.NewUserService(db.Default()).Register(cmd.Context(), reg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created user %s with id %d\n", u.Username, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.Name, "name", "", "Display name (defaults to the username)")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Email address")
	cmd.Flags().StringVarP(&reg.Password, "password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().BoolVar(&reg.AvailableToMentor, "mentor", false, "User is available to mentor")
	cmd.Flags().BoolVar(&reg.NeedMentoring, "mentee", false, "User needs mentoring")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := core.NewUserService(db.Default()).List(cmd.Context())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}
			renderUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}
}

func newUserAvailabilityCmd() *cobra.Command {
	var mentor, mentee bool
	cmd := &cobra.Command{
		Use:   "availability <user-id>",
		Short: "Set whether a user can mentor and/or wants mentoring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			svc := core.NewUserService(db.Default())
			u, err := svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("mentor") {
				mentor = u.AvailableToMentor
			}
			if !cmd.Flags().Changed("mentee") {
				mentee = u.NeedMentoring
			}
			if err := svc.SetAvailability(cmd.Context(), id, mentor, mentee); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "User %d: mentor=%s mentee=%s\n", id, yesNo(mentor), yesNo(mentee))
			return nil
		},
	}
	cmd.Flags().BoolVar(&mentor, "mentor", false, "Available to mentor")
	cmd.Flags().BoolVar(&mentee, "mentee", false, "Needs mentoring")
	return cmd
}

func newRelationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relations",
		Short: "Inspect mentorship relations",
	}
	var stateName string
	var userID int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List mentorship relations, optionally by user and state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var state model.RelationState
			if stateName != "" {
				st, err := model.ParseRelationState(stateName)
				if err != nil {
					return err
				}
				state = st
			}

			st := db.Default()
			var rels []model.MentorshipRelation
			switch {
			case userID > 0:
				r, err := st.ListRelationsForUser(cmd.Context(), userID, state)
				if err != nil {
					return err
				}
				rels = r
			case state != "":
				r, err := st.ListRelationsByState(cmd.Context(), state)
				if err != nil {
					return err
				}
				rels = r
			default:
				for _, s := range model.RelationStates {
					r, err := st.ListRelationsByState(cmd.Context(), s)
					if err != nil {
						return err
					}
					rels = append(rels, r...)
				}
			}

			if len(rels) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No relations found.")
				return nil
			}
			renderRelations(cmd.OutOrStdout(), rels)
			return nil
		},
	}
	listCmd.Flags().StringVar(&stateName, "state", "", "Only relations in this state (pending, accepted, rejected, cancelled, completed)")
	listCmd.Flags().IntVar(&userID, "user", 0, "Only relations this user takes part in")
	cmd.AddCommand(listCmd)
	return cmd
}

func newAuditCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the most recent audit log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := db.Default().GetAllAuditLogEntries(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No audit log entries.")
				return nil
			}
			renderAudit(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of entries (0 for all)")
	return cmd
}
