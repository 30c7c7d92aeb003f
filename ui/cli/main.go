// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Mentorlink using cobra. It
// defines the root command, the shared bootstrap (config, logging, i18n and
// database) and the version helpers.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/mentorlink/mentorlink/buildvars"
	"github.com/mentorlink/mentorlink/internal/config"
	"github.com/mentorlink/mentorlink/internal/db"
	"github.com/mentorlink/mentorlink/internal/i18n"
	"github.com/mentorlink/mentorlink/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const modulePath = "github.com/mentorlink/mentorlink"

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// setupDefaultServices loads configuration and opens the database. It runs
// before every subcommand.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, running on defaults (see 'mentorlink config init')")
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	level := appConfig.Log.Level
	if verbose {
		level = "debug"
	}
	logging.Configure(level, cmd.ErrOrStderr())
	db.SetDebug(verbose)
	i18n.Init(appConfig.Language)

	// Reuse the open store when it already points at the configured database.
	if s := db.Default(); s != nil && s.Type() == appConfig.Database.Type && s.DSN() == appConfig.Database.Dsn {
		return nil
	}
	if _, err := db.New(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Tests create one per case.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mentorlink",
		Short: "Mentorlink matches mentors with mentees.",
		Long: `Mentorlink tracks mentorship requests between users, the lifecycle of
accepted relations and the task list each relation works through.

Run 'mentorlink serve' to start the HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), compositeVersion(nil))
				os.Exit(0)
			}
			// version and config init must work without a database.
			if cmd.Annotations["skipBootstrap"] == "true" {
				return nil
			}
			return setupDefaultServices(cmd, args)
		},
	}
	cmd.Version = compositeVersion(nil)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logs including SQL)")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Message language ("en", "de")`)
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "./mentorlink.db", "Database connection string (DSN)")

	cmd.AddCommand(
		newServeCmd(),
		newUserCmd(),
		newRelationsCmd(),
		newAuditCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newMigrateCmd(),
		newDBMaintainCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version",
		Annotations: map[string]string{"skipBootstrap": "true"},
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	var system bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a configuration file with the current settings",
		Annotations: map[string]string{"skipBootstrap": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), nil)
			if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
				return err
			}
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			if err := config.WriteConfigFileTo(&c, path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user one")
	cmd.AddCommand(initCmd)
	return cmd
}

// compositeVersion renders "version (commit) built: date".
func compositeVersion(info *debug.BuildInfo) string {
	v, c, d := resolveBuildVersion(info)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date. Link-time values in buildvars win; runtime build info fills the gaps.
// A nil info reads build info from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	versionOut = buildvars.VersionOrDefault("dev")
	commitOut = buildvars.Commit
	if commitOut == "" {
		commitOut = "dev"
	}
	dateOut = buildvars.Date

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info != nil {
		if versionOut == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			versionOut = info.Main.Version
		}
		if versionOut == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					versionOut = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && commitOut == "dev" {
					commitOut = s.Value
				}
			case "vcs.time":
				if s.Value != "" && dateOut == "" {
					dateOut = s.Value
				}
			}
		}
	}

	if versionOut == "dev" && commitOut != "dev" {
		versionOut = commitOut
	}
	return versionOut, commitOut, dateOut
}

// promptForConfirmation displays a prompt and reads one line from in.
func promptForConfirmation(out io.Writer, in io.Reader, prompt string) string {
	_, _ = fmt.Fprint(out, prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(strings.ToLower(answer))
}
