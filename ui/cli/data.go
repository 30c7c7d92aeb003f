// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/mentorlink/mentorlink/internal/db"
	"github.com/mentorlink/mentorlink/internal/logging"
	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/spf13/cobra"
)

// writeCompressedBackup streams data as indented JSON through a zstd encoder.
func writeCompressedBackup(w io.Writer, data *model.BackupData) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	return zw.Close()
}

// readCompressedBackup decodes a zstd-compressed JSON backup.
func readCompressedBackup(r io.Reader) (*model.BackupData, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var data model.BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	return &data, nil
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: "Create a compressed (zstd) JSON backup of the database",
		Long: `Dumps users, relations, task lists and the audit log into a single
Zstandard-compressed JSON file. '.zst' is appended when missing. Without an
argument the file is named mentorlink-backup-YYYY-MM-DD.json.zst.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile := fmt.Sprintf("mentorlink-backup-%s.json.zst", time.Now().Format("2006-01-02"))
			if len(args) > 0 {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}

			data, err := db.Default().ExportDataForBackup(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not export data: %w", err)
			}
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("could not create file: %w", err)
			}
			if err := writeCompressedBackup(f, data); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s (%d users, %d relations)\n",
				outputFile, len(data.Users), len(data.Relations))
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "restore <backup-file.zst>",
		Short: "Restore the database from a compressed JSON backup",
		Long: `Replaces ALL data in the configured database with the contents of a backup
created by 'mentorlink backup'. This is destructive and cannot be undone.
You are asked to confirm unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open file: %w", err)
			}
			defer func() { _ = f.Close() }()
			data, err := readCompressedBackup(f)
			if err != nil {
				return err
			}

			if !force {
				answer := promptForConfirmation(cmd.OutOrStdout(), cmd.InOrStdin(),
					"This wipes all existing data before importing. Continue? (yes/no): ")
				if answer != "yes" && answer != "y" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Restore cancelled.")
					return nil
				}
			}

			if err := db.Default().ImportDataFromBackup(cmd.Context(), data); err != nil {
				return fmt.Errorf("could not import backup: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Restore completed successfully.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// migrateData copies every row from src into a freshly migrated target.
func migrateData(ctx context.Context, src *db.BunStore, targetType, targetDsn string) error {
	data, err := src.ExportDataForBackup(ctx)
	if err != nil {
		return fmt.Errorf("could not export source data: %w", err)
	}
	target, err := db.NewStoreFromDSN(targetType, targetDsn)
	if err != nil {
		return fmt.Errorf("could not open target database: %w", err)
	}
	defer func() { _ = target.Close() }()
	if err := target.ImportDataFromBackup(ctx, data); err != nil {
		return fmt.Errorf("could not import into target database: %w", err)
	}
	logging.Infof("migrated %d users and %d relations to %s", len(data.Users), len(data.Relations), targetType)
	return nil
}

func newMigrateCmd() *cobra.Command {
	var targetType, targetDsn string
	cmd := &cobra.Command{
		Use:   "migrate --target-type <db-type> --target-dsn <dsn>",
		Short: "Copy all data from the configured database into another one",
		Long: `Exports everything from the configured database, applies the schema to
the target database and performs a full, destructive import into it.

Example:
  mentorlink migrate --target-type postgres --target-dsn "postgres://mentorlink@localhost/mentorlink"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetType == "" || targetDsn == "" {
				return fmt.Errorf("--target-type and --target-dsn are required")
			}
			if err := migrateData(cmd.Context(), db.Default(), targetType, targetDsn); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Migration completed. Point database.type and database.dsn at the new database.")
			return nil
		},
	}
	cmd.Flags().StringVar(&targetType, "target-type", "", "Target database type (sqlite, postgres, mysql)")
	cmd.Flags().StringVar(&targetDsn, "target-dsn", "", "Target database DSN")
	return cmd
}

func newDBMaintainCmd() *cobra.Command {
	var skipIntegrity bool
	var timeoutSec int
	cmd := &cobra.Command{
		Use:   "db-maintain",
		Short: "Run database maintenance (VACUUM/OPTIMIZE) for the configured DB",
		Long:  `Runs engine-specific maintenance tasks (VACUUM, OPTIMIZE TABLE, PRAGMA optimize).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeoutSec > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
				defer cancel()
			}
			if skipIntegrity {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Skipping integrity_check may speed up maintenance on large databases")
			}
			if err := db.RunDBMaintenance(ctx, appConfig.Database.Type, appConfig.Database.Dsn, skipIntegrity); err != nil {
				return fmt.Errorf("maintenance failed: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Maintenance completed successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipIntegrity, "skip-integrity", false, "Skip integrity_check (SQLite) during maintenance")
	cmd.Flags().IntVar(&timeoutSec, "timeout", 0, "Timeout in seconds for maintenance (0 means no timeout)")
	return cmd
}
