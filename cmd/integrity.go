package cmd

import (
	"context"
	"fmt"

	"poc-availability/core/config"
	"poc-availability/core/database"
	"poc-availability/core/logger"
	"poc-availability/core/storage"
	"poc-availability/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the database schema and snapshot storage",
	Long:  `Checks that the scheduling tables match the expected columns and that the snapshot bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the scheduling database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the snapshot bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
}

func runIntegrityChecks(ctx context.Context, runSchema, runStorage bool) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	var store storage.Client
	if runStorage {
		if store, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	var db *gorm.DB
	if runSchema {
		if db, err = database.Connect(cfg.Database); err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
	}

	svc := integrity.NewService(db, store, cfg.Storage, cfg.Snapshot.Prefix, logg)

	if runSchema {
		logg.Info("Checking scheduling schema...", zap.String("database", cfg.Database.Name))
		report, err := svc.CheckSchema(ctx)
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		if report.Matched {
			logg.Info("Schema matches expected definition.", zap.String("driver", report.Driver))
		} else {
			logg.Warn("Schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status != "ok" {
					if len(tblReport.MissingColumns) > 0 {
						logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
					}
					if len(tblReport.TypeMismatches) > 0 {
						logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
					}
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runStorage {
		logg.Info("Checking snapshot storage...", zap.String("bucket", cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}

		if report.Exists {
			logg.Info("Snapshot bucket is present.", zap.Int("snapshots", report.Snapshots))
		} else if fixFlag {
			logg.Info("Creating snapshot bucket...")
			if err := svc.FixStorage(ctx); err != nil {
				return fmt.Errorf("failed to create bucket: %w", err)
			}
			logg.Info("Snapshot bucket created.")
		} else {
			logg.Warn("Snapshot bucket missing", zap.String("bucket", report.Bucket))
			logg.Info("Run 'integrity storage --fix' to create it.")
		}
	}

	return nil
}
