package cmd

import (
	"fmt"

	"poc-availability/core/config"
	"poc-availability/core/database"
	"poc-availability/core/logger"
	"poc-availability/core/storage"
	"poc-availability/feature/availability"
	"poc-availability/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	snapClientFlag int64
	snapPocFlag    int64
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export availability reports to object storage",
	Long: `Exports availability reports as JSON objects to the configured bucket.
Without --client/--poc every target in snapshot.targets is exported, then pruned to snapshot.keep.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, logg, err := newSnapshotService()
		if err != nil {
			return err
		}

		if snapClientFlag > 0 || snapPocFlag > 0 {
			if snapClientFlag <= 0 || snapPocFlag <= 0 {
				return fmt.Errorf("--client and --poc must be given together")
			}
			t := snapshot.Target{PocID: snapPocFlag, ClientID: snapClientFlag}
			name, err := svc.Export(ctx, t)
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		}

		if len(svc.Targets()) == 0 {
			return fmt.Errorf("no snapshot targets configured (snapshot.targets)")
		}

		names, err := svc.ExportAll(ctx)
		for _, name := range names {
			fmt.Println(name)
		}
		if err != nil {
			return err
		}

		for _, t := range svc.Targets() {
			removed, err := svc.Prune(ctx, t)
			if err != nil {
				logg.Warn("Snapshot prune failed", zap.String("target", t.String()), zap.Error(err))
				continue
			}
			logg.Info("Snapshots pruned", zap.String("target", t.String()), zap.Int("removed", removed))
		}
		return nil
	},
}

// snapshotLatestCmd represents the snapshot latest command
var snapshotLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the newest stored snapshot of a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		if snapClientFlag <= 0 || snapPocFlag <= 0 {
			return fmt.Errorf("--client and --poc are required")
		}

		svc, _, err := newSnapshotService()
		if err != nil {
			return err
		}

		snap, err := svc.Latest(cmd.Context(), snapshot.Target{PocID: snapPocFlag, ClientID: snapClientFlag})
		if err != nil {
			return err
		}
		fmt.Printf("Generated: %s\n", snap.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("Client: %s\nPOC: %s (%s)\n", snap.Report.ClientName, snap.Report.PocName, snap.Report.PocSpecialization)
		for _, d := range snap.Report.AppointmentDetails {
			fmt.Printf("%3d  %s  %-9s  %s  %d/%d\n", d.SNo, d.Date, d.Day, d.Time, d.NoOfAppointments, d.TotalSlots)
		}
		return nil
	},
}

func newSnapshotService() (*snapshot.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection required: %w", err)
	}

	avail, err := availability.NewService(availability.NewGormRepository(db), cfg.Availability, logg)
	if err != nil {
		return nil, nil, err
	}

	svc, err := snapshot.NewService(avail, client, cfg.Storage, cfg.Snapshot, logg)
	if err != nil {
		return nil, nil, err
	}
	return svc, logg, nil
}

func init() {
	RootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotLatestCmd)

	snapshotCmd.PersistentFlags().Int64Var(&snapClientFlag, "client", 0, "Client ID")
	snapshotCmd.PersistentFlags().Int64Var(&snapPocFlag, "poc", 0, "POC ID")
}
