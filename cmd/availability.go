package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"poc-availability/core/config"
	"poc-availability/core/database"
	"poc-availability/core/logger"
	"poc-availability/feature/availability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	clientFlag int64
	pocFlag    int64
)

// availabilityCmd represents the availability command
var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Print the open appointment slots of a POC",
	Long:  `Reconciles the POC's upcoming slots with its weekly schedule and prints the availability report as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		pocID := pocFlag
		if pocID == 0 {
			pocID = cfg.Availability.DefaultPocID
		}
		if clientFlag <= 0 || pocID <= 0 {
			return fmt.Errorf("--client and --poc must be positive integers")
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		svc, err := availability.NewService(availability.NewGormRepository(db), cfg.Availability, logg)
		if err != nil {
			return err
		}

		report, err := svc.GetAvailability(cmd.Context(), pocID, clientFlag)
		if err != nil {
			return err
		}

		logg.Debug("Availability computed",
			zap.Int64("poc_id", pocID),
			zap.Int64("client_id", clientFlag),
			zap.Int("rows", len(report.AppointmentDetails)))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	RootCmd.AddCommand(availabilityCmd)
	availabilityCmd.Flags().Int64Var(&clientFlag, "client", 0, "Client ID")
	availabilityCmd.Flags().Int64Var(&pocFlag, "poc", 0, "POC ID (defaults to availability.default_poc_id)")
}
