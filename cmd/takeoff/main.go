package main

import (
	"fmt"
	"os"

	"contractor_takeoff/internal/domain/lookup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	tablesFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "takeoff",
	Short: "Offline contractor takeoff calculator",
	Long: `takeoff runs the siding and stone takeoff engine locally.

It aggregates elevation measurements, prices material and labor, estimates
fasteners and derives hardware quantities without touching DynamoDB.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&tablesFile, "tables", "", "Lookup tables YAML (default: embedded tables)")

	calcCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Takeoff input JSON (required)")
	_ = calcCmd.MarkFlagRequired("file")
	lookupsCmd.Flags().StringVarP(&lookupTrade, "trade", "t", "", "Trade to print (siding, stone); all trades when empty")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(lookupsCmd)
}

func loadTables() (lookup.Tables, error) {
	if tablesFile == "" {
		tablesFile = os.Getenv("LOOKUP_TABLES_FILE")
	}
	return lookup.Load(tablesFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
