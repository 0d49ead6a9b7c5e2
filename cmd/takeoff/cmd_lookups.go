package main

import (
	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/domain/lookup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var lookupTrade string

var lookupsCmd = &cobra.Command{
	Use:   "lookups",
	Short: "Print the lookup tables as YAML",
	RunE:  runLookups,
}

func runLookups(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	out := tables
	if lookupTrade != "" {
		trade, err := entities.ParseTrade(lookupTrade)
		if err != nil {
			return err
		}
		table, err := tables.Trade(trade)
		if err != nil {
			return err
		}
		out = lookup.Tables{Trades: map[entities.Trade]lookup.TradeTable{trade: table}}
	}
	logger.Debug("printing lookup tables", zap.Int("trades", len(out.Trades)))

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
