package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	request "contractor_takeoff/internal/adapter/http/dto/request"
	response "contractor_takeoff/internal/adapter/http/dto/response"
	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/usecase"
	"contractor_takeoff/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

var inputFile string

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a takeoff from a JSON input file",
	Long: `Reads a takeoff payload (the same shape the API accepts) plus an optional
hardware_catalog list and prints the assembled takeoff as JSON.`,
	RunE: runCalc,
}

// calcInput is the file layout read by calc.
type calcInput struct {
	Takeoff         request.TakeoffRequest  `json:"takeoff"`
	HardwareCatalog []entities.HardwareItem `json:"hardware_catalog"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var in calcInput
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	tables, err := loadTables()
	if err != nil {
		return err
	}

	uc := usecase.NewTakeoffUseCase(nil, staticCatalog(in.HardwareCatalog), tables, logger)
	t, err := uc.Preview(context.Background(), in.Takeoff.ToCommand(""))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(response.FromTakeoff(t))
}

// staticCatalog serves the hardware catalog embedded in the input file.
type staticCatalog []entities.HardwareItem

var _ interfaces.IHardwareCatalogRepository = staticCatalog(nil)

func (s staticCatalog) ListByCategory(_ context.Context, category entities.Trade) ([]entities.HardwareItem, error) {
	out := make([]entities.HardwareItem, 0, len(s))
	for _, it := range s {
		if it.Category == "" || it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s staticCatalog) GetByID(_ context.Context, id string) (entities.HardwareItem, error) {
	for _, it := range s {
		if it.ID == id {
			return it, nil
		}
	}
	return entities.HardwareItem{}, nil
}

func (s staticCatalog) Create(context.Context, entities.HardwareItem) (entities.HardwareItem, error) {
	return entities.HardwareItem{}, fmt.Errorf("catalog is read-only in offline mode")
}
