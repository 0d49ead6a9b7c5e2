package lookup

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"contractor_takeoff/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var embeddedTables []byte

var ErrTradeNotConfigured = errors.New("trade not configured in lookup tables")

// Definition is an accessory or electrical box entry.
type Definition struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Unit string `json:"unit" yaml:"unit"`
}

// FastenerConstants drive the fastener consumption estimate.
type FastenerConstants struct {
	CoveragePerBox float64 `json:"coverage_per_box" yaml:"coverage_per_box"`
	PricePerBox    float64 `json:"price_per_box" yaml:"price_per_box"`
}

// TradeTable is the reference data of one trade.
type TradeTable struct {
	Trade               entities.Trade                 `json:"trade" yaml:"-"`
	Elevations          []entities.ElevationDefinition `json:"elevations" yaml:"elevations"`
	Accessories         []Definition                   `json:"accessories" yaml:"accessories"`
	ElectricalBoxes     []Definition                   `json:"electrical_boxes" yaml:"electrical_boxes"`
	DefaultInstallation string                         `json:"default_installation" yaml:"default_installation"`
	LaborRates          map[string]float64             `json:"labor_rates" yaml:"labor_rates"`
	Fasteners           FastenerConstants              `json:"fasteners" yaml:"fasteners"`
}

// LaborRate resolves the per-area labor rate of an installation type. An empty type
// falls back to the trade default.
func (t TradeTable) LaborRate(installationType string) (float64, bool) {
	if installationType == "" {
		installationType = t.DefaultInstallation
	}
	rate, ok := t.LaborRates[installationType]
	return rate, ok
}

// Tables holds every configured trade.
type Tables struct {
	Trades map[entities.Trade]TradeTable `yaml:"trades"`
}

func (t Tables) Trade(trade entities.Trade) (TradeTable, error) {
	tt, ok := t.Trades[trade]
	if !ok {
		return TradeTable{}, ErrTradeNotConfigured
	}
	return tt, nil
}

// Default returns the tables shipped with the binary.
func Default() (Tables, error) {
	return Parse(embeddedTables)
}

// Load reads tables from path, or the embedded defaults when path is empty.
func Load(path string) (Tables, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read lookup tables %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Tables, error) {
	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return Tables{}, fmt.Errorf("parse lookup tables: %w", err)
	}
	if len(tables.Trades) == 0 {
		return Tables{}, errors.New("lookup tables define no trades")
	}
	for trade, tt := range tables.Trades {
		if _, err := entities.ParseTrade(string(trade)); err != nil {
			return Tables{}, fmt.Errorf("lookup tables: %q: %w", trade, err)
		}
		if len(tt.Elevations) == 0 {
			return Tables{}, fmt.Errorf("lookup tables: %s defines no elevations", trade)
		}
		if tt.Fasteners.CoveragePerBox <= 0 {
			return Tables{}, fmt.Errorf("lookup tables: %s fastener coverage must be positive", trade)
		}
		tt.Trade = trade
		tables.Trades[trade] = tt
	}
	return tables, nil
}
