// Package calculator is the takeoff engine: elevation aggregation, pricing and
// hardware quantities. Every operation is a pure function of its input; the
// engine performs no I/O and holds only read-only lookup data.
package calculator

import (
	"contractor_takeoff/internal/domain/lookup"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Engine runs the calculators of one trade.
type Engine struct {
	table  lookup.TradeTable
	logger *zap.Logger
}

func NewEngine(table lookup.TradeTable, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{table: table, logger: logger.Named("calculator")}
}

func (e *Engine) Table() lookup.TradeTable {
	return e.table
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
