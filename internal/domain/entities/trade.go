package entities

import (
	"errors"
	"strings"
)

var ErrUnknownTrade = errors.New("unknown trade")

// Trade identifies which takeoff calculator variant applies.
type Trade string

const (
	TradeSiding Trade = "siding"
	TradeStone  Trade = "stone"
)

func ParseTrade(raw string) (Trade, error) {
	switch t := Trade(strings.ToLower(strings.TrimSpace(raw))); t {
	case TradeSiding, TradeStone:
		return t, nil
	default:
		return "", ErrUnknownTrade
	}
}
