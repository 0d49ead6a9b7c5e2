package entities

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSelection    = errors.New("invalid manufacturer selection")
	ErrManufacturerMissing = errors.New("manufacturer not selected")
	ErrProductLineMissing  = errors.New("product line not selected")
)

// ManufacturerSelection is the material chosen for a takeoff.
//
// Hierarchy: manufacturer -> product line -> color. A child selection is only valid
// while its parent is selected; changing a parent resets its children.
type ManufacturerSelection struct {
	ManufacturerID   string  `json:"manufacturer_id" dynamodbav:"manufacturer_id"`
	ManufacturerName string  `json:"manufacturer_name" dynamodbav:"manufacturer_name"`
	ProductLineID    string  `json:"product_line_id" dynamodbav:"product_line_id"`
	ProductLineName  string  `json:"product_line_name" dynamodbav:"product_line_name"`
	ColorID          string  `json:"color_id" dynamodbav:"color_id"`
	ColorName        string  `json:"color_name" dynamodbav:"color_name"`
	ColorHex         string  `json:"color_hex" dynamodbav:"color_hex"`
	PricePerUnit     float64 `json:"price_per_unit" dynamodbav:"price_per_unit"`
	Unit             string  `json:"unit" dynamodbav:"unit"`
}

func (s *ManufacturerSelection) SelectManufacturer(id, name string) {
	id = strings.TrimSpace(id)
	if id != s.ManufacturerID {
		s.clearProductLine()
	}
	s.ManufacturerID = id
	s.ManufacturerName = strings.TrimSpace(name)
}

func (s *ManufacturerSelection) SelectProductLine(id, name string, pricePerUnit float64, unit string) error {
	if s.ManufacturerID == "" {
		return ErrManufacturerMissing
	}
	id = strings.TrimSpace(id)
	if id != s.ProductLineID {
		s.clearColor()
	}
	if pricePerUnit < 0 {
		pricePerUnit = 0
	}
	s.ProductLineID = id
	s.ProductLineName = strings.TrimSpace(name)
	s.PricePerUnit = pricePerUnit
	s.Unit = strings.TrimSpace(unit)
	return nil
}

func (s *ManufacturerSelection) SelectColor(id, name, hex string) error {
	if s.ManufacturerID == "" || s.ProductLineID == "" {
		return ErrProductLineMissing
	}
	s.ColorID = strings.TrimSpace(id)
	s.ColorName = strings.TrimSpace(name)
	s.ColorHex = strings.TrimSpace(hex)
	return nil
}

// HasProduct reports whether enough is selected to price the takeoff.
func (s ManufacturerSelection) HasProduct() bool {
	return s.ManufacturerID != "" && s.ProductLineID != ""
}

// Validate checks the parent/child consistency of a selection received as a whole.
func (s ManufacturerSelection) Validate() error {
	if s.ProductLineID != "" && s.ManufacturerID == "" {
		return ErrInvalidSelection
	}
	if s.ColorID != "" && s.ProductLineID == "" {
		return ErrInvalidSelection
	}
	if s.PricePerUnit < 0 {
		return ErrInvalidSelection
	}
	return nil
}

// IsAreaUnit reports whether the product is priced per area, the unit the
// aggregator produces.
func (s ManufacturerSelection) IsAreaUnit() bool {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s.Unit), " ", "")) {
	case "", "sqft", "sq.ft", "sq.ft.", "ft2", "squarefoot", "squarefeet":
		return true
	}
	return false
}

func (s *ManufacturerSelection) clearProductLine() {
	s.ProductLineID = ""
	s.ProductLineName = ""
	s.PricePerUnit = 0
	s.Unit = ""
	s.clearColor()
}

func (s *ManufacturerSelection) clearColor() {
	s.ColorID = ""
	s.ColorName = ""
	s.ColorHex = ""
}
