package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"housing_price/internal/domain/value"
)

// Estimate is the scored result of one HousingInput.
type Estimate struct {
	ID       uuid.UUID
	Input    HousingInput
	Features value.FeatureVector
	// Price is the model output rounded to cents, in training-time units (USD).
	Price          decimal.Decimal
	PriceFormatted string
	Model          ModelInfo
	CacheHit       bool
}

// ModelInfo describes the loaded scoring artifact.
type ModelInfo struct {
	Kind     string
	Name     string
	Version  string
	Features []string
	Trees    int
	Source   string
}
