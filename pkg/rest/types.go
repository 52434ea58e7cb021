// Wire types of the /v1 API.
package rest

// HousingInput Raw housing attributes. Keys match the form field names.
type HousingInput struct {
	MedianIncome     *float64 `json:"median_income" validate:"required"`
	HousingMedianAge *float64 `json:"housing_median_age" validate:"required"`
	TotalRooms       *float64 `json:"total_rooms" validate:"required"`
	TotalBedrooms    *float64 `json:"total_bedrooms" validate:"required"`
	Population       *float64 `json:"population" validate:"required"`
	Households       *float64 `json:"households" validate:"required"`
	Latitude         *float64 `json:"latitude" validate:"required"`
	Longitude        *float64 `json:"longitude" validate:"required"`
	OceanProximity   string   `json:"ocean_proximity" validate:"required"`
}

// Estimate Scored result
type Estimate struct {
	ID             string    `json:"id"`
	Price          float64   `json:"price"`
	PriceFormatted string    `json:"priceFormatted"`
	CacheHit       bool      `json:"cacheHit"`
	Features       []Feature `json:"features"`
	Model          Model     `json:"model"`
}

// Feature One model input
type Feature struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Features Feature vector in model order
type Features struct {
	Features []Feature `json:"features"`
	Vector   []float64 `json:"vector"`
}

// Form Input schema for building a what-if form
type Form struct {
	Fields           []FormField `json:"fields"`
	OceanProximities []string    `json:"oceanProximities"`
	Defaults         Defaults    `json:"defaults"`
}

// FormField Numeric input with its accepted range
type FormField struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// Defaults Initial form state
type Defaults struct {
	Numeric        map[string]float64 `json:"numeric"`
	OceanProximity string             `json:"oceanProximity"`
}

// OceanProximities Ordered category labels
type OceanProximities struct {
	Items []string `json:"items"`
}

// Model Loaded scorer
type Model struct {
	Kind     string   `json:"kind"`
	Name     string   `json:"name"`
	Version  string   `json:"version,omitempty"`
	Features []string `json:"features,omitempty"`
	Trees    int      `json:"trees,omitempty"`
}

// Error Error model
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Human readable description
	Message string `json:"message"`

	// SupportID Trace id to quote when reporting the error
	SupportID string `json:"supportId"`
}

// ErrorCode Error code
type ErrorCode string
