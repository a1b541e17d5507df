package models

import (
	"time"

	"gorm.io/gorm"
)

// PreservativeLevel is the coarse additive-content classification of a product.
type PreservativeLevel string

const (
	PreservativesNone   PreservativeLevel = "none"
	PreservativesLow    PreservativeLevel = "low"
	PreservativesMedium PreservativeLevel = "medium"
	PreservativesHigh   PreservativeLevel = "high"
)

func (p PreservativeLevel) Valid() bool {
	switch p {
	case PreservativesNone, PreservativesLow, PreservativesMedium, PreservativesHigh:
		return true
	}
	return false
}

// ProductCategory is informational only; no evaluator reads it.
type ProductCategory string

const (
	CategoryHealthy   ProductCategory = "healthy"
	CategoryUnhealthy ProductCategory = "unhealthy"
)

// Product is a resolved scan: the catalog or synthesized record bound to a
// scan session. Immutable once analyzed — analysis derives new values, it
// never writes back into the base facts.
type Product struct {
	Barcode       string            `json:"barcode"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand"`
	Ingredients   string            `json:"ingredients"`
	ExpiryDate    time.Time         `json:"expiryDate"`
	Calories      float64           `json:"calories"` // kcal per nominal serving
	Sugar         float64           `json:"sugar"`    // g
	Fat           float64           `json:"fat"`      // g
	Salt          float64           `json:"salt"`     // g
	Preservatives PreservativeLevel `json:"preservatives"`
	Category      ProductCategory   `json:"category"`
	ScanID        string            `json:"scanId"`
	ScannedAt     time.Time         `json:"scannedAt"`
}

// CatalogProduct is a known-barcode catalog row. Expiry is stored as a plain
// YYYY-MM-DD string (catalog feeds arrive that way) and is normalized to a
// time.Time during lookup.
type CatalogProduct struct {
	gorm.Model
	Barcode       string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name          string `gorm:"not null"`
	Brand         string
	Ingredients   string
	ExpiryDate    string `gorm:"type:varchar(10);not null"`
	Calories      float64
	Sugar         float64
	Fat           float64
	Salt          float64
	Preservatives PreservativeLevel `gorm:"type:varchar(10)"`
	Category      ProductCategory   `gorm:"type:varchar(10)"`
}
