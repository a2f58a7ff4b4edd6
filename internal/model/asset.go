package model

import (
	"fmt"
	"time"
)

// AssetCategory groups assets for net-worth reporting.
type AssetCategory string

const (
	AssetRealEstate AssetCategory = "real_estate"
	AssetVehicle    AssetCategory = "vehicle"
	AssetSavings    AssetCategory = "savings"
	AssetInvestment AssetCategory = "investment"
	AssetOther      AssetCategory = "other_asset"
)

// Valid reports whether the asset category is a known value.
func (c AssetCategory) Valid() bool {
	switch c {
	case AssetRealEstate, AssetVehicle, AssetSavings, AssetInvestment, AssetOther:
		return true
	}
	return false
}

// Asset is something owned, valued in whole currency units. CurrentValue
// feeds the net-worth computation; PurchaseValue is kept for display.
type Asset struct {
	PurchaseDate  time.Time
	CreatedAt     time.Time
	ID            string
	Name          string
	Description   string
	Memo          string
	Category      AssetCategory
	PurchaseValue int64
	CurrentValue  int64
}

// Validate checks the invariants the entry layer must guarantee before an
// asset reaches the store.
func (a *Asset) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidAsset)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidAsset)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidAsset, a.Category)
	}
	if a.CurrentValue < 0 {
		return fmt.Errorf("%w: current value must not be negative, got %d", ErrInvalidAsset, a.CurrentValue)
	}
	if a.PurchaseValue < 0 {
		return fmt.Errorf("%w: purchase value must not be negative, got %d", ErrInvalidAsset, a.PurchaseValue)
	}
	return nil
}
