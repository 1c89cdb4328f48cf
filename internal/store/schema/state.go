package schema

import (
	"time"
)

// MarketplaceState represents the marketplace_states table - a single row
// holding the current fee rate and the fee balance accrued from sales.
type MarketplaceState struct {
	// ID is always 1; the table holds exactly one row
	ID uint64 `gorm:"column:id;primaryKey"`
	// FeeBPS is the fee applied to new listings, in basis points
	FeeBPS uint32 `gorm:"column:fee_bps;not null"`
	// AccruedFees is the undrawn fee balance in wei, stored as a decimal string
	AccruedFees string `gorm:"column:accrued_fees;not null;type:text;default:'0'"`
	// UpdatedAt is the timestamp of the last fee change or withdrawal
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the MarketplaceState model
func (MarketplaceState) TableName() string {
	return "marketplace_states"
}
