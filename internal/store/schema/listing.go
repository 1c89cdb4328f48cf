package schema

import (
	"time"
)

// Listing represents the listings table - one row per listing, created active
// and deactivated exactly once by a sale or a cancellation. Whether a listing
// ended in a sale or a cancellation is recorded on the event stream, not here.
type Listing struct {
	// ID is the listing identifier, assigned sequentially starting at 1
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenContract is the registry contract the listed token belongs to
	TokenContract string `gorm:"column:token_contract;not null;type:text;index:idx_listings_token,priority:1"`
	// TokenID is the listed token's identifier within the contract
	TokenID uint64 `gorm:"column:token_id;not null;index:idx_listings_token,priority:2"`
	// Seller is the address that created the listing
	Seller string `gorm:"column:seller;not null;type:text;index"`
	// Price is the asking price in wei, stored as a decimal string
	Price string `gorm:"column:price;not null;type:text"`
	// FeeBPS is the marketplace fee in basis points, snapshotted at listing
	// time so later fee changes never affect an open listing
	FeeBPS uint32 `gorm:"column:fee_bps;not null"`
	// Active is true until the listing is sold or cancelled
	Active bool `gorm:"column:active;not null;default:true;index"`
	// CreatedAt is the listing creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last state change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
