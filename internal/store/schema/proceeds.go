package schema

import (
	"time"
)

// ProceedsAccount represents the proceeds_accounts table - the pull-payment
// ledger of sale proceeds owed to sellers. Credited inside the purchase
// transaction and drained by withdrawal.
type ProceedsAccount struct {
	// Address is the seller's address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Balance is the withdrawable amount in wei, stored as a decimal string
	Balance string `gorm:"column:balance;not null;type:text;default:'0'"`
	// UpdatedAt is the timestamp of the last credit or withdrawal
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the ProceedsAccount model
func (ProceedsAccount) TableName() string {
	return "proceeds_accounts"
}
