package schema

import (
	"time"
)

// OperatorApproval represents the operator_approvals table - a row per
// (owner, operator) pair the owner has granted blanket transfer rights to.
// Mirrors ERC-721 setApprovalForAll semantics.
type OperatorApproval struct {
	// Owner is the granting address
	Owner string `gorm:"column:owner;not null;type:text;primaryKey"`
	// Operator is the address allowed to move any of the owner's tokens
	Operator string `gorm:"column:operator;not null;type:text;primaryKey"`
	// Approved is the current grant state; revocations flip it to false
	// rather than deleting the row
	Approved bool `gorm:"column:approved;not null;default:false"`
	// UpdatedAt is the timestamp of the last grant or revocation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the OperatorApproval model
func (OperatorApproval) TableName() string {
	return "operator_approvals"
}
