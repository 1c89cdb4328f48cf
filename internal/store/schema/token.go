package schema

import (
	"time"
)

// Token represents the tokens table - one row per minted token, with sequential
// IDs starting at 1
type Token struct {
	// ID is the token identifier, assigned sequentially at mint
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Contract is the registry contract address the token belongs to (EIP-55 checksummed)
	Contract string `gorm:"column:contract;not null;type:text;index:idx_tokens_contract_owner,priority:1"`
	// Owner is the current owner's address, updated on every transfer
	Owner string `gorm:"column:owner;not null;type:text;index:idx_tokens_contract_owner,priority:2"`
	// Creator is the minter's address, immutable after mint
	Creator string `gorm:"column:creator;not null;type:text"`
	// TokenURI points at the off-chain metadata document
	TokenURI string `gorm:"column:token_uri;not null;type:text"`
	// Rarity is free-text set once at mint, stored as given
	Rarity string `gorm:"column:rarity;not null;type:text"`
	// CreatedAt is the mint timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last ownership change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
