package domain

import "time"

// EventType identifies a marketplace ledger event
type EventType string

const (
	EventTypeListingCreated   EventType = "listing_created"
	EventTypeListingSold      EventType = "listing_sold"
	EventTypeListingCancelled EventType = "listing_cancelled"
	EventTypeFeeUpdated       EventType = "fee_updated"
	EventTypeFeesWithdrawn    EventType = "fees_withdrawn"
	EventTypeTokenMinted      EventType = "token_minted"
	EventTypeTokenTransferred EventType = "token_transferred"
)

// MarketplaceEvent is the normalized event published to NATS after every
// committed state change. Front ends and indexers reconstruct listing history
// from this stream; in particular, sold vs cancelled is only visible here,
// never in the listing table itself.
type MarketplaceEvent struct {
	ID        string    `json:"id"` // ULID, time-ordered
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	// Listing lifecycle fields
	ListingID     uint64 `json:"listing_id,omitempty"`
	TokenContract string `json:"token_contract,omitempty"`
	TokenID       uint64 `json:"token_id,omitempty"`
	Seller        string `json:"seller,omitempty"`
	Buyer         string `json:"buyer,omitempty"`
	Price         string `json:"price,omitempty"` // wei

	// Fee administration fields
	OldFeeBPS uint32 `json:"old_fee_bps,omitempty"`
	NewFeeBPS uint32 `json:"new_fee_bps,omitempty"`
	Amount    string `json:"amount,omitempty"` // wei, for withdrawals
	Recipient string `json:"recipient,omitempty"`

	// Mint fields
	Creator  string `json:"creator,omitempty"`
	Owner    string `json:"owner,omitempty"`
	TokenURI string `json:"token_uri,omitempty"`
	Rarity   string `json:"rarity,omitempty"`

	// Transfer fields
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}
