package rest

import (
	"time"

	"github.com/mintbay/nft-marketplace/internal/store"
	"github.com/mintbay/nft-marketplace/internal/store/schema"
)

// Request DTOs

// MintRequest is the body for POST /api/v1/tokens
type MintRequest struct {
	Creator  string `json:"creator" binding:"required"`
	To       string `json:"to"`
	TokenURI string `json:"token_uri" binding:"required"`
	Rarity   string `json:"rarity" binding:"required"`
}

// TransferRequest is the body for POST /api/v1/tokens/:id/transfer
type TransferRequest struct {
	Caller string `json:"caller" binding:"required"`
	To     string `json:"to" binding:"required"`
}

// ApprovalRequest is the body for POST /api/v1/approvals
type ApprovalRequest struct {
	Owner    string `json:"owner" binding:"required"`
	Operator string `json:"operator" binding:"required"`
	Approved *bool  `json:"approved" binding:"required"`
}

// CreateListingRequest is the body for POST /api/v1/listings
type CreateListingRequest struct {
	Seller        string `json:"seller" binding:"required"`
	TokenContract string `json:"token_contract" binding:"required"`
	TokenID       uint64 `json:"token_id" binding:"required"`
	Price         string `json:"price" binding:"required"`
}

// BuyListingRequest is the body for POST /api/v1/listings/:id/buy
type BuyListingRequest struct {
	Buyer string `json:"buyer" binding:"required"`
	// Paid is the payment amount in wei; any excess over the asking price
	// is returned in the response as a refund
	Paid string `json:"paid" binding:"required"`
}

// CancelListingRequest is the body for POST /api/v1/listings/:id/cancel.
// Caller is the listing's seller or the marketplace admin.
type CancelListingRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// UpdateFeeRequest is the body for PUT /api/v1/marketplace/fee
type UpdateFeeRequest struct {
	Caller string  `json:"caller" binding:"required"`
	FeeBPS *uint32 `json:"fee_bps" binding:"required"`
}

// WithdrawFeesRequest is the body for POST /api/v1/marketplace/fees/withdraw
type WithdrawFeesRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// Response DTOs

// TokenResponse is the API representation of a token
type TokenResponse struct {
	ID        uint64    `json:"id"`
	Contract  string    `json:"contract"`
	Owner     string    `json:"owner"`
	Creator   string    `json:"creator"`
	TokenURI  string    `json:"token_uri"`
	Rarity    string    `json:"rarity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListingResponse is the API representation of a listing
type ListingResponse struct {
	ID            uint64    `json:"id"`
	TokenContract string    `json:"token_contract"`
	TokenID       uint64    `json:"token_id"`
	Seller        string    `json:"seller"`
	Price         string    `json:"price"`
	FeeBPS        uint32    `json:"fee_bps"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListingsResponse is the paginated envelope for listing queries
type ListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int64             `json:"total"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}

// PurchaseResponse reports the settlement of a completed purchase
type PurchaseResponse struct {
	Listing      ListingResponse `json:"listing"`
	Buyer        string          `json:"buyer"`
	Fee          string          `json:"fee"`
	SellerAmount string          `json:"seller_amount"`
	Refund       string          `json:"refund"`
}

// StateResponse is the API representation of the marketplace state
type StateResponse struct {
	Operator    string    `json:"operator"`
	FeeBPS      uint32    `json:"fee_bps"`
	AccruedFees string    `json:"accrued_fees"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeeUpdateResponse reports a fee rate change
type FeeUpdateResponse struct {
	OldFeeBPS uint32 `json:"old_fee_bps"`
	NewFeeBPS uint32 `json:"new_fee_bps"`
}

// WithdrawalResponse reports a fee or proceeds withdrawal
type WithdrawalResponse struct {
	Amount string `json:"amount"`
}

// ProceedsResponse reports a seller's withdrawable balance
type ProceedsResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// BalanceResponse reports how many tokens an address owns
type BalanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

// SupplyResponse reports the total number of minted tokens and the ID the
// next mint will receive
type SupplyResponse struct {
	Contract    string `json:"contract"`
	TotalSupply int64  `json:"total_supply"`
	NextTokenID uint64 `json:"next_token_id"`
}

// ApprovalResponse reports an operator approval state
type ApprovalResponse struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

// TokensByOwnerResponse lists the token IDs an address owns
type TokensByOwnerResponse struct {
	Owner    string   `json:"owner"`
	TokenIDs []uint64 `json:"token_ids"`
}

// toTokenResponse converts a token model to its API representation
func toTokenResponse(t *schema.Token) TokenResponse {
	return TokenResponse{
		ID:        t.ID,
		Contract:  t.Contract,
		Owner:     t.Owner,
		Creator:   t.Creator,
		TokenURI:  t.TokenURI,
		Rarity:    t.Rarity,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// toListingResponse converts a listing model to its API representation
func toListingResponse(l *schema.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		TokenContract: l.TokenContract,
		TokenID:       l.TokenID,
		Seller:        l.Seller,
		Price:         l.Price,
		FeeBPS:        l.FeeBPS,
		Active:        l.Active,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// toPurchaseResponse converts a settlement result to its API representation
func toPurchaseResponse(r *store.PurchaseResult, buyer string) PurchaseResponse {
	return PurchaseResponse{
		Listing:      toListingResponse(r.Listing),
		Buyer:        buyer,
		Fee:          r.Fee.String(),
		SellerAmount: r.SellerAmount.String(),
		Refund:       r.Refund.String(),
	}
}
