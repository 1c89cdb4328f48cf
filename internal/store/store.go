package store

import (
	"context"
	"math/big"

	"github.com/mintbay/nft-marketplace/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// CreateTokenInput holds the fields for minting a new token
type CreateTokenInput struct {
	Contract string
	Owner    string
	Creator  string
	TokenURI string
	Rarity   string
}

// CreateListingInput holds the fields for opening a new listing. FeeBPS is
// resolved by the store from the current marketplace state so the snapshot
// and the listing row are written in one transaction.
type CreateListingInput struct {
	TokenContract string
	TokenID       uint64
	Seller        string
	Price         *big.Int
	Operator      string
}

// PurchaseInput holds the fields for buying an active listing
type PurchaseInput struct {
	ListingID uint64
	Buyer     string
	Paid      *big.Int
	Operator  string
}

// PurchaseResult reports the settlement of a completed purchase
type PurchaseResult struct {
	Listing      *schema.Listing
	Fee          *big.Int
	SellerAmount *big.Int
	Refund       *big.Int
}

// ListingFilter narrows listing queries; zero fields are ignored
type ListingFilter struct {
	Seller        string
	TokenContract string
	TokenID       *uint64
	ActiveOnly    bool
	Offset        int
	Limit         int
}

// Store defines the interface for database operations
type Store interface {
	// CreateToken mints a token and returns it with its assigned ID
	CreateToken(ctx context.Context, input CreateTokenInput) (*schema.Token, error)
	// GetTokenByID retrieves a token by contract and token ID
	GetTokenByID(ctx context.Context, contract string, tokenID uint64) (*schema.Token, error)
	// GetTokensByOwner lists the token IDs currently owned by an address under a contract
	GetTokensByOwner(ctx context.Context, contract, owner string) ([]uint64, error)
	// CountTokensByOwner returns the number of tokens an address owns under a contract
	CountTokensByOwner(ctx context.Context, contract, owner string) (int64, error)
	// CountTokens returns the total number of tokens minted under a contract
	CountTokens(ctx context.Context, contract string) (int64, error)
	// MaxTokenID returns the highest token ID assigned under a contract,
	// zero when nothing has been minted yet
	MaxTokenID(ctx context.Context, contract string) (uint64, error)
	// TransferToken moves a token to a new owner. The caller must be the
	// current owner or an approved operator of the owner.
	TransferToken(ctx context.Context, contract string, tokenID uint64, caller, to string) (*schema.Token, error)
	// SetOperatorApproval grants or revokes blanket transfer rights
	SetOperatorApproval(ctx context.Context, owner, operator string, approved bool) error
	// IsApprovedForAll reports whether the operator may move the owner's tokens
	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)

	// CreateListing validates ownership and approval, snapshots the current
	// fee rate and opens a new listing
	CreateListing(ctx context.Context, input CreateListingInput) (*schema.Listing, error)
	// PurchaseListing atomically settles a sale: deactivates the listing,
	// transfers the token, credits the seller's proceeds and accrues the fee
	PurchaseListing(ctx context.Context, input PurchaseInput) (*PurchaseResult, error)
	// CancelListing deactivates a listing. The caller must be its seller
	// unless asAdmin is set, which skips the seller check.
	CancelListing(ctx context.Context, listingID uint64, caller string, asAdmin bool) (*schema.Listing, error)
	// GetListingByID retrieves a listing by its ID
	GetListingByID(ctx context.Context, listingID uint64) (*schema.Listing, error)
	// GetListings retrieves listings matching the filter, newest first
	GetListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, error)
	// CountListings returns the number of listings matching the filter
	CountListings(ctx context.Context, filter ListingFilter) (int64, error)

	// GetMarketplaceState retrieves the singleton fee state row
	GetMarketplaceState(ctx context.Context) (*schema.MarketplaceState, error)
	// UpdateFeeBPS sets the fee rate for future listings and returns the previous rate
	UpdateFeeBPS(ctx context.Context, feeBPS uint32) (uint32, error)
	// WithdrawAccruedFees drains the accrued fee balance and returns the amount drained
	WithdrawAccruedFees(ctx context.Context) (*big.Int, error)
	// GetProceeds returns a seller's withdrawable proceeds balance
	GetProceeds(ctx context.Context, address string) (*big.Int, error)
	// WithdrawProceeds drains a seller's proceeds balance and returns the amount drained
	WithdrawProceeds(ctx context.Context, address string) (*big.Int, error)
}
