package rest

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mintbay/nft-marketplace/internal/registry"
	"github.com/mintbay/nft-marketplace/internal/store"
	"github.com/mintbay/nft-marketplace/internal/store/schema"
)

// Marketplace is the slice of the marketplace service the handlers use
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_services.go -package=mocks -mock_names=Marketplace=MockMarketplace,Registry=MockRegistry
type Marketplace interface {
	CreateListing(ctx context.Context, seller, tokenContract string, tokenID uint64, price string) (*schema.Listing, error)
	BuyListing(ctx context.Context, listingID uint64, buyer, paid string) (*store.PurchaseResult, error)
	CancelListing(ctx context.Context, listingID uint64, caller string) (*schema.Listing, error)
	UpdateFee(ctx context.Context, caller string, feeBPS uint32) (uint32, error)
	WithdrawFees(ctx context.Context, caller string) (*big.Int, error)
	WithdrawProceeds(ctx context.Context, address string) (*big.Int, error)
	GetProceeds(ctx context.Context, address string) (*big.Int, error)
	GetListing(ctx context.Context, listingID uint64) (*schema.Listing, error)
	ListListings(ctx context.Context, filter store.ListingFilter) ([]schema.Listing, int64, error)
	GetState(ctx context.Context) (*schema.MarketplaceState, error)
	Operator() string
}

// Registry is the slice of the token registry service the handlers use
type Registry interface {
	Mint(ctx context.Context, input registry.MintInput) (*schema.Token, error)
	Transfer(ctx context.Context, tokenID uint64, caller, to string) (*schema.Token, error)
	SetApprovalForAll(ctx context.Context, owner, operator string, approved bool) error
	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)
	GetToken(ctx context.Context, tokenID uint64) (*schema.Token, error)
	TokensByOwner(ctx context.Context, owner string) ([]uint64, error)
	BalanceOf(ctx context.Context, owner string) (int64, error)
	TotalSupply(ctx context.Context) (int64, error)
	NextTokenID(ctx context.Context) (uint64, error)
	Contract() string
}

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// MintToken mints a new token
	// POST /api/v1/tokens
	MintToken(c *gin.Context)

	// GetToken retrieves a single token by its ID
	// GET /api/v1/tokens/:id
	GetToken(c *gin.Context)

	// ListTokensByOwner lists the token IDs an address owns
	// GET /api/v1/tokens?owner=<address>
	ListTokensByOwner(c *gin.Context)

	// TransferToken moves a token to a new owner
	// POST /api/v1/tokens/:id/transfer
	TransferToken(c *gin.Context)

	// GetBalance returns the number of tokens an address owns
	// GET /api/v1/accounts/:address/balance
	GetBalance(c *gin.Context)

	// GetSupply returns the total number of minted tokens and the next token ID
	// GET /api/v1/registry/supply
	GetSupply(c *gin.Context)

	// SetApproval grants or revokes an operator approval
	// POST /api/v1/approvals
	SetApproval(c *gin.Context)

	// GetApproval reports an operator approval state
	// GET /api/v1/approvals?owner=<address>&operator=<address>
	GetApproval(c *gin.Context)

	// CreateListing opens a new listing
	// POST /api/v1/listings
	CreateListing(c *gin.Context)

	// GetListing retrieves a single listing by its ID
	// GET /api/v1/listings/:id
	GetListing(c *gin.Context)

	// ListListings retrieves listings with optional filters
	// GET /api/v1/listings?seller=<address>&token_contract=<address>&token_id=<id>&active=<bool>&limit=<limit>&offset=<offset>
	ListListings(c *gin.Context)

	// BuyListing settles a purchase of an active listing
	// POST /api/v1/listings/:id/buy
	BuyListing(c *gin.Context)

	// CancelListing cancels an active listing
	// POST /api/v1/listings/:id/cancel
	CancelListing(c *gin.Context)

	// GetState returns the fee rate and accrued fee balance
	// GET /api/v1/marketplace/state
	GetState(c *gin.Context)

	// UpdateFee changes the fee rate for future listings (requires authentication)
	// PUT /api/v1/marketplace/fee
	UpdateFee(c *gin.Context)

	// WithdrawFees drains the accrued fee balance (requires authentication)
	// POST /api/v1/marketplace/fees/withdraw
	WithdrawFees(c *gin.Context)

	// GetProceeds returns a seller's withdrawable proceeds balance
	// GET /api/v1/proceeds/:address
	GetProceeds(c *gin.Context)

	// WithdrawProceeds drains a seller's proceeds balance
	// POST /api/v1/proceeds/:address/withdraw
	WithdrawProceeds(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	marketplace Marketplace
	registry    Registry
}

// NewHandler creates a new REST API handler
func NewHandler(marketplace Marketplace, reg Registry) Handler {
	return &handler{
		marketplace: marketplace,
		registry:    reg,
	}
}

// MintToken mints a new token
func (h *handler) MintToken(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	token, err := h.registry.Mint(c.Request.Context(), registry.MintInput{
		Creator:  req.Creator,
		To:       req.To,
		TokenURI: req.TokenURI,
		Rarity:   req.Rarity,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTokenResponse(token))
}

// GetToken retrieves a single token by its ID
func (h *handler) GetToken(c *gin.Context) {
	tokenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	token, err := h.registry.GetToken(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if token == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, toTokenResponse(token))
}

// TransferToken moves a token to a new owner
func (h *handler) TransferToken(c *gin.Context) {
	tokenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	token, err := h.registry.Transfer(c.Request.Context(), tokenID, req.Caller, req.To)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTokenResponse(token))
}

// ListTokensByOwner lists the token IDs an address owns
func (h *handler) ListTokensByOwner(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "Owner address is required")
		return
	}

	tokenIDs, err := h.registry.TokensByOwner(c.Request.Context(), owner)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if tokenIDs == nil {
		tokenIDs = []uint64{}
	}
	c.JSON(http.StatusOK, TokensByOwnerResponse{
		Owner:    owner,
		TokenIDs: tokenIDs,
	})
}

// GetBalance returns the number of tokens an address owns
func (h *handler) GetBalance(c *gin.Context) {
	address := c.Param("address")

	balance, err := h.registry.BalanceOf(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Address: address,
		Balance: balance,
	})
}

// GetSupply returns the total number of minted tokens and the next token ID
func (h *handler) GetSupply(c *gin.Context) {
	supply, err := h.registry.TotalSupply(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	nextID, err := h.registry.NextTokenID(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, SupplyResponse{
		Contract:    h.registry.Contract(),
		TotalSupply: supply,
		NextTokenID: nextID,
	})
}

// SetApproval grants or revokes an operator approval
func (h *handler) SetApproval(c *gin.Context) {
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err := h.registry.SetApprovalForAll(c.Request.Context(), req.Owner, req.Operator, *req.Approved)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ApprovalResponse{
		Owner:    req.Owner,
		Operator: req.Operator,
		Approved: *req.Approved,
	})
}

// GetApproval reports an operator approval state
func (h *handler) GetApproval(c *gin.Context) {
	owner := c.Query("owner")
	operator := c.Query("operator")
	if owner == "" || operator == "" {
		respondBadRequest(c, "Owner and operator addresses are required")
		return
	}

	approved, err := h.registry.IsApprovedForAll(c.Request.Context(), owner, operator)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ApprovalResponse{
		Owner:    owner,
		Operator: operator,
		Approved: approved,
	})
}

// CreateListing opens a new listing
func (h *handler) CreateListing(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listing, err := h.marketplace.CreateListing(c.Request.Context(),
		req.Seller, req.TokenContract, req.TokenID, req.Price)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toListingResponse(listing))
}

// GetListing retrieves a single listing by its ID
func (h *handler) GetListing(c *gin.Context) {
	listingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	listing, err := h.marketplace.GetListing(c.Request.Context(), listingID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if listing == nil {
		respondNotFound(c, "Listing not found")
		return
	}

	c.JSON(http.StatusOK, toListingResponse(listing))
}

// ListListings retrieves listings with optional filters
func (h *handler) ListListings(c *gin.Context) {
	filter, err := parseListingQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listings, total, err := h.marketplace.ListListings(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	responses := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, toListingResponse(&listings[i]))
	}

	c.JSON(http.StatusOK, ListingsResponse{
		Listings: responses,
		Total:    total,
		Offset:   filter.Offset,
		Limit:    filter.Limit,
	})
}

// BuyListing settles a purchase of an active listing
func (h *handler) BuyListing(c *gin.Context) {
	listingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BuyListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.marketplace.BuyListing(c.Request.Context(), listingID, req.Buyer, req.Paid)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPurchaseResponse(result, req.Buyer))
}

// CancelListing cancels an active listing
func (h *handler) CancelListing(c *gin.Context) {
	listingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CancelListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listing, err := h.marketplace.CancelListing(c.Request.Context(), listingID, req.Caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListingResponse(listing))
}

// GetState returns the fee rate and accrued fee balance
func (h *handler) GetState(c *gin.Context) {
	state, err := h.marketplace.GetState(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, StateResponse{
		Operator:    h.marketplace.Operator(),
		FeeBPS:      state.FeeBPS,
		AccruedFees: state.AccruedFees,
		UpdatedAt:   state.UpdatedAt,
	})
}

// UpdateFee changes the fee rate for future listings
func (h *handler) UpdateFee(c *gin.Context) {
	var req UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	oldFee, err := h.marketplace.UpdateFee(c.Request.Context(), req.Caller, *req.FeeBPS)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, FeeUpdateResponse{
		OldFeeBPS: oldFee,
		NewFeeBPS: *req.FeeBPS,
	})
}

// WithdrawFees drains the accrued fee balance
func (h *handler) WithdrawFees(c *gin.Context) {
	var req WithdrawFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	amount, err := h.marketplace.WithdrawFees(c.Request.Context(), req.Caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, WithdrawalResponse{Amount: amount.String()})
}

// GetProceeds returns a seller's withdrawable proceeds balance
func (h *handler) GetProceeds(c *gin.Context) {
	address := c.Param("address")

	balance, err := h.marketplace.GetProceeds(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProceedsResponse{
		Address: address,
		Balance: balance.String(),
	})
}

// WithdrawProceeds drains a seller's proceeds balance
func (h *handler) WithdrawProceeds(c *gin.Context) {
	address := c.Param("address")

	amount, err := h.marketplace.WithdrawProceeds(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, WithdrawalResponse{Amount: amount.String()})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// parseIDParam parses a numeric path parameter, responding with a 400 on
// failure
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, fmt.Sprintf("Invalid %s parameter", name))
		return 0, false
	}
	return id, true
}
