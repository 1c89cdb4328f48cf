package marketplace

import (
	"context"
	"math/big"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/mintbay/nft-marketplace/internal/adapter"
	"github.com/mintbay/nft-marketplace/internal/domain"
	"github.com/mintbay/nft-marketplace/internal/logger"
	"github.com/mintbay/nft-marketplace/internal/messaging"
	"github.com/mintbay/nft-marketplace/internal/store"
	"github.com/mintbay/nft-marketplace/internal/store/schema"
)

// Config holds the marketplace service identity
type Config struct {
	// AdminAddress may change the fee rate and withdraw accrued fees
	AdminAddress string
	// OperatorAddress is the identity sellers approve for transfers
	OperatorAddress string
}

// Service implements the marketplace ledger operations. State changes go
// through the store in a single transaction; events are published after the
// transaction commits, and a publish failure never rolls the change back.
type Service struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	admin     string
	operator  string
}

// NewService creates a new marketplace service
func NewService(s store.Store, publisher messaging.Publisher, clock adapter.Clock, cfg Config) *Service {
	return &Service{
		store:     s,
		publisher: publisher,
		clock:     clock,
		admin:     domain.NormalizeAddress(cfg.AdminAddress),
		operator:  domain.NormalizeAddress(cfg.OperatorAddress),
	}
}

// Operator returns the marketplace operator address
func (s *Service) Operator() string {
	return s.operator
}

// CreateListing opens a listing for a token the seller owns and has approved
// the marketplace to transfer
func (s *Service) CreateListing(ctx context.Context, seller, tokenContract string, tokenID uint64, price string) (*schema.Listing, error) {
	if !domain.IsValidAddress(seller) || !domain.IsValidAddress(tokenContract) {
		return nil, domain.ErrInvalidAddress
	}

	if !domain.ValidPrice(price) {
		return nil, domain.ErrInvalidPrice
	}
	amount, err := domain.ParseAmount(price)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}

	listing, err := s.store.CreateListing(ctx, store.CreateListingInput{
		TokenContract: domain.NormalizeAddress(tokenContract),
		TokenID:       tokenID,
		Seller:        domain.NormalizeAddress(seller),
		Price:         amount,
		Operator:      s.operator,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &domain.MarketplaceEvent{
		Type:          domain.EventTypeListingCreated,
		ListingID:     listing.ID,
		TokenContract: listing.TokenContract,
		TokenID:       listing.TokenID,
		Seller:        listing.Seller,
		Price:         listing.Price,
	})

	return listing, nil
}

// BuyListing settles a purchase of an active listing. paid is the amount the
// buyer sent; anything above the asking price is returned as a refund in the
// result.
func (s *Service) BuyListing(ctx context.Context, listingID uint64, buyer, paid string) (*store.PurchaseResult, error) {
	if !domain.IsValidAddress(buyer) {
		return nil, domain.ErrInvalidAddress
	}

	amount, err := domain.ParseAmount(paid)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}

	result, err := s.store.PurchaseListing(ctx, store.PurchaseInput{
		ListingID: listingID,
		Buyer:     domain.NormalizeAddress(buyer),
		Paid:      amount,
		Operator:  s.operator,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &domain.MarketplaceEvent{
		Type:          domain.EventTypeListingSold,
		ListingID:     result.Listing.ID,
		TokenContract: result.Listing.TokenContract,
		TokenID:       result.Listing.TokenID,
		Seller:        result.Listing.Seller,
		Buyer:         domain.NormalizeAddress(buyer),
		Price:         result.Listing.Price,
	})

	return result, nil
}

// CancelListing deactivates an active listing. The caller must be the
// listing's seller or the admin, who may cancel any listing.
func (s *Service) CancelListing(ctx context.Context, listingID uint64, caller string) (*schema.Listing, error) {
	if !domain.IsValidAddress(caller) {
		return nil, domain.ErrInvalidAddress
	}

	caller = domain.NormalizeAddress(caller)
	listing, err := s.store.CancelListing(ctx, listingID, caller, domain.SameAddress(caller, s.admin))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &domain.MarketplaceEvent{
		Type:          domain.EventTypeListingCancelled,
		ListingID:     listing.ID,
		TokenContract: listing.TokenContract,
		TokenID:       listing.TokenID,
		Seller:        listing.Seller,
	})

	return listing, nil
}

// UpdateFee changes the fee rate applied to future listings. Only the admin
// may call it and the rate is capped.
func (s *Service) UpdateFee(ctx context.Context, caller string, feeBPS uint32) (oldFee uint32, err error) {
	if !domain.IsValidAddress(caller) {
		return 0, domain.ErrInvalidAddress
	}
	if !domain.SameAddress(caller, s.admin) {
		return 0, domain.ErrNotAuthorized
	}
	if feeBPS > domain.MaxFeeBPS {
		return 0, domain.ErrFeeTooHigh
	}

	oldFee, err = s.store.UpdateFeeBPS(ctx, feeBPS)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, &domain.MarketplaceEvent{
		Type:      domain.EventTypeFeeUpdated,
		OldFeeBPS: oldFee,
		NewFeeBPS: feeBPS,
	})

	return oldFee, nil
}

// WithdrawFees drains the accrued fee balance to the admin. Draining an
// empty balance succeeds and returns zero.
func (s *Service) WithdrawFees(ctx context.Context, caller string) (*big.Int, error) {
	if !domain.IsValidAddress(caller) {
		return nil, domain.ErrInvalidAddress
	}
	if !domain.SameAddress(caller, s.admin) {
		return nil, domain.ErrNotAuthorized
	}

	amount, err := s.store.WithdrawAccruedFees(ctx)
	if err != nil {
		return nil, err
	}

	if amount.Sign() > 0 {
		s.publish(ctx, &domain.MarketplaceEvent{
			Type:      domain.EventTypeFeesWithdrawn,
			Amount:    amount.String(),
			Recipient: s.admin,
		})
	}

	return amount, nil
}

// WithdrawProceeds drains a seller's accumulated sale proceeds
func (s *Service) WithdrawProceeds(ctx context.Context, address string) (*big.Int, error) {
	if !domain.IsValidAddress(address) {
		return nil, domain.ErrInvalidAddress
	}

	return s.store.WithdrawProceeds(ctx, domain.NormalizeAddress(address))
}

// GetProceeds returns a seller's withdrawable proceeds balance
func (s *Service) GetProceeds(ctx context.Context, address string) (*big.Int, error) {
	if !domain.IsValidAddress(address) {
		return nil, domain.ErrInvalidAddress
	}

	return s.store.GetProceeds(ctx, domain.NormalizeAddress(address))
}

// GetListing retrieves a listing by ID; a nil listing means not found
func (s *Service) GetListing(ctx context.Context, listingID uint64) (*schema.Listing, error) {
	return s.store.GetListingByID(ctx, listingID)
}

// ListListings retrieves listings matching the filter along with the total count
func (s *Service) ListListings(ctx context.Context, filter store.ListingFilter) ([]schema.Listing, int64, error) {
	if filter.Seller != "" {
		if !domain.IsValidAddress(filter.Seller) {
			return nil, 0, domain.ErrInvalidAddress
		}
		filter.Seller = domain.NormalizeAddress(filter.Seller)
	}
	if filter.TokenContract != "" {
		if !domain.IsValidAddress(filter.TokenContract) {
			return nil, 0, domain.ErrInvalidAddress
		}
		filter.TokenContract = domain.NormalizeAddress(filter.TokenContract)
	}

	listings, err := s.store.GetListings(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.store.CountListings(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return listings, count, nil
}

// GetState returns the current fee rate and accrued fee balance
func (s *Service) GetState(ctx context.Context) (*schema.MarketplaceState, error) {
	return s.store.GetMarketplaceState(ctx)
}

// publish stamps and publishes an event. Failures are logged, never
// propagated; the state change has already committed.
func (s *Service) publish(ctx context.Context, event *domain.MarketplaceEvent) {
	event.ID = ulid.Make().String()
	event.Timestamp = s.clock.Now()

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)))
	}
}
