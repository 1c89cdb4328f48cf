package registry

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/mintbay/nft-marketplace/internal/adapter"
	"github.com/mintbay/nft-marketplace/internal/domain"
	"github.com/mintbay/nft-marketplace/internal/logger"
	"github.com/mintbay/nft-marketplace/internal/messaging"
	"github.com/mintbay/nft-marketplace/internal/store"
	"github.com/mintbay/nft-marketplace/internal/store/schema"
)

// MintInput holds the fields for minting a token
type MintInput struct {
	// Creator is the minting address, recorded permanently on the token
	Creator string
	// To is the initial owner; empty defaults to the creator
	To       string
	TokenURI string
	// Rarity is free text, recorded as given
	Rarity string
}

// Service implements the token registry operations for a single contract
type Service struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	contract  string
}

// NewService creates a new registry service for the given contract address
func NewService(s store.Store, publisher messaging.Publisher, clock adapter.Clock, contract string) *Service {
	return &Service{
		store:     s,
		publisher: publisher,
		clock:     clock,
		contract:  domain.NormalizeAddress(contract),
	}
}

// Contract returns the registry contract address
func (s *Service) Contract() string {
	return s.contract
}

// Mint creates a new token with a sequential ID and publishes a mint event
func (s *Service) Mint(ctx context.Context, input MintInput) (*schema.Token, error) {
	if !domain.IsValidAddress(input.Creator) {
		return nil, domain.ErrInvalidAddress
	}
	if input.To == "" {
		input.To = input.Creator
	}
	if !domain.IsValidAddress(input.To) {
		return nil, domain.ErrInvalidAddress
	}
	if input.TokenURI == "" || strings.TrimSpace(input.Rarity) == "" {
		return nil, domain.ErrInvalidTokenMetadata
	}

	token, err := s.store.CreateToken(ctx, store.CreateTokenInput{
		Contract: s.contract,
		Owner:    domain.NormalizeAddress(input.To),
		Creator:  domain.NormalizeAddress(input.Creator),
		TokenURI: input.TokenURI,
		Rarity:   input.Rarity,
	})
	if err != nil {
		return nil, err
	}

	event := &domain.MarketplaceEvent{
		ID:            ulid.Make().String(),
		Type:          domain.EventTypeTokenMinted,
		Timestamp:     s.clock.Now(),
		TokenContract: token.Contract,
		TokenID:       token.ID,
		Creator:       token.Creator,
		Owner:         token.Owner,
		TokenURI:      token.TokenURI,
		Rarity:        token.Rarity,
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)))
	}

	return token, nil
}

// Transfer moves a token to a new owner. The caller must be the current owner
// or an operator the owner has approved.
func (s *Service) Transfer(ctx context.Context, tokenID uint64, caller, to string) (*schema.Token, error) {
	if !domain.IsValidAddress(caller) || !domain.IsValidAddress(to) {
		return nil, domain.ErrInvalidAddress
	}

	token, err := s.store.GetTokenByID(ctx, s.contract, tokenID)
	if err != nil {
		return nil, err
	}
	from := token.Owner

	token, err = s.store.TransferToken(ctx, s.contract, tokenID,
		domain.NormalizeAddress(caller), domain.NormalizeAddress(to))
	if err != nil {
		return nil, err
	}

	event := &domain.MarketplaceEvent{
		ID:            ulid.Make().String(),
		Type:          domain.EventTypeTokenTransferred,
		Timestamp:     s.clock.Now(),
		TokenContract: token.Contract,
		TokenID:       token.ID,
		From:          from,
		To:            token.Owner,
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)))
	}

	return token, nil
}

// SetApprovalForAll grants or revokes an operator's right to transfer any of
// the owner's tokens
func (s *Service) SetApprovalForAll(ctx context.Context, owner, operator string, approved bool) error {
	if !domain.IsValidAddress(owner) || !domain.IsValidAddress(operator) {
		return domain.ErrInvalidAddress
	}

	return s.store.SetOperatorApproval(ctx,
		domain.NormalizeAddress(owner), domain.NormalizeAddress(operator), approved)
}

// IsApprovedForAll reports whether the operator may transfer the owner's tokens
func (s *Service) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	if !domain.IsValidAddress(owner) || !domain.IsValidAddress(operator) {
		return false, domain.ErrInvalidAddress
	}

	return s.store.IsApprovedForAll(ctx,
		domain.NormalizeAddress(owner), domain.NormalizeAddress(operator))
}

// GetToken retrieves a token by its ID
func (s *Service) GetToken(ctx context.Context, tokenID uint64) (*schema.Token, error) {
	return s.store.GetTokenByID(ctx, s.contract, tokenID)
}

// TokensByOwner lists the token IDs an address currently owns
func (s *Service) TokensByOwner(ctx context.Context, owner string) ([]uint64, error) {
	if !domain.IsValidAddress(owner) {
		return nil, domain.ErrInvalidAddress
	}

	return s.store.GetTokensByOwner(ctx, s.contract, domain.NormalizeAddress(owner))
}

// BalanceOf returns the number of tokens an address currently owns
func (s *Service) BalanceOf(ctx context.Context, owner string) (int64, error) {
	if !domain.IsValidAddress(owner) {
		return 0, domain.ErrInvalidAddress
	}

	return s.store.CountTokensByOwner(ctx, s.contract, domain.NormalizeAddress(owner))
}

// TotalSupply returns the number of tokens minted under the contract
func (s *Service) TotalSupply(ctx context.Context) (int64, error) {
	return s.store.CountTokens(ctx, s.contract)
}

// NextTokenID returns the ID the next mint will be assigned
func (s *Service) NextTokenID(ctx context.Context) (uint64, error) {
	maxID, err := s.store.MaxTokenID(ctx, s.contract)
	if err != nil {
		return 0, err
	}

	return maxID + 1, nil
}
