package store

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mintbay/nft-marketplace/internal/domain"
	"github.com/mintbay/nft-marketplace/internal/store/schema"
)

// marketplaceStateID is the primary key of the singleton state row
const marketplaceStateID = 1

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Migrate creates or updates the marketplace tables and seeds the singleton
// state row with the default fee rate if it does not exist yet.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&schema.Token{},
		&schema.OperatorApproval{},
		&schema.Listing{},
		&schema.ProceedsAccount{},
		&schema.MarketplaceState{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	state := schema.MarketplaceState{
		ID:          marketplaceStateID,
		FeeBPS:      domain.DefaultFeeBPS,
		AccruedFees: "0",
	}
	err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&state).Error
	if err != nil {
		return fmt.Errorf("failed to seed marketplace state: %w", err)
	}

	return nil
}

// CreateToken mints a token and returns it with its assigned ID
func (s *pgStore) CreateToken(ctx context.Context, input CreateTokenInput) (*schema.Token, error) {
	token := schema.Token{
		Contract: input.Contract,
		Owner:    input.Owner,
		Creator:  input.Creator,
		TokenURI: input.TokenURI,
		Rarity:   input.Rarity,
	}

	err := s.db.WithContext(ctx).Create(&token).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &token, nil
}

// GetTokenByID retrieves a token by contract and token ID
func (s *pgStore) GetTokenByID(ctx context.Context, contract string, tokenID uint64) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).
		Where("contract = ? AND id = ?", contract, tokenID).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &token, nil
}

// GetTokensByOwner lists the token IDs currently owned by an address under a contract
func (s *pgStore) GetTokensByOwner(ctx context.Context, contract, owner string) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("contract = ? AND owner = ?", contract, owner).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tokens by owner: %w", err)
	}

	return ids, nil
}

// CountTokensByOwner returns the number of tokens an address owns under a contract
func (s *pgStore) CountTokensByOwner(ctx context.Context, contract, owner string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("contract = ? AND owner = ?", contract, owner).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tokens by owner: %w", err)
	}

	return count, nil
}

// CountTokens returns the total number of tokens minted under a contract
func (s *pgStore) CountTokens(ctx context.Context, contract string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("contract = ?", contract).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tokens: %w", err)
	}

	return count, nil
}

// MaxTokenID returns the highest token ID assigned under a contract, zero
// when nothing has been minted yet
func (s *pgStore) MaxTokenID(ctx context.Context, contract string) (uint64, error) {
	var maxID int64
	err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("contract = ?", contract).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get max token id: %w", err)
	}

	return uint64(maxID), nil
}

// TransferToken moves a token to a new owner in a single transaction. The
// caller must be the current owner or an approved operator of the owner.
func (s *pgStore) TransferToken(ctx context.Context, contract string, tokenID uint64, caller, to string) (*schema.Token, error) {
	var token schema.Token

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("contract = ? AND id = ?", contract, tokenID).
			First(&token).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTokenNotFound
			}
			return fmt.Errorf("failed to get token: %w", err)
		}

		if !domain.SameAddress(token.Owner, caller) {
			var approval schema.OperatorApproval
			err = tx.Where("owner = ? AND operator = ?", token.Owner, caller).
				First(&approval).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check operator approval: %w", err)
			}
			if err != nil || !approval.Approved {
				return domain.ErrNotAuthorized
			}
		}

		err = tx.Model(&token).Updates(map[string]interface{}{"owner": to}).Error
		if err != nil {
			return fmt.Errorf("failed to transfer token: %w", err)
		}

		token.Owner = to
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// SetOperatorApproval grants or revokes blanket transfer rights
func (s *pgStore) SetOperatorApproval(ctx context.Context, owner, operator string, approved bool) error {
	approval := schema.OperatorApproval{
		Owner:    owner,
		Operator: operator,
		Approved: approved,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}, {Name: "operator"}},
			DoUpdates: clause.AssignmentColumns([]string{"approved", "updated_at"}),
		}).
		Create(&approval).Error
	if err != nil {
		return fmt.Errorf("failed to set operator approval: %w", err)
	}

	return nil
}

// IsApprovedForAll reports whether the operator may move the owner's tokens
func (s *pgStore) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	var approval schema.OperatorApproval
	err := s.db.WithContext(ctx).
		Where("owner = ? AND operator = ?", owner, operator).
		First(&approval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check operator approval: %w", err)
	}

	return approval.Approved, nil
}

// CreateListing validates ownership and approval, snapshots the current fee
// rate and opens a new listing in a single transaction
func (s *pgStore) CreateListing(ctx context.Context, input CreateListingInput) (*schema.Listing, error) {
	var listing schema.Listing

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. The seller must currently own the token
		var token schema.Token
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("contract = ? AND id = ?", input.TokenContract, input.TokenID).
			First(&token).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTokenNotFound
			}
			return fmt.Errorf("failed to get token: %w", err)
		}
		if !domain.SameAddress(token.Owner, input.Seller) {
			return domain.ErrNotTokenOwner
		}

		// 2. The seller must have approved the marketplace operator
		var approval schema.OperatorApproval
		err = tx.Where("owner = ? AND operator = ?", input.Seller, input.Operator).
			First(&approval).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check operator approval: %w", err)
		}
		if err != nil || !approval.Approved {
			return domain.ErrMarketplaceNotApproved
		}

		// 3. Snapshot the current fee rate so later fee changes never touch
		// this listing
		var state schema.MarketplaceState
		err = tx.Where("id = ?", marketplaceStateID).First(&state).Error
		if err != nil {
			return fmt.Errorf("failed to get marketplace state: %w", err)
		}

		listing = schema.Listing{
			TokenContract: input.TokenContract,
			TokenID:       input.TokenID,
			Seller:        input.Seller,
			Price:         input.Price.String(),
			FeeBPS:        state.FeeBPS,
			Active:        true,
		}
		if err := tx.Create(&listing).Error; err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// PurchaseListing atomically settles a sale. The listing row is locked for
// the whole transaction so two overlapping purchases of the same listing
// serialize, and the loser sees an inactive listing.
func (s *pgStore) PurchaseListing(ctx context.Context, input PurchaseInput) (*PurchaseResult, error) {
	var result PurchaseResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the listing; missing and deactivated listings fail alike
		var listing schema.Listing
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ListingID).
			First(&listing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrListingNotActive
			}
			return fmt.Errorf("failed to get listing: %w", err)
		}
		if !listing.Active {
			return domain.ErrListingNotActive
		}

		if domain.SameAddress(input.Buyer, listing.Seller) {
			return domain.ErrSelfPurchase
		}

		price, err := domain.ParseAmount(listing.Price)
		if err != nil {
			return fmt.Errorf("failed to parse listing price: %w", err)
		}
		if input.Paid.Cmp(price) < 0 {
			return domain.ErrInsufficientPayment
		}

		// 2. The seller must still own the token and the operator grant must
		// still stand; either can have changed since listing
		var token schema.Token
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("contract = ? AND id = ?", listing.TokenContract, listing.TokenID).
			First(&token).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTokenNotFound
			}
			return fmt.Errorf("failed to get token: %w", err)
		}
		if !domain.SameAddress(token.Owner, listing.Seller) {
			return domain.ErrNotTokenOwner
		}

		var approval schema.OperatorApproval
		err = tx.Where("owner = ? AND operator = ?", listing.Seller, input.Operator).
			First(&approval).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check operator approval: %w", err)
		}
		if err != nil || !approval.Approved {
			return domain.ErrMarketplaceNotApproved
		}

		// 3. Settle: split the price with the listing's snapshotted fee rate
		fee, sellerAmount := domain.FeeSplit(price, listing.FeeBPS)
		refund := new(big.Int).Sub(input.Paid, price)

		buyer := domain.NormalizeAddress(input.Buyer)
		err = tx.Model(&token).Updates(map[string]interface{}{"owner": buyer}).Error
		if err != nil {
			return fmt.Errorf("failed to transfer token: %w", err)
		}

		if err := creditProceeds(tx, listing.Seller, sellerAmount); err != nil {
			return err
		}

		var state schema.MarketplaceState
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", marketplaceStateID).
			First(&state).Error
		if err != nil {
			return fmt.Errorf("failed to get marketplace state: %w", err)
		}
		accrued, err := domain.AddAmounts(state.AccruedFees, fee.String())
		if err != nil {
			return fmt.Errorf("failed to accrue fee: %w", err)
		}
		err = tx.Model(&state).Updates(map[string]interface{}{"accrued_fees": accrued}).Error
		if err != nil {
			return fmt.Errorf("failed to update accrued fees: %w", err)
		}

		err = tx.Model(&listing).Updates(map[string]interface{}{"active": false}).Error
		if err != nil {
			return fmt.Errorf("failed to deactivate listing: %w", err)
		}

		listing.Active = false
		result = PurchaseResult{
			Listing:      &listing,
			Fee:          fee,
			SellerAmount: sellerAmount,
			Refund:       refund,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CancelListing deactivates a listing on behalf of its seller or, when
// asAdmin is set, any caller
func (s *pgStore) CancelListing(ctx context.Context, listingID uint64, caller string, asAdmin bool) (*schema.Listing, error) {
	var listing schema.Listing

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", listingID).
			First(&listing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrListingNotActive
			}
			return fmt.Errorf("failed to get listing: %w", err)
		}
		if !listing.Active {
			return domain.ErrListingNotActive
		}
		if !asAdmin && !domain.SameAddress(listing.Seller, caller) {
			return domain.ErrNotAuthorized
		}

		err = tx.Model(&listing).Updates(map[string]interface{}{"active": false}).Error
		if err != nil {
			return fmt.Errorf("failed to deactivate listing: %w", err)
		}

		listing.Active = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// GetListingByID retrieves a listing by its ID
func (s *pgStore) GetListingByID(ctx context.Context, listingID uint64) (*schema.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).
		Where("id = ?", listingID).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &listing, nil
}

func applyListingFilter(db *gorm.DB, filter ListingFilter) *gorm.DB {
	query := db.Model(&schema.Listing{})
	if filter.Seller != "" {
		query = query.Where("seller = ?", filter.Seller)
	}
	if filter.TokenContract != "" {
		query = query.Where("token_contract = ?", filter.TokenContract)
	}
	if filter.TokenID != nil {
		query = query.Where("token_id = ?", *filter.TokenID)
	}
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	return query
}

// GetListings retrieves listings matching the filter, newest first
func (s *pgStore) GetListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, error) {
	var listings []schema.Listing
	query := applyListingFilter(s.db.WithContext(ctx), filter).
		Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}

	return listings, nil
}

// CountListings returns the number of listings matching the filter
func (s *pgStore) CountListings(ctx context.Context, filter ListingFilter) (int64, error) {
	var count int64
	err := applyListingFilter(s.db.WithContext(ctx), filter).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}

	return count, nil
}

// GetMarketplaceState retrieves the singleton fee state row
func (s *pgStore) GetMarketplaceState(ctx context.Context) (*schema.MarketplaceState, error) {
	var state schema.MarketplaceState
	err := s.db.WithContext(ctx).
		Where("id = ?", marketplaceStateID).
		First(&state).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get marketplace state: %w", err)
	}

	return &state, nil
}

// UpdateFeeBPS sets the fee rate for future listings and returns the previous rate
func (s *pgStore) UpdateFeeBPS(ctx context.Context, feeBPS uint32) (uint32, error) {
	var oldFee uint32

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state schema.MarketplaceState
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", marketplaceStateID).
			First(&state).Error
		if err != nil {
			return fmt.Errorf("failed to get marketplace state: %w", err)
		}

		oldFee = state.FeeBPS
		err = tx.Model(&state).Updates(map[string]interface{}{"fee_bps": feeBPS}).Error
		if err != nil {
			return fmt.Errorf("failed to update fee: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return oldFee, nil
}

// WithdrawAccruedFees drains the accrued fee balance and returns the amount
// drained. Draining an empty balance succeeds and returns zero.
func (s *pgStore) WithdrawAccruedFees(ctx context.Context) (*big.Int, error) {
	amount := new(big.Int)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state schema.MarketplaceState
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", marketplaceStateID).
			First(&state).Error
		if err != nil {
			return fmt.Errorf("failed to get marketplace state: %w", err)
		}

		accrued, err := domain.ParseAmount(state.AccruedFees)
		if err != nil {
			return fmt.Errorf("failed to parse accrued fees: %w", err)
		}
		if accrued.Sign() == 0 {
			return nil
		}

		err = tx.Model(&state).Updates(map[string]interface{}{"accrued_fees": "0"}).Error
		if err != nil {
			return fmt.Errorf("failed to reset accrued fees: %w", err)
		}

		amount = accrued
		return nil
	})
	if err != nil {
		return nil, err
	}

	return amount, nil
}

// GetProceeds returns a seller's withdrawable proceeds balance
func (s *pgStore) GetProceeds(ctx context.Context, address string) (*big.Int, error) {
	var account schema.ProceedsAccount
	err := s.db.WithContext(ctx).
		Where("address = ?", address).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return new(big.Int), nil
		}
		return nil, fmt.Errorf("failed to get proceeds account: %w", err)
	}

	return domain.ParseAmount(account.Balance)
}

// WithdrawProceeds drains a seller's proceeds balance and returns the amount
// drained. An empty or missing account succeeds and returns zero.
func (s *pgStore) WithdrawProceeds(ctx context.Context, address string) (*big.Int, error) {
	amount := new(big.Int)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account schema.ProceedsAccount
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", address).
			First(&account).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get proceeds account: %w", err)
		}

		balance, err := domain.ParseAmount(account.Balance)
		if err != nil {
			return fmt.Errorf("failed to parse proceeds balance: %w", err)
		}
		if balance.Sign() == 0 {
			return nil
		}

		err = tx.Model(&account).Updates(map[string]interface{}{"balance": "0"}).Error
		if err != nil {
			return fmt.Errorf("failed to reset proceeds balance: %w", err)
		}

		amount = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return amount, nil
}

// creditProceeds adds amount to the seller's pull-payment balance inside an
// open transaction, creating the account row on first credit
func creditProceeds(tx *gorm.DB, address string, amount *big.Int) error {
	var account schema.ProceedsAccount
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("address = ?", address).
		First(&account).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get proceeds account: %w", err)
		}
		account = schema.ProceedsAccount{
			Address: address,
			Balance: amount.String(),
		}
		if err := tx.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to create proceeds account: %w", err)
		}
		return nil
	}

	balance, err := domain.AddAmounts(account.Balance, amount.String())
	if err != nil {
		return fmt.Errorf("failed to credit proceeds: %w", err)
	}
	err = tx.Model(&account).Updates(map[string]interface{}{"balance": balance}).Error
	if err != nil {
		return fmt.Errorf("failed to update proceeds balance: %w", err)
	}

	return nil
}
