package store

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintbay/nft-marketplace/internal/domain"
	"github.com/mintbay/nft-marketplace/internal/store/schema"
)

const (
	testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testOperator = "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"
	testSeller   = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testBuyer    = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	testOther    = "0x90F79bf6EB2c4f870365E785982E1f101E93b906"

	oneEther  = "1000000000000000000"
	halfEther = "500000000000000000"
)

func wei(t *testing.T, s string) *big.Int {
	v, err := domain.ParseAmount(s)
	require.NoError(t, err)
	return v
}

// mintTestToken mints a token owned by owner and returns it
func mintTestToken(t *testing.T, store Store, owner string) *schema.Token {
	token, err := store.CreateToken(context.Background(), CreateTokenInput{
		Contract: testContract,
		Owner:    owner,
		Creator:  owner,
		TokenURI: "ipfs://QmTestMetadata",
		Rarity:   "Rare",
	})
	require.NoError(t, err)
	return token
}

// listTestToken approves the operator for the seller, mints a token and lists
// it at the given price
func listTestToken(t *testing.T, store Store, seller, price string) *schema.Listing {
	ctx := context.Background()
	token := mintTestToken(t, store, seller)
	require.NoError(t, store.SetOperatorApproval(ctx, seller, testOperator, true))

	listing, err := store.CreateListing(ctx, CreateListingInput{
		TokenContract: testContract,
		TokenID:       token.ID,
		Seller:        seller,
		Price:         wei(t, price),
		Operator:      testOperator,
	})
	require.NoError(t, err)
	return listing
}

func testCreateToken(t *testing.T, store Store) {
	ctx := context.Background()

	first := mintTestToken(t, store, testSeller)
	second := mintTestToken(t, store, testSeller)

	// IDs are assigned sequentially
	assert.Equal(t, first.ID+1, second.ID)
	assert.Equal(t, testSeller, first.Owner)
	assert.Equal(t, testSeller, first.Creator)
	assert.Equal(t, "Rare", first.Rarity)

	got, err := store.GetTokenByID(ctx, testContract, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "ipfs://QmTestMetadata", got.TokenURI)

	_, err = store.GetTokenByID(ctx, testContract, first.ID+9999)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func testTransferToken(t *testing.T, store Store) {
	ctx := context.Background()

	token := mintTestToken(t, store, testSeller)

	// Owner transfers directly
	moved, err := store.TransferToken(ctx, testContract, token.ID, testSeller, testBuyer)
	require.NoError(t, err)
	assert.Equal(t, testBuyer, moved.Owner)

	got, err := store.GetTokenByID(ctx, testContract, token.ID)
	require.NoError(t, err)
	assert.Equal(t, testBuyer, got.Owner)

	// A stranger cannot transfer
	_, err = store.TransferToken(ctx, testContract, token.ID, testOther, testSeller)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	// An approved operator of the current owner can
	require.NoError(t, store.SetOperatorApproval(ctx, testBuyer, testOperator, true))
	moved, err = store.TransferToken(ctx, testContract, token.ID, testOperator, testOther)
	require.NoError(t, err)
	assert.Equal(t, testOther, moved.Owner)

	// A revoked operator cannot
	require.NoError(t, store.SetOperatorApproval(ctx, testOther, testOperator, false))
	_, err = store.TransferToken(ctx, testContract, token.ID, testOperator, testSeller)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	// Missing tokens fail
	_, err = store.TransferToken(ctx, testContract, token.ID+9999, testOther, testSeller)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func testTokenQueries(t *testing.T, store Store) {
	ctx := context.Background()

	maxID, err := store.MaxTokenID(ctx, testContract)
	require.NoError(t, err)
	assert.Zero(t, maxID)

	a := mintTestToken(t, store, testSeller)
	b := mintTestToken(t, store, testSeller)
	c := mintTestToken(t, store, testBuyer)

	ids, err := store.GetTokensByOwner(ctx, testContract, testSeller)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID, b.ID}, ids)

	count, err := store.CountTokensByOwner(ctx, testContract, testSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	total, err := store.CountTokens(ctx, testContract)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	maxID, err = store.MaxTokenID(ctx, testContract)
	require.NoError(t, err)
	assert.Equal(t, c.ID, maxID)
}

func testOperatorApproval(t *testing.T, store Store) {
	ctx := context.Background()

	approved, err := store.IsApprovedForAll(ctx, testSeller, testOperator)
	require.NoError(t, err)
	assert.False(t, approved)

	require.NoError(t, store.SetOperatorApproval(ctx, testSeller, testOperator, true))
	approved, err = store.IsApprovedForAll(ctx, testSeller, testOperator)
	require.NoError(t, err)
	assert.True(t, approved)

	// revocation flips the existing row
	require.NoError(t, store.SetOperatorApproval(ctx, testSeller, testOperator, false))
	approved, err = store.IsApprovedForAll(ctx, testSeller, testOperator)
	require.NoError(t, err)
	assert.False(t, approved)
}

func testCreateListing(t *testing.T, store Store) {
	ctx := context.Background()

	token := mintTestToken(t, store, testSeller)

	// no operator approval yet
	_, err := store.CreateListing(ctx, CreateListingInput{
		TokenContract: testContract,
		TokenID:       token.ID,
		Seller:        testSeller,
		Price:         wei(t, oneEther),
		Operator:      testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrMarketplaceNotApproved)

	require.NoError(t, store.SetOperatorApproval(ctx, testSeller, testOperator, true))

	// only the owner can list
	_, err = store.CreateListing(ctx, CreateListingInput{
		TokenContract: testContract,
		TokenID:       token.ID,
		Seller:        testBuyer,
		Price:         wei(t, oneEther),
		Operator:      testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrNotTokenOwner)

	// unknown token
	_, err = store.CreateListing(ctx, CreateListingInput{
		TokenContract: testContract,
		TokenID:       token.ID + 9999,
		Seller:        testSeller,
		Price:         wei(t, oneEther),
		Operator:      testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	listing, err := store.CreateListing(ctx, CreateListingInput{
		TokenContract: testContract,
		TokenID:       token.ID,
		Seller:        testSeller,
		Price:         wei(t, oneEther),
		Operator:      testOperator,
	})
	require.NoError(t, err)
	assert.True(t, listing.Active)
	assert.Equal(t, oneEther, listing.Price)
	assert.Equal(t, uint32(domain.DefaultFeeBPS), listing.FeeBPS)

	second := listTestToken(t, store, testSeller, oneEther)
	assert.Equal(t, listing.ID+1, second.ID)
}

func testPurchaseListing(t *testing.T, store Store) {
	ctx := context.Background()

	listing := listTestToken(t, store, testSeller, oneEther)

	stateBefore, err := store.GetMarketplaceState(ctx)
	require.NoError(t, err)
	accruedBefore := wei(t, stateBefore.AccruedFees)

	result, err := store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID,
		Buyer:     testBuyer,
		Paid:      wei(t, oneEther),
		Operator:  testOperator,
	})
	require.NoError(t, err)

	// 2.5% of 1 ETH to the marketplace, the rest to the seller, no change
	assert.Equal(t, "25000000000000000", result.Fee.String())
	assert.Equal(t, "975000000000000000", result.SellerAmount.String())
	assert.Zero(t, result.Refund.Sign())
	assert.False(t, result.Listing.Active)

	// ownership moved to the buyer
	token, err := store.GetTokenByID(ctx, testContract, listing.TokenID)
	require.NoError(t, err)
	assert.Equal(t, testBuyer, token.Owner)

	// seller proceeds credited
	proceeds, err := store.GetProceeds(ctx, testSeller)
	require.NoError(t, err)
	assert.Equal(t, "975000000000000000", proceeds.String())

	// fee accrued on the singleton state
	stateAfter, err := store.GetMarketplaceState(ctx)
	require.NoError(t, err)
	delta := new(big.Int).Sub(wei(t, stateAfter.AccruedFees), accruedBefore)
	assert.Equal(t, "25000000000000000", delta.String())

	// a sold listing cannot be bought again
	_, err = store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID,
		Buyer:     testOther,
		Paid:      wei(t, oneEther),
		Operator:  testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrListingNotActive)
}

func testPurchaseOverpayment(t *testing.T, store Store) {
	ctx := context.Background()

	listing := listTestToken(t, store, testSeller, oneEther)

	paid := new(big.Int).Add(wei(t, oneEther), wei(t, halfEther))
	result, err := store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID,
		Buyer:     testBuyer,
		Paid:      paid,
		Operator:  testOperator,
	})
	require.NoError(t, err)

	// the excess over the asking price comes back to the buyer
	assert.Equal(t, halfEther, result.Refund.String())
	assert.Equal(t, "975000000000000000", result.SellerAmount.String())
}

func testPurchaseRejections(t *testing.T, store Store) {
	ctx := context.Background()

	listing := listTestToken(t, store, testSeller, oneEther)

	_, err := store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID,
		Buyer:     testBuyer,
		Paid:      wei(t, halfEther),
		Operator:  testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

	_, err = store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID,
		Buyer:     testSeller,
		Paid:      wei(t, oneEther),
		Operator:  testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrSelfPurchase)

	_, err = store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID + 9999,
		Buyer:     testBuyer,
		Paid:      wei(t, oneEther),
		Operator:  testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrListingNotActive)

	// approval revoked between listing and purchase
	require.NoError(t, store.SetOperatorApproval(ctx, testSeller, testOperator, false))
	_, err = store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID,
		Buyer:     testBuyer,
		Paid:      wei(t, oneEther),
		Operator:  testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrMarketplaceNotApproved)
}

func testCancelListing(t *testing.T, store Store) {
	ctx := context.Background()

	listing := listTestToken(t, store, testSeller, oneEther)

	_, err := store.CancelListing(ctx, listing.ID, testBuyer, false)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	cancelled, err := store.CancelListing(ctx, listing.ID, testSeller, false)
	require.NoError(t, err)
	assert.False(t, cancelled.Active)

	// cancelling twice fails, and so does buying a cancelled listing
	_, err = store.CancelListing(ctx, listing.ID, testSeller, false)
	assert.ErrorIs(t, err, domain.ErrListingNotActive)

	_, err = store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID,
		Buyer:     testBuyer,
		Paid:      wei(t, oneEther),
		Operator:  testOperator,
	})
	assert.ErrorIs(t, err, domain.ErrListingNotActive)

	// an admin cancel succeeds for a caller that is not the seller
	second := listTestToken(t, store, testSeller, oneEther)
	cancelled, err = store.CancelListing(ctx, second.ID, testOther, true)
	require.NoError(t, err)
	assert.False(t, cancelled.Active)
}

func testFeeUpdate(t *testing.T, store Store) {
	ctx := context.Background()

	// listing opened under the default rate
	before := listTestToken(t, store, testSeller, oneEther)

	oldFee, err := store.UpdateFeeBPS(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, uint32(domain.DefaultFeeBPS), oldFee)

	// new listings snapshot the new rate
	after := listTestToken(t, store, testOther, oneEther)
	assert.Equal(t, uint32(500), after.FeeBPS)

	// the earlier listing settles at its snapshotted rate
	result, err := store.PurchaseListing(ctx, PurchaseInput{
		ListingID: before.ID,
		Buyer:     testBuyer,
		Paid:      wei(t, oneEther),
		Operator:  testOperator,
	})
	require.NoError(t, err)
	assert.Equal(t, "25000000000000000", result.Fee.String())
}

func testWithdrawAccruedFees(t *testing.T, store Store) {
	ctx := context.Background()

	state, err := store.GetMarketplaceState(ctx)
	require.NoError(t, err)
	baseline := wei(t, state.AccruedFees)

	listing := listTestToken(t, store, testSeller, oneEther)
	_, err = store.PurchaseListing(ctx, PurchaseInput{
		ListingID: listing.ID,
		Buyer:     testBuyer,
		Paid:      wei(t, oneEther),
		Operator:  testOperator,
	})
	require.NoError(t, err)

	expected := new(big.Int).Add(baseline, wei(t, "25000000000000000"))
	amount, err := store.WithdrawAccruedFees(ctx)
	require.NoError(t, err)
	assert.Zero(t, amount.Cmp(expected))

	// a second withdrawal finds nothing and succeeds
	amount, err = store.WithdrawAccruedFees(ctx)
	require.NoError(t, err)
	assert.Zero(t, amount.Sign())
}

func testWithdrawProceeds(t *testing.T, store Store) {
	ctx := context.Background()

	// unknown accounts read and drain as zero
	proceeds, err := store.GetProceeds(ctx, testOther)
	require.NoError(t, err)
	assert.Zero(t, proceeds.Sign())

	amount, err := store.WithdrawProceeds(ctx, testOther)
	require.NoError(t, err)
	assert.Zero(t, amount.Sign())

	// two sales accumulate before the seller withdraws
	for range 2 {
		listing := listTestToken(t, store, testSeller, oneEther)
		_, err = store.PurchaseListing(ctx, PurchaseInput{
			ListingID: listing.ID,
			Buyer:     testBuyer,
			Paid:      wei(t, oneEther),
			Operator:  testOperator,
		})
		require.NoError(t, err)
	}

	amount, err = store.WithdrawProceeds(ctx, testSeller)
	require.NoError(t, err)
	assert.Equal(t, "1950000000000000000", amount.String())

	proceeds, err = store.GetProceeds(ctx, testSeller)
	require.NoError(t, err)
	assert.Zero(t, proceeds.Sign())
}

func testListingQueries(t *testing.T, store Store) {
	ctx := context.Background()

	first := listTestToken(t, store, testSeller, oneEther)
	second := listTestToken(t, store, testSeller, halfEther)
	other := listTestToken(t, store, testOther, oneEther)

	_, err := store.CancelListing(ctx, second.ID, testSeller, false)
	require.NoError(t, err)

	got, err := store.GetListingByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	got, err = store.GetListingByID(ctx, other.ID+9999)
	require.NoError(t, err)
	assert.Nil(t, got)

	listings, err := store.GetListings(ctx, ListingFilter{Seller: testSeller})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	// newest first
	assert.Equal(t, second.ID, listings[0].ID)
	assert.Equal(t, first.ID, listings[1].ID)

	active, err := store.GetListings(ctx, ListingFilter{Seller: testSeller, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	count, err := store.CountListings(ctx, ListingFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	page, err := store.GetListings(ctx, ListingFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)

	byToken, err := store.GetListings(ctx, ListingFilter{
		TokenContract: testContract,
		TokenID:       &first.TokenID,
	})
	require.NoError(t, err)
	require.Len(t, byToken, 1)
	assert.Equal(t, first.ID, byToken[0].ID)
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateToken", testCreateToken},
		{"TransferToken", testTransferToken},
		{"TokenQueries", testTokenQueries},
		{"OperatorApproval", testOperatorApproval},
		{"CreateListing", testCreateListing},
		{"PurchaseListing", testPurchaseListing},
		{"PurchaseOverpayment", testPurchaseOverpayment},
		{"PurchaseRejections", testPurchaseRejections},
		{"CancelListing", testCancelListing},
		{"FeeUpdate", testFeeUpdate},
		{"WithdrawAccruedFees", testWithdrawAccruedFees},
		{"WithdrawProceeds", testWithdrawProceeds},
		{"ListingQueries", testListingQueries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
