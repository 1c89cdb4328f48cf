package domain

import "errors"

var (
	// ErrInvalidPrice is returned when a listing is created with a zero or negative price
	ErrInvalidPrice = errors.New("price must be greater than zero")

	// ErrNotTokenOwner is returned when the caller does not own the token being listed
	ErrNotTokenOwner = errors.New("caller does not own this token")

	// ErrMarketplaceNotApproved is returned when the marketplace lacks operator approval to transfer the token
	ErrMarketplaceNotApproved = errors.New("marketplace not approved to transfer token")

	// ErrListingNotActive is returned when an operation targets a listing that was sold, cancelled, or never existed
	ErrListingNotActive = errors.New("listing is not active")

	// ErrInsufficientPayment is returned when the paid amount is below the listing price
	ErrInsufficientPayment = errors.New("insufficient payment")

	// ErrSelfPurchase is returned when a seller attempts to buy their own listing
	ErrSelfPurchase = errors.New("cannot buy your own listing")

	// ErrNotAuthorized is returned when the caller is neither the seller nor the marketplace administrator
	ErrNotAuthorized = errors.New("caller is not authorized")

	// ErrFeeTooHigh is returned when a fee update exceeds the hard cap
	ErrFeeTooHigh = errors.New("fee exceeds maximum")

	// ErrTokenNotFound is returned when a token is not found in the registry
	ErrTokenNotFound = errors.New("token not found")

	// ErrInvalidAddress is returned when an address fails hex validation
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is returned when an amount string is not a valid non-negative integer
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidTokenMetadata is returned when a mint carries an empty URI or unknown rarity
	ErrInvalidTokenMetadata = errors.New("invalid token metadata")
)
