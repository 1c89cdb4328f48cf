package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// DefaultFeeBPS is the marketplace fee applied to listings when no update has been made (2.5%)
	DefaultFeeBPS uint32 = 250

	// MaxFeeBPS is the hard ceiling for the marketplace fee (10%)
	MaxFeeBPS uint32 = 1000

	// bpsDenominator is the basis-point denominator used in fee arithmetic
	bpsDenominator = 10000
)

// IsValidAddress checks whether s is a well-formed hex address
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// NormalizeAddress converts a hex address to its EIP-55 checksummed form.
// All addresses are normalized at the API boundary so that equality checks
// inside the ledger are plain string comparisons.
func NormalizeAddress(s string) string {
	return common.HexToAddress(s).Hex()
}

// SameAddress compares two hex addresses ignoring case and checksum
func SameAddress(a, b string) bool {
	return common.HexToAddress(a) == common.HexToAddress(b)
}

// ParseAmount parses a decimal wei amount. Amounts are carried as strings
// end to end (they exceed uint64) and only converted for arithmetic.
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	return v, nil
}

// ValidPrice checks that s is a parseable amount strictly greater than zero
func ValidPrice(s string) bool {
	v, err := ParseAmount(s)
	return err == nil && v.Sign() > 0
}

// FeeSplit splits a sale price into the marketplace fee and the seller amount.
// The fee is floor(price * feeBPS / 10000); the seller receives the remainder,
// so fee + sellerAmount == price always holds.
func FeeSplit(price *big.Int, feeBPS uint32) (fee, sellerAmount *big.Int) {
	fee = new(big.Int).Mul(price, big.NewInt(int64(feeBPS)))
	fee.Div(fee, big.NewInt(bpsDenominator))
	sellerAmount = new(big.Int).Sub(price, fee)
	return fee, sellerAmount
}

// AddAmounts returns a + b for two decimal amount strings
func AddAmounts(a, b string) (string, error) {
	av, err := ParseAmount(a)
	if err != nil {
		return "", err
	}
	bv, err := ParseAmount(b)
	if err != nil {
		return "", err
	}
	return new(big.Int).Add(av, bv).String(), nil
}
