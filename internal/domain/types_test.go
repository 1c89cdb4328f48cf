package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
	assert.True(t, IsValidAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8"))
	assert.False(t, IsValidAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79"))
	assert.False(t, IsValidAddress("70997970C51812dc3A010C7d01b50e0d17dc79C8"))
	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("not-an-address"))
}

func TestNormalizeAddress(t *testing.T) {
	// lowercase input normalizes to the EIP-55 checksum form
	assert.Equal(t,
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		NormalizeAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8"))
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress(
		"0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
	assert.False(t, SameAddress(
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		"0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"))
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("1000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", v.String())

	_, err = ParseAmount("")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("0.5")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("1e18")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestValidPrice(t *testing.T) {
	assert.True(t, ValidPrice("1"))
	assert.True(t, ValidPrice("1000000000000000000"))
	assert.False(t, ValidPrice("0"))
	assert.False(t, ValidPrice("-5"))
	assert.False(t, ValidPrice(""))
	assert.False(t, ValidPrice("1.5"))
}

func TestFeeSplit(t *testing.T) {
	oneEther, _ := ParseAmount("1000000000000000000")

	// default 2.5% fee on 1 ETH
	fee, seller := FeeSplit(oneEther, DefaultFeeBPS)
	assert.Equal(t, "25000000000000000", fee.String())
	assert.Equal(t, "975000000000000000", seller.String())

	// fee plus seller amount always equals the price
	sum := new(big.Int).Add(fee, seller)
	assert.Zero(t, sum.Cmp(oneEther))

	// max 10% fee
	fee, seller = FeeSplit(oneEther, MaxFeeBPS)
	assert.Equal(t, "100000000000000000", fee.String())
	assert.Equal(t, "900000000000000000", seller.String())

	// zero fee sends everything to the seller
	fee, seller = FeeSplit(oneEther, 0)
	assert.Zero(t, fee.Sign())
	assert.Zero(t, seller.Cmp(oneEther))

	// rounding floors the fee, remainder goes to the seller
	fee, seller = FeeSplit(big.NewInt(99), DefaultFeeBPS)
	assert.Equal(t, "2", fee.String())
	assert.Equal(t, "97", seller.String())
}

func TestAddAmounts(t *testing.T) {
	sum, err := AddAmounts("1000000000000000000", "500000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", sum)

	sum, err = AddAmounts("0", "0")
	require.NoError(t, err)
	assert.Equal(t, "0", sum)

	_, err = AddAmounts("abc", "0")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
