package lib

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the fixed-point precision of native token amounts
const EtherDecimals = 18

var (
	ErrInvalidDecimal   = errors.New("invalid decimal value")
	ErrTooManyDecimals  = errors.New("fractional component exceeds decimals")
	ErrNegativeDecimals = errors.New("negative decimals")

	// plain notation only, decimal.NewFromString would also take exponents
	decimalRe = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)
)

// FormatEther renders a base-unit amount (wei) as a decimal ether string, i.e. 2e18 -> "2.0"
func FormatEther(wei *big.Int) string {
	res, _ := FormatUnits(wei, EtherDecimals)
	return res
}

// ParseEther converts a decimal ether string into base units (wei)
func ParseEther(value string) (*big.Int, error) {
	return ParseUnits(value, EtherDecimals)
}

// FormatUnits renders value scaled down by 10^decimals. Trailing fractional zeros are trimmed
// but at least one fractional digit is kept, nil is treated as zero.
func FormatUnits(value *big.Int, decimals int) (string, error) {
	if decimals < 0 {
		return "", ErrNegativeDecimals
	}
	if value == nil {
		value = new(big.Int)
	}

	res := decimal.NewFromBigInt(value, -int32(decimals)).String()
	if decimals > 0 && !strings.Contains(res, ".") {
		res += ".0"
	}
	return res, nil
}

// ParseUnits converts a decimal string into an integer scaled up by 10^decimals
func ParseUnits(value string, decimals int) (*big.Int, error) {
	if decimals < 0 {
		return nil, ErrNegativeDecimals
	}

	value = strings.TrimSpace(value)
	if !decimalRe.MatchString(value) {
		return nil, WrapError(ErrInvalidDecimal, fmt.Errorf("%q", value))
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, WrapError(ErrInvalidDecimal, fmt.Errorf("%q: %w", value, err))
	}

	scaled := d.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return nil, WrapError(ErrTooManyDecimals, fmt.Errorf("%q has more than %d decimals", value, decimals))
	}
	return scaled.BigInt(), nil
}
