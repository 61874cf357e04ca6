package spell

import (
	"errors"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/shopspring/decimal"
)

const (
	// precision of intermediate values in compound rate math.
	precision = 256

	secondsPerYear = 60 * 60 * 24 * 365

	rayDecimals = 27
	wadDecimals = 18
)

var errNonPositiveRate = errors.New("rate must be positive")

// AnnualPercent converts a per second rate, as a ray, into the yearly
// compounded percentage: (ray/1e27)^secondsPerYear * 100 - 100.
func AnnualPercent(ray *big.Int) (string, error) {
	if ray == nil || ray.Sign() <= 0 {
		return "", errNonPositiveRate
	}
	one := new(big.Float).SetPrec(precision).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(rayDecimals), nil))
	rate := new(big.Float).SetPrec(precision).SetInt(ray)
	rate.Quo(rate, one)

	growth := bigfloat.Pow(rate, new(big.Float).SetPrec(precision).SetInt64(secondsPerYear))
	percent := new(big.Float).SetPrec(precision).Mul(growth, big.NewFloat(100))
	percent.Sub(percent, big.NewFloat(100))
	return percent.Text('f', 2) + "%", nil
}

// RayPercent formats ray/1e27 as a percentage.
func RayPercent(ray *big.Int) string {
	return decimal.NewFromBigInt(ray, -rayDecimals).Shift(2).StringFixed(2) + "%"
}

// PenaltyPercent formats the part of a ray multiplier above one as a percentage.
func PenaltyPercent(ray *big.Int) string {
	return decimal.NewFromBigInt(ray, -rayDecimals).Sub(decimal.NewFromInt(1)).Shift(2).StringFixed(2) + "%"
}

// WadAmount formats a wad as a decimal token amount.
func WadAmount(wad *big.Int) string {
	return decimal.NewFromBigInt(wad, -wadDecimals).String()
}
