package clmm

import (
	"math/big"

	bin "github.com/gagliardetto/binary"
)

var bpsDenominator = new(big.Int).SetUint64(BpsDenominator)

// BigFromUint128 widens a 128-bit value to big.Int.
func BigFromUint128(v bin.Uint128) *big.Int {
	b := new(big.Int).SetUint64(v.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(v.Lo))
}

// Uint128FromBig narrows a big.Int back to 128 bits, failing with
// ErrMathOverflow instead of truncating.
func Uint128FromBig(v *big.Int) (bin.Uint128, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return bin.Uint128{}, ErrMathOverflow
	}
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(v, 64)
	return bin.Uint128{Lo: lo.Uint64(), Hi: hi.Uint64()}, nil
}

// CalculatePriceImpact returns the basis-point deviation of the caller's
// minimum acceptable output from an ideal fill at the last observed sqrt
// price. The sqrt price is used as a linear price proxy, not the engine's
// real curve; the result is advisory.
//
// Every intermediate step is checked to 128 bits and the result to 64 bits.
// ideal == 0 (zero amount or zero price) is the division-by-zero path and
// reports ErrMathOverflow; the zero-input gate runs before this in the
// router.
func CalculatePriceImpact(amountIn, amountOutMin uint64, currentSqrtPrice bin.Uint128) (uint64, error) {
	price := BigFromUint128(currentSqrtPrice)

	ideal := new(big.Int).Mul(new(big.Int).SetUint64(amountIn), price)
	if ideal.BitLen() > 128 {
		return 0, ErrMathOverflow
	}
	actual := new(big.Int).Mul(new(big.Int).SetUint64(amountOutMin), price)
	if actual.BitLen() > 128 {
		return 0, ErrMathOverflow
	}
	if ideal.Sign() == 0 {
		return 0, ErrMathOverflow
	}

	diff := new(big.Int).Sub(ideal, actual)
	if diff.Sign() < 0 {
		// checked_sub semantics: threshold above the ideal fill underflows
		return 0, ErrMathOverflow
	}
	scaled := diff.Mul(diff, bpsDenominator)
	if scaled.BitLen() > 128 {
		return 0, ErrMathOverflow
	}
	impact := scaled.Div(scaled, ideal)
	if !impact.IsUint64() {
		return 0, ErrMathOverflow
	}
	return impact.Uint64(), nil
}

// MinAmountOut applies a basis-point slippage tolerance to an input amount,
// producing the acceptable-output floor used when the caller supplies no
// threshold of their own.
func MinAmountOut(amountIn, slippageBps uint64) (uint64, error) {
	if slippageBps > BpsDenominator {
		return 0, ErrSlippageExceeded
	}
	out := new(big.Int).SetUint64(amountIn)
	out.Mul(out, new(big.Int).SetUint64(BpsDenominator-slippageBps))
	out.Div(out, bpsDenominator)
	if !out.IsUint64() {
		return 0, ErrMathOverflow
	}
	return out.Uint64(), nil
}

// AddLiquidity applies an increase to a 128-bit liquidity counter with
// overflow detection.
func AddLiquidity(current, delta bin.Uint128) (bin.Uint128, error) {
	sum := new(big.Int).Add(BigFromUint128(current), BigFromUint128(delta))
	out, err := Uint128FromBig(sum)
	if err != nil {
		return bin.Uint128{}, ErrLiquidityOverflow
	}
	return out, nil
}

// SubLiquidity applies a decrease, failing when the delta exceeds the
// current value.
func SubLiquidity(current, delta bin.Uint128) (bin.Uint128, error) {
	cur := BigFromUint128(current)
	d := BigFromUint128(delta)
	if cur.Cmp(d) < 0 {
		return bin.Uint128{}, ErrInsufficientLiquidity
	}
	out, err := Uint128FromBig(cur.Sub(cur, d))
	if err != nil {
		return bin.Uint128{}, ErrInsufficientLiquidity
	}
	return out, nil
}

// Uint128From64 widens a uint64.
func Uint128From64(v uint64) bin.Uint128 {
	return bin.Uint128{Lo: v}
}

// Uint128IsZero reports whether the value is zero.
func Uint128IsZero(v bin.Uint128) bool {
	return v.Lo == 0 && v.Hi == 0
}

// Uint128Less compares two 128-bit values.
func Uint128Less(a, b bin.Uint128) bool {
	if a.Hi != b.Hi {
		return a.Hi < b.Hi
	}
	return a.Lo < b.Lo
}
