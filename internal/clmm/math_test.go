package clmm

import (
	"errors"
	"math"
	"math/big"
	"testing"

	bin "github.com/gagliardetto/binary"
)

// price 1.0 in Q64.64
var priceOne = bin.Uint128{Hi: 1}

func TestCalculatePriceImpact(t *testing.T) {
	cases := []struct {
		name         string
		amountIn     uint64
		amountOutMin uint64
		price        bin.Uint128
		want         uint64
		wantErr      error
	}{
		{"one percent", 1000, 990, priceOne, 100, nil},
		{"fifteen percent", 1000, 850, priceOne, 1500, nil},
		{"exact fill", 1000, 1000, priceOne, 0, nil},
		{"full loss", 1000, 0, priceOne, 10000, nil},
		{"zero amount in", 0, 0, priceOne, 0, ErrMathOverflow},
		{"zero price", 1000, 990, bin.Uint128{}, 0, ErrMathOverflow},
		{"threshold above ideal", 1000, 1001, priceOne, 0, ErrMathOverflow},
		{"ideal product overflows", math.MaxUint64, 0, bin.Uint128{Hi: math.MaxUint64}, 0, ErrMathOverflow},
		{"actual product overflows", 1, math.MaxUint64, bin.Uint128{Hi: math.MaxUint64}, 0, ErrMathOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculatePriceImpact(tc.amountIn, tc.amountOutMin, tc.price)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Fatalf("impact = %d bps, want %d", got, tc.want)
			}
		})
	}
}

// Impact never decreases as the acceptable output drops toward zero.
func TestCalculatePriceImpactMonotonic(t *testing.T) {
	const amountIn = 1000
	prev := uint64(0)
	for threshold := uint64(1000); ; threshold -= 50 {
		impact, err := CalculatePriceImpact(amountIn, threshold, priceOne)
		if err != nil {
			t.Fatalf("threshold %d: %v", threshold, err)
		}
		if impact < prev {
			t.Fatalf("impact dropped from %d to %d at threshold %d", prev, impact, threshold)
		}
		prev = impact
		if threshold == 0 {
			break
		}
	}
}

func TestCalculatePriceImpactIdempotent(t *testing.T) {
	a, errA := CalculatePriceImpact(1000, 990, priceOne)
	b, errB := CalculatePriceImpact(1000, 990, priceOne)
	if a != b || !errors.Is(errA, errB) {
		t.Fatalf("results differ: (%d, %v) vs (%d, %v)", a, errA, b, errB)
	}
}

func TestUint128BigRoundTrip(t *testing.T) {
	v := bin.Uint128{Lo: 0xdeadbeef, Hi: 42}
	got, err := Uint128FromBig(BigFromUint128(v))
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Fatalf("round trip changed value: %v -> %v", v, got)
	}
}

func TestUint128FromBigOverflow(t *testing.T) {
	over := new(big.Int).Lsh(big.NewInt(1), 128)
	if _, err := Uint128FromBig(over); !errors.Is(err, ErrMathOverflow) {
		t.Fatalf("2^128: got %v, want %v", err, ErrMathOverflow)
	}
	if _, err := Uint128FromBig(big.NewInt(-1)); !errors.Is(err, ErrMathOverflow) {
		t.Fatalf("negative: got %v, want %v", err, ErrMathOverflow)
	}
}

func TestMinAmountOut(t *testing.T) {
	out, err := MinAmountOut(10_000, 100)
	if err != nil || out != 9_900 {
		t.Fatalf("got (%d, %v), want 9900", out, err)
	}
	out, err = MinAmountOut(10_000, 0)
	if err != nil || out != 10_000 {
		t.Fatalf("zero tolerance: got (%d, %v), want 10000", out, err)
	}
	if _, err := MinAmountOut(10_000, BpsDenominator+1); !errors.Is(err, ErrSlippageExceeded) {
		t.Fatalf("tolerance over denominator: got %v, want %v", err, ErrSlippageExceeded)
	}
}

func TestAddLiquidity(t *testing.T) {
	out, err := AddLiquidity(Uint128From64(1000), Uint128From64(500))
	if err != nil || out.Lo != 1500 {
		t.Fatalf("got (%v, %v), want 1500", out, err)
	}
	maxed := bin.Uint128{Lo: math.MaxUint64, Hi: math.MaxUint64}
	if _, err := AddLiquidity(maxed, Uint128From64(1)); !errors.Is(err, ErrLiquidityOverflow) {
		t.Fatalf("overflow: got %v, want %v", err, ErrLiquidityOverflow)
	}
}

func TestSubLiquidity(t *testing.T) {
	out, err := SubLiquidity(Uint128From64(1000), Uint128From64(1000))
	if err != nil || !Uint128IsZero(out) {
		t.Fatalf("full withdrawal: got (%v, %v)", out, err)
	}
	if _, err := SubLiquidity(Uint128From64(10), Uint128From64(11)); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("underflow: got %v, want %v", err, ErrInsufficientLiquidity)
	}
}
