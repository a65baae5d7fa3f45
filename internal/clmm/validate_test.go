package clmm

import (
	"errors"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

func TestValidateTickRange(t *testing.T) {
	cases := []struct {
		name                 string
		lower, upper, spacing int32
		want                 error
	}{
		{"valid range", -60, 60, 60, nil},
		{"valid wide range", -443580, 443580, 60, nil},
		{"lower equals upper", 60, 60, 60, ErrInvalidTickRange},
		{"lower above upper", 120, 60, 60, ErrInvalidTickRange},
		{"lower misaligned", -61, 60, 60, ErrInvalidTickRange},
		{"upper misaligned", -60, 61, 60, ErrInvalidTickRange},
		{"both misaligned", -61, 61, 60, ErrInvalidTickRange},
		{"zero spacing", -60, 60, 0, ErrInvalidTickSpacing},
		{"negative spacing", -60, 60, -10, ErrInvalidTickSpacing},
		{"below min tick", -443640, 0, 60, ErrMinTickIndexExceeded},
		{"above max tick", 0, 443640, 60, ErrMaxTickIndexExceeded},
		{"spacing one accepts any aligned", -7, 13, 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTickRange(tc.lower, tc.upper, tc.spacing)
			if !errors.Is(err, tc.want) {
				t.Fatalf("ValidateTickRange(%d, %d, %d) = %v, want %v",
					tc.lower, tc.upper, tc.spacing, err, tc.want)
			}
		})
	}
}

// succeeds iff lower < upper and both are multiples of the spacing
func TestValidateTickRangeProperty(t *testing.T) {
	const spacing = int32(10)
	for lower := int32(-100); lower <= 100; lower += 5 {
		for upper := int32(-100); upper <= 100; upper += 5 {
			err := ValidateTickRange(lower, upper, spacing)
			legal := lower < upper && lower%spacing == 0 && upper%spacing == 0
			if legal && err != nil {
				t.Fatalf("(%d, %d) rejected: %v", lower, upper, err)
			}
			if !legal && err == nil {
				t.Fatalf("(%d, %d) accepted", lower, upper)
			}
		}
	}
}

func TestValidateTickRangeIdempotent(t *testing.T) {
	first := ValidateTickRange(-61, 120, 60)
	second := ValidateTickRange(-61, 120, 60)
	if !errors.Is(first, ErrInvalidTickRange) || !errors.Is(second, ErrInvalidTickRange) {
		t.Fatalf("results differ between calls: %v, %v", first, second)
	}
}

func TestCheckPoolActive(t *testing.T) {
	pool := &PoolState{}
	if err := CheckPoolActive(pool); err != nil {
		t.Fatalf("active pool rejected: %v", err)
	}
	pool.IsPaused = true
	if err := CheckPoolActive(pool); !errors.Is(err, ErrPoolPaused) {
		t.Fatalf("paused pool: got %v, want %v", err, ErrPoolPaused)
	}
}

func TestCheckNonzeroInput(t *testing.T) {
	if err := CheckNonzeroInput(0); !errors.Is(err, ErrInsufficientInput) {
		t.Fatalf("zero amount: got %v, want %v", err, ErrInsufficientInput)
	}
	if err := CheckNonzeroInput(1); err != nil {
		t.Fatalf("nonzero amount rejected: %v", err)
	}
}

func TestValidateSqrtPrice(t *testing.T) {
	if err := ValidateSqrtPrice(bin.Uint128{}); !errors.Is(err, ErrInvalidSqrtPrice) {
		t.Fatalf("zero sqrt price: got %v", err)
	}
	if err := ValidateSqrtPrice(bin.Uint128{Hi: 1}); err != nil {
		t.Fatalf("Q64.64 price 1.0 rejected: %v", err)
	}
}

func TestValidateFeeRate(t *testing.T) {
	if err := ValidateFeeRate(MaxFeeRate + 1); !errors.Is(err, ErrInvalidFeeRate) {
		t.Fatalf("over-limit fee rate: got %v", err)
	}
	if err := ValidateFeeRate(2500); err != nil {
		t.Fatalf("valid fee rate rejected: %v", err)
	}
}

func TestValidatePoolAccounts(t *testing.T) {
	pool := &PoolState{
		PoolID:      solana.NewWallet().PublicKey(),
		Authority:   solana.NewWallet().PublicKey(),
		TokenMint0:  solana.NewWallet().PublicKey(),
		TokenMint1:  solana.NewWallet().PublicKey(),
		TokenVault0: solana.NewWallet().PublicKey(),
		TokenVault1: solana.NewWallet().PublicKey(),
	}
	if err := ValidatePoolAccounts(pool); err != nil {
		t.Fatalf("complete pool rejected: %v", err)
	}
	pool.TokenVault1 = solana.PublicKey{}
	if err := ValidatePoolAccounts(pool); !errors.Is(err, ErrInvalidPoolState) {
		t.Fatalf("zero vault: got %v, want %v", err, ErrInvalidPoolState)
	}
}
