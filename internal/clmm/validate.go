package clmm

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Pure admission predicates. Composing them, and the order errors surface
// in, is the routers' job.

// ValidateTickRange requires lower < upper and both ticks aligned to the
// pool's tick spacing. On top of that ordering/alignment predicate it also
// rejects ranges outside the venue tick bounds, surfacing the directional
// index-exceeded kinds so callers can tell the two failure classes apart.
func ValidateTickRange(lower, upper, tickSpacing int32) error {
	if tickSpacing <= 0 {
		return ErrInvalidTickSpacing
	}
	if lower >= upper {
		return ErrInvalidTickRange
	}
	if lower%tickSpacing != 0 || upper%tickSpacing != 0 {
		return ErrInvalidTickRange
	}
	if lower < MinTickIndex {
		return ErrMinTickIndexExceeded
	}
	if upper > MaxTickIndex {
		return ErrMaxTickIndexExceeded
	}
	return nil
}

// CheckPoolActive fails when the pool's pause flag is set. Runs before any
// mutation or external call on every entry point touching the pool.
func CheckPoolActive(pool *PoolState) error {
	if pool.IsPaused {
		return ErrPoolPaused
	}
	return nil
}

// CheckNonzeroInput rejects zero-amount requests.
func CheckNonzeroInput(amount uint64) error {
	if amount == 0 {
		return ErrInsufficientInput
	}
	return nil
}

// ValidateSqrtPrice requires a positive sqrt price.
func ValidateSqrtPrice(sqrtPrice bin.Uint128) error {
	if sqrtPrice.Lo == 0 && sqrtPrice.Hi == 0 {
		return ErrInvalidSqrtPrice
	}
	return nil
}

// ValidateFeeRate bounds the fee rate to the venue maximum.
func ValidateFeeRate(feeRate uint32) error {
	if feeRate > MaxFeeRate {
		return ErrInvalidFeeRate
	}
	return nil
}

// ValidatePoolAccounts rejects pool records with unset resource references.
func ValidatePoolAccounts(pool *PoolState) error {
	accounts := []solana.PublicKey{
		pool.PoolID,
		pool.Authority,
		pool.TokenMint0,
		pool.TokenMint1,
		pool.TokenVault0,
		pool.TokenVault1,
	}
	for _, acc := range accounts {
		if acc.IsZero() {
			return ErrInvalidPoolState
		}
	}
	return nil
}
