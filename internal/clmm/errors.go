package clmm

import "errors"

// Admission and state errors. Each rejected request maps to exactly one of
// these; the routers wrap with %w so callers can errors.Is against them.
var (
	// arithmetic
	ErrMathOverflow = errors.New("math operation overflowed")

	// configuration
	ErrInvalidTickSpacing = errors.New("invalid tick spacing")
	ErrInvalidSqrtPrice   = errors.New("invalid sqrt price")
	ErrInvalidFeeRate     = errors.New("invalid fee rate")

	// admission
	ErrInvalidTickRange     = errors.New("invalid tick range")
	ErrInsufficientInput    = errors.New("insufficient input amount")
	ErrExcessivePriceImpact = errors.New("excessive price impact")
	ErrSlippageExceeded     = errors.New("slippage tolerance exceeded")
	ErrPoolPaused           = errors.New("pool is paused")

	// state consistency
	ErrInvalidPoolState      = errors.New("invalid pool state")
	ErrZeroLiquidity         = errors.New("zero liquidity")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrLiquidityOverflow     = errors.New("liquidity overflow")

	// resources
	ErrInvalidTokenAccountOwner = errors.New("invalid token account owner")
	ErrInvalidTokenMint         = errors.New("invalid token mint")
	ErrInvalidAuthority         = errors.New("invalid authority")
	ErrInsufficientTokenBalance = errors.New("token account balance insufficient")

	// positions
	ErrInvalidPosition      = errors.New("invalid position")
	ErrPositionNotFound     = errors.New("position not found")
	ErrPositionUpdateFailed = errors.New("position update failed")

	// observation / ticks
	ErrObservationStateInvalid = errors.New("observation state invalid")
	ErrTickArrayInvalid        = errors.New("tick array invalid")
	ErrPriceLimitReached       = errors.New("price limit reached")
	ErrMaxTickIndexExceeded    = errors.New("maximum tick index exceeded")
	ErrMinTickIndexExceeded    = errors.New("minimum tick index exceeded")
)
