package events

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Domain events consumed by off-system observers. Fire-and-forget: ordered
// only relative to the operation that emitted them.

type Event interface {
	Kind() string
}

type SwapEvent struct {
	PoolID         solana.PublicKey `json:"poolId"`
	AmountIn       uint64           `json:"amountIn"`
	AmountOutMin   uint64           `json:"amountOutMin"`
	PriceImpact    uint64           `json:"priceImpact"`
	SqrtPriceLimit bin.Uint128      `json:"sqrtPriceLimit"`
}

func (SwapEvent) Kind() string { return "swap" }

type LiquidityAddedEvent struct {
	PoolID         solana.PublicKey `json:"poolId"`
	LiquidityAdded bin.Uint128      `json:"liquidityAdded"`
	TickLowerIndex int32            `json:"tickLowerIndex"`
	TickUpperIndex int32            `json:"tickUpperIndex"`
	Amount0        uint64           `json:"amount0"`
	Amount1        uint64           `json:"amount1"`
}

func (LiquidityAddedEvent) Kind() string { return "liquidity_added" }

type LiquidityRemovedEvent struct {
	PoolID           solana.PublicKey `json:"poolId"`
	LiquidityRemoved bin.Uint128      `json:"liquidityRemoved"`
	TickLowerIndex   int32            `json:"tickLowerIndex"`
	TickUpperIndex   int32            `json:"tickUpperIndex"`
	Amount0          uint64           `json:"amount0"`
	Amount1          uint64           `json:"amount1"`
}

func (LiquidityRemovedEvent) Kind() string { return "liquidity_removed" }

type PoolUpdateEvent struct {
	PoolID           solana.PublicKey `json:"poolId"`
	SqrtPrice        bin.Uint128      `json:"sqrtPrice"`
	TickIndex        int32            `json:"tickIndex"`
	Liquidity        bin.Uint128      `json:"liquidity"`
	FeeGrowthGlobal0 bin.Uint128      `json:"feeGrowthGlobal0"`
	FeeGrowthGlobal1 bin.Uint128      `json:"feeGrowthGlobal1"`
}

func (PoolUpdateEvent) Kind() string { return "pool_update" }

type PositionUpdateEvent struct {
	Owner          solana.PublicKey `json:"owner"`
	Pool           solana.PublicKey `json:"pool"`
	Liquidity      bin.Uint128      `json:"liquidity"`
	TickLowerIndex int32            `json:"tickLowerIndex"`
	TickUpperIndex int32            `json:"tickUpperIndex"`
	TokensOwed0    uint64           `json:"tokensOwed0"`
	TokensOwed1    uint64           `json:"tokensOwed1"`
	UpdateType     string           `json:"updateType"`
}

func (PositionUpdateEvent) Kind() string { return "position_update" }
