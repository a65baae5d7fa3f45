package clmm

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	// Tick index bounds of the venue, scaled for Q64.64 sqrt prices.
	MinTickIndex int32 = -443636
	MaxTickIndex int32 = 443636

	// Fee rate is expressed in hundredths of a bip (parts per million).
	MaxFeeRate uint32 = 1_000_000

	BpsDenominator uint64 = 10_000
)

// PoolState is the canonical record of a pool's configuration and last
// observed market state. Field order matches the on-chain account layout so
// the struct borsh-decodes directly from fetched account data.
type PoolState struct {
	Authority         solana.PublicKey
	TokenMint0        solana.PublicKey
	TokenMint1        solana.PublicKey
	TickSpacing       int32
	TickSpacingSeed   uint16
	FeeRate           uint32
	Liquidity         bin.Uint128
	CurrentSqrtPrice  bin.Uint128
	CurrentTickIndex  int32
	FeeGrowthGlobal0  bin.Uint128
	FeeGrowthGlobal1  bin.Uint128
	FeeProtocolToken0 uint64
	FeeProtocolToken1 uint64
	TokenVault0       solana.PublicKey
	TokenVault1       solana.PublicKey
	ObservationKey    solana.PublicKey
	PoolID            solana.PublicKey
	IsPaused          bool
	LastUpdated       int64
}

// Decode parses a fetched pool account. The leading 8-byte account
// discriminator is skipped when present.
func (ps *PoolState) Decode(data []byte) error {
	if len(data) > 8 {
		data = data[8:]
	}
	if err := bin.NewBorshDecoder(data).Decode(ps); err != nil {
		return fmt.Errorf("decode pool state: %w", err)
	}
	return nil
}

// PositionInfo is the in-range liquidity claim of one position.
type PositionInfo struct {
	Liquidity            bin.Uint128
	TickLowerIndex       int32
	TickUpperIndex       int32
	FeeGrowthInside0Last bin.Uint128
	FeeGrowthInside1Last bin.Uint128
	TokensOwed0          uint64
	TokensOwed1          uint64
}

// UserPosition is identified by (owner, pool, tick bounds). A position whose
// liquidity reaches zero is logically closed but the record is kept.
type UserPosition struct {
	Owner       solana.PublicKey
	Pool        solana.PublicKey
	Position    PositionInfo
	CreatedAt   int64
	LastUpdated int64
}

// SwapV2Params is the payload relayed verbatim to the execution engine.
// Never persisted: validated once, then forwarded or discarded.
type SwapV2Params struct {
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimitX64    bin.Uint128
	IsBaseInput          bool
}

// CreateLiquidityParams describes a liquidity add/remove request.
type CreateLiquidityParams struct {
	LiquidityDelta bin.Uint128
	TickLowerIndex int32
	TickUpperIndex int32
	Amount0Max     uint64
	Amount1Max     uint64
}

// DerivePoolID derives the stable pool address from its immutable
// configuration, so one (mint0, mint1, spacing) triple maps to one pool.
func DerivePoolID(program, mint0, mint1 solana.PublicKey, tickSpacing int32) (solana.PublicKey, error) {
	seed := make([]byte, 4)
	seed[0] = byte(tickSpacing)
	seed[1] = byte(tickSpacing >> 8)
	seed[2] = byte(tickSpacing >> 16)
	seed[3] = byte(tickSpacing >> 24)
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte("pool"), mint0.Bytes(), mint1.Bytes(), seed},
		program,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive pool id: %w", err)
	}
	return addr, nil
}

// OrderedMints reports whether the pair respects the mint0 < mint1
// convention that keeps pool identities unique.
func OrderedMints(mint0, mint1 solana.PublicKey) bool {
	return bytes.Compare(mint0.Bytes(), mint1.Bytes()) < 0
}
