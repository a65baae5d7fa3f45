package router

import (
	"context"
	"fmt"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/clmm"
	"clmm-gateway/internal/events"
)

// InitPoolRequest carries a pool's immutable configuration.
type InitPoolRequest struct {
	Authority        solana.PublicKey
	TokenMint0       solana.PublicKey
	TokenMint1       solana.PublicKey
	TokenVault0      solana.PublicKey
	TokenVault1      solana.PublicKey
	ObservationKey   solana.PublicKey
	TickSpacing      int32
	InitialSqrtPrice bin.Uint128
	FeeRate          uint32
}

// InitializePool creates a pool record keyed by its derived identity. Tick
// spacing and the token pair are immutable afterward; pools are never
// deleted, pausing substitutes.
func (r *Router) InitializePool(ctx context.Context, req InitPoolRequest) (clmm.PoolState, error) {
	if req.TickSpacing <= 0 {
		return clmm.PoolState{}, clmm.ErrInvalidTickSpacing
	}
	if err := clmm.ValidateSqrtPrice(req.InitialSqrtPrice); err != nil {
		return clmm.PoolState{}, err
	}
	if err := clmm.ValidateFeeRate(req.FeeRate); err != nil {
		return clmm.PoolState{}, err
	}
	if !clmm.OrderedMints(req.TokenMint0, req.TokenMint1) {
		return clmm.PoolState{}, fmt.Errorf("%w: mint0 must order before mint1", clmm.ErrInvalidTokenMint)
	}

	program, err := solana.PublicKeyFromBase58(r.venue.EngineProgram)
	if err != nil {
		return clmm.PoolState{}, fmt.Errorf("engine program id: %w", err)
	}
	poolID, err := clmm.DerivePoolID(program, req.TokenMint0, req.TokenMint1, req.TickSpacing)
	if err != nil {
		return clmm.PoolState{}, err
	}

	pool := clmm.PoolState{
		Authority:        req.Authority,
		TokenMint0:       req.TokenMint0,
		TokenMint1:       req.TokenMint1,
		TickSpacing:      req.TickSpacing,
		FeeRate:          req.FeeRate,
		CurrentSqrtPrice: req.InitialSqrtPrice,
		TokenVault0:      req.TokenVault0,
		TokenVault1:      req.TokenVault1,
		ObservationKey:   req.ObservationKey,
		PoolID:           poolID,
		LastUpdated:      time.Now().Unix(),
	}
	if err := clmm.ValidatePoolAccounts(&pool); err != nil {
		return clmm.PoolState{}, err
	}
	if err := r.store.AddPool(pool); err != nil {
		return clmm.PoolState{}, err
	}

	r.publishPoolUpdate(&pool)
	logx.WithContext(ctx).Infof("[%s] pool initialized, spacing %d", poolID, req.TickSpacing)
	return pool, nil
}

// SetPaused flips the pool's pause flag. Only the pool authority may.
func (r *Router) SetPaused(ctx context.Context, poolID, authority solana.PublicKey, paused bool) error {
	err := r.store.WithPool(poolID, func(pool *clmm.PoolState) error {
		if !pool.Authority.Equals(authority) {
			return clmm.ErrInvalidAuthority
		}
		pool.IsPaused = paused
		pool.LastUpdated = time.Now().Unix()
		return nil
	})
	if err != nil {
		return err
	}
	logx.WithContext(ctx).Infof("[%s] paused=%v", poolID, paused)
	return nil
}

// RefreshPool re-reads the on-chain pool account and moves the cached market
// state (sqrt price, tick, liquidity, fee growth). This is the only path
// that refreshes the price the risk estimate reads.
func (r *Router) RefreshPool(ctx context.Context, poolID solana.PublicKey) error {
	if r.fetcher == nil {
		return clmm.ErrObservationStateInvalid
	}
	data, err := r.fetcher.FetchAccount(ctx, poolID)
	if err != nil {
		return err
	}
	var observed clmm.PoolState
	if err := observed.Decode(data); err != nil {
		return fmt.Errorf("%w: %v", clmm.ErrInvalidPoolState, err)
	}
	if err := clmm.ValidateSqrtPrice(observed.CurrentSqrtPrice); err != nil {
		return err
	}

	var updated clmm.PoolState
	err = r.store.WithPool(poolID, func(pool *clmm.PoolState) error {
		// fee growth accumulators never decrease
		if clmm.Uint128Less(observed.FeeGrowthGlobal0, pool.FeeGrowthGlobal0) ||
			clmm.Uint128Less(observed.FeeGrowthGlobal1, pool.FeeGrowthGlobal1) {
			return clmm.ErrInvalidPoolState
		}
		pool.CurrentSqrtPrice = observed.CurrentSqrtPrice
		pool.CurrentTickIndex = observed.CurrentTickIndex
		pool.Liquidity = observed.Liquidity
		pool.FeeGrowthGlobal0 = observed.FeeGrowthGlobal0
		pool.FeeGrowthGlobal1 = observed.FeeGrowthGlobal1
		pool.LastUpdated = time.Now().Unix()
		updated = *pool
		return nil
	})
	if err != nil {
		return err
	}

	r.publishPoolUpdate(&updated)
	logx.WithContext(ctx).Infof("[%s] pool refreshed, tick %d", poolID, updated.CurrentTickIndex)
	return nil
}

func (r *Router) publishPoolUpdate(pool *clmm.PoolState) {
	r.bus.Publish(events.PoolUpdateEvent{
		PoolID:           pool.PoolID,
		SqrtPrice:        pool.CurrentSqrtPrice,
		TickIndex:        pool.CurrentTickIndex,
		Liquidity:        pool.Liquidity,
		FeeGrowthGlobal0: pool.FeeGrowthGlobal0,
		FeeGrowthGlobal1: pool.FeeGrowthGlobal1,
	})
}
