package router

import (
	"context"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/clmm"
	"clmm-gateway/internal/engine"
	"clmm-gateway/internal/events"
)

// SwapRequest is a transient admission request: validated once, then
// forwarded verbatim or discarded.
type SwapRequest struct {
	PoolID               solana.PublicKey
	Accounts             engine.SwapAccounts
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimitX64    bin.Uint128
	IsBaseInput          bool
}

// Swap admits and forwards a swap. Check order is pinned: is the venue even
// open (pause), then is the request well-formed (amount), then the risk
// estimate against the venue ceiling. Any rejection aborts before the engine
// call; an engine failure propagates unchanged with no retry and no
// compensation. Admitted parameters reach the engine exactly as supplied:
// a zero output threshold is not rewritten, it computes the full 10000 bps
// impact and fails the ceiling. Returns the computed price impact in bps.
//
// The risk estimate reads the cached sqrt price, which is only moved by the
// observe/update path; an admission can run against a stale price. Known
// limitation, no freshness bound is enforced.
func (r *Router) Swap(ctx context.Context, req SwapRequest) (uint64, error) {
	var impact uint64
	err := r.store.WithPool(req.PoolID, func(pool *clmm.PoolState) error {
		if r.denied(req.PoolID) {
			return clmm.ErrPoolPaused
		}
		if err := clmm.CheckPoolActive(pool); err != nil {
			return err
		}
		if err := clmm.CheckNonzeroInput(req.Amount); err != nil {
			return err
		}
		if clmm.Uint128IsZero(pool.Liquidity) {
			return clmm.ErrZeroLiquidity
		}

		var err error
		impact, err = clmm.CalculatePriceImpact(req.Amount, req.OtherAmountThreshold, pool.CurrentSqrtPrice)
		if err != nil {
			return err
		}
		if impact > r.venue.MaxPriceImpactBps {
			return fmt.Errorf("%w: %d bps over %d bps ceiling", clmm.ErrExcessivePriceImpact, impact, r.venue.MaxPriceImpactBps)
		}

		params := clmm.SwapV2Params{
			Amount:               req.Amount,
			OtherAmountThreshold: req.OtherAmountThreshold,
			SqrtPriceLimitX64:    req.SqrtPriceLimitX64,
			IsBaseInput:          req.IsBaseInput,
		}
		if err := r.engine.ExecuteSwap(ctx, req.Accounts, params); err != nil {
			return err
		}

		r.bus.Publish(events.SwapEvent{
			PoolID:         pool.PoolID,
			AmountIn:       req.Amount,
			AmountOutMin:   req.OtherAmountThreshold,
			PriceImpact:    impact,
			SqrtPriceLimit: req.SqrtPriceLimitX64,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	logx.WithContext(ctx).Infof("[%s] swap admitted, amount %d, impact %d bps", req.PoolID, req.Amount, impact)
	return impact, nil
}
