package router

import (
	"context"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/clmm"
	"clmm-gateway/internal/events"
	"clmm-gateway/internal/store"
)

// LiquidityRequest describes a liquidity add or remove over one tick range.
type LiquidityRequest struct {
	PoolID         solana.PublicKey
	Owner          solana.PublicKey
	LiquidityDelta bin.Uint128
	TickLower      int32
	TickUpper      int32
	Amount0        uint64
	Amount1        uint64
}

func (req LiquidityRequest) positionKey() store.PositionKey {
	return store.PositionKey{
		Owner:     req.Owner,
		Pool:      req.PoolID,
		TickLower: req.TickLower,
		TickUpper: req.TickUpper,
	}
}

// AddLiquidity admits a liquidity increase: pause check, then tick-range
// check against the pool's spacing. No risk estimate applies to liquidity
// changes. On success the pool counter and the owner's position are updated
// and the add is published.
func (r *Router) AddLiquidity(ctx context.Context, req LiquidityRequest) error {
	err := r.store.WithPool(req.PoolID, func(pool *clmm.PoolState) error {
		if r.denied(req.PoolID) {
			return clmm.ErrPoolPaused
		}
		if err := clmm.CheckPoolActive(pool); err != nil {
			return err
		}
		if err := clmm.ValidateTickRange(req.TickLower, req.TickUpper, pool.TickSpacing); err != nil {
			return err
		}
		if clmm.Uint128IsZero(req.LiquidityDelta) {
			return clmm.ErrZeroLiquidity
		}

		next, err := clmm.AddLiquidity(pool.Liquidity, req.LiquidityDelta)
		if err != nil {
			return err
		}

		now := time.Now().Unix()
		key := req.positionKey()
		pos, getErr := r.store.GetPosition(key)
		if getErr != nil {
			pos = clmm.UserPosition{
				Owner: req.Owner,
				Pool:  req.PoolID,
				Position: clmm.PositionInfo{
					TickLowerIndex: req.TickLower,
					TickUpperIndex: req.TickUpper,
				},
				CreatedAt: now,
			}
		}
		posLiquidity, err := clmm.AddLiquidity(pos.Position.Liquidity, req.LiquidityDelta)
		if err != nil {
			return err
		}
		pos.Position.Liquidity = posLiquidity
		pos.LastUpdated = now

		pool.Liquidity = next
		pool.LastUpdated = now
		r.store.PutPosition(key, pos)

		r.bus.Publish(events.LiquidityAddedEvent{
			PoolID:         pool.PoolID,
			LiquidityAdded: req.LiquidityDelta,
			TickLowerIndex: req.TickLower,
			TickUpperIndex: req.TickUpper,
			Amount0:        req.Amount0,
			Amount1:        req.Amount1,
		})
		r.publishPosition(pos, "add")
		return nil
	})
	if err != nil {
		return err
	}
	logx.WithContext(ctx).Infof("[%s] liquidity added over [%d, %d]", req.PoolID, req.TickLower, req.TickUpper)
	return nil
}

// RemoveLiquidity admits a liquidity decrease against an existing position.
// A pool may be drained to zero, but a partial removal may not leave it
// below the venue's minimum-liquidity floor.
func (r *Router) RemoveLiquidity(ctx context.Context, req LiquidityRequest) error {
	err := r.store.WithPool(req.PoolID, func(pool *clmm.PoolState) error {
		if r.denied(req.PoolID) {
			return clmm.ErrPoolPaused
		}
		if err := clmm.CheckPoolActive(pool); err != nil {
			return err
		}
		if err := clmm.ValidateTickRange(req.TickLower, req.TickUpper, pool.TickSpacing); err != nil {
			return err
		}
		if clmm.Uint128IsZero(req.LiquidityDelta) {
			return clmm.ErrZeroLiquidity
		}

		key := req.positionKey()
		pos, err := r.store.GetPosition(key)
		if err != nil {
			return err
		}
		posLiquidity, err := clmm.SubLiquidity(pos.Position.Liquidity, req.LiquidityDelta)
		if err != nil {
			return err
		}
		next, err := clmm.SubLiquidity(pool.Liquidity, req.LiquidityDelta)
		if err != nil {
			return err
		}
		if !clmm.Uint128IsZero(next) && clmm.Uint128Less(next, clmm.Uint128From64(r.venue.MinimumLiquidity)) {
			return clmm.ErrInsufficientLiquidity
		}

		now := time.Now().Unix()
		pos.Position.Liquidity = posLiquidity
		pos.LastUpdated = now
		pool.Liquidity = next
		pool.LastUpdated = now
		r.store.PutPosition(key, pos)

		r.bus.Publish(events.LiquidityRemovedEvent{
			PoolID:           pool.PoolID,
			LiquidityRemoved: req.LiquidityDelta,
			TickLowerIndex:   req.TickLower,
			TickUpperIndex:   req.TickUpper,
			Amount0:          req.Amount0,
			Amount1:          req.Amount1,
		})
		kind := "remove"
		if clmm.Uint128IsZero(posLiquidity) {
			// fully withdrawn, logically closed
			kind = "close"
		}
		r.publishPosition(pos, kind)
		return nil
	})
	if err != nil {
		return err
	}
	logx.WithContext(ctx).Infof("[%s] liquidity removed over [%d, %d]", req.PoolID, req.TickLower, req.TickUpper)
	return nil
}

func (r *Router) publishPosition(pos clmm.UserPosition, kind string) {
	r.bus.Publish(events.PositionUpdateEvent{
		Owner:          pos.Owner,
		Pool:           pos.Pool,
		Liquidity:      pos.Position.Liquidity,
		TickLowerIndex: pos.Position.TickLowerIndex,
		TickUpperIndex: pos.Position.TickUpperIndex,
		TokensOwed0:    pos.Position.TokensOwed0,
		TokensOwed1:    pos.Position.TokensOwed1,
		UpdateType:     kind,
	})
}
