package pool

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

type GetPool struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPool(ctx context.Context, svcCtx *svc.ServiceContext) *GetPool {
	return &GetPool{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPool) GetPool(req *types.GetPoolRequest) (*types.PoolView, error) {
	id, err := types.ParsePubkey("poolId", req.PoolId)
	if err != nil {
		return nil, err
	}
	pool, err := l.svcCtx.Store.GetPool(id)
	if err != nil {
		return nil, err
	}
	return &types.PoolView{
		PoolId:           pool.PoolID.String(),
		Authority:        pool.Authority.String(),
		TokenMint0:       pool.TokenMint0.String(),
		TokenMint1:       pool.TokenMint1.String(),
		TickSpacing:      pool.TickSpacing,
		FeeRate:          pool.FeeRate,
		Liquidity:        types.FormatUint128(pool.Liquidity),
		CurrentSqrtPrice: types.FormatUint128(pool.CurrentSqrtPrice),
		CurrentTickIndex: pool.CurrentTickIndex,
		IsPaused:         pool.IsPaused,
		LastUpdated:      pool.LastUpdated,
	}, nil
}
