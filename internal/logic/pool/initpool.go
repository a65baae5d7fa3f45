package pool

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/router"
	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

type InitPool struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewInitPool(ctx context.Context, svcCtx *svc.ServiceContext) *InitPool {
	return &InitPool{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *InitPool) InitPool(req *types.InitPoolRequest) (*types.InitPoolResponse, error) {
	authority, err := types.ParsePubkey("authority", req.Authority)
	if err != nil {
		return nil, err
	}
	mint0, err := types.ParsePubkey("tokenMint0", req.TokenMint0)
	if err != nil {
		return nil, err
	}
	mint1, err := types.ParsePubkey("tokenMint1", req.TokenMint1)
	if err != nil {
		return nil, err
	}
	vault0, err := types.ParsePubkey("tokenVault0", req.TokenVault0)
	if err != nil {
		return nil, err
	}
	vault1, err := types.ParsePubkey("tokenVault1", req.TokenVault1)
	if err != nil {
		return nil, err
	}
	observation, err := types.ParsePubkey("observationKey", req.ObservationKey)
	if err != nil {
		return nil, err
	}
	sqrtPrice, err := types.ParseUint128("initialSqrtPrice", req.InitialSqrtPrice)
	if err != nil {
		return nil, err
	}

	pool, err := l.svcCtx.Router.InitializePool(l.ctx, router.InitPoolRequest{
		Authority:        authority,
		TokenMint0:       mint0,
		TokenMint1:       mint1,
		TokenVault0:      vault0,
		TokenVault1:      vault1,
		ObservationKey:   observation,
		TickSpacing:      req.TickSpacing,
		InitialSqrtPrice: sqrtPrice,
		FeeRate:          req.FeeRate,
	})
	if err != nil {
		return nil, err
	}
	return &types.InitPoolResponse{PoolId: pool.PoolID.String()}, nil
}
