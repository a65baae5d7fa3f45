package liquidity

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/router"
	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

type Liquidity struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLiquidity(ctx context.Context, svcCtx *svc.ServiceContext) *Liquidity {
	return &Liquidity{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *Liquidity) Add(req *types.LiquidityRequest) (*types.LiquidityResponse, error) {
	parsed, err := l.parse(req)
	if err != nil {
		return nil, err
	}
	if err := l.svcCtx.Router.AddLiquidity(l.ctx, parsed); err != nil {
		l.Errorf("[%s] liquidity add rejected: %v", req.PoolId, err)
		return nil, err
	}
	return &types.LiquidityResponse{PoolId: req.PoolId}, nil
}

func (l *Liquidity) Remove(req *types.LiquidityRequest) (*types.LiquidityResponse, error) {
	parsed, err := l.parse(req)
	if err != nil {
		return nil, err
	}
	if err := l.svcCtx.Router.RemoveLiquidity(l.ctx, parsed); err != nil {
		l.Errorf("[%s] liquidity remove rejected: %v", req.PoolId, err)
		return nil, err
	}
	return &types.LiquidityResponse{PoolId: req.PoolId}, nil
}

func (l *Liquidity) parse(req *types.LiquidityRequest) (router.LiquidityRequest, error) {
	var out router.LiquidityRequest
	var err error

	if out.PoolID, err = types.ParsePubkey("poolId", req.PoolId); err != nil {
		return out, err
	}
	if out.Owner, err = types.ParsePubkey("owner", req.Owner); err != nil {
		return out, err
	}
	if out.LiquidityDelta, err = types.ParseUint128("liquidityDelta", req.LiquidityDelta); err != nil {
		return out, err
	}
	out.TickLower = req.TickLower
	out.TickUpper = req.TickUpper
	out.Amount0 = req.Amount0
	out.Amount1 = req.Amount1
	return out, nil
}
