package pool

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

type RefreshPool struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRefreshPool(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshPool {
	return &RefreshPool{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RefreshPool) RefreshPool(req *types.RefreshPoolRequest) (*types.PoolView, error) {
	id, err := types.ParsePubkey("poolId", req.PoolId)
	if err != nil {
		return nil, err
	}
	if err := l.svcCtx.Router.RefreshPool(l.ctx, id); err != nil {
		return nil, err
	}
	return NewGetPool(l.ctx, l.svcCtx).GetPool(&types.GetPoolRequest{PoolId: req.PoolId})
}
