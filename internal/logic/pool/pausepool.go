package pool

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

type PausePool struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPausePool(ctx context.Context, svcCtx *svc.ServiceContext) *PausePool {
	return &PausePool{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PausePool) PausePool(req *types.PausePoolRequest) (*types.PoolView, error) {
	id, err := types.ParsePubkey("poolId", req.PoolId)
	if err != nil {
		return nil, err
	}
	authority, err := types.ParsePubkey("authority", req.Authority)
	if err != nil {
		return nil, err
	}
	if err := l.svcCtx.Router.SetPaused(l.ctx, id, authority, req.Paused); err != nil {
		return nil, err
	}
	return NewGetPool(l.ctx, l.svcCtx).GetPool(&types.GetPoolRequest{PoolId: req.PoolId})
}
