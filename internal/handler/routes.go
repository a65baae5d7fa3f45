package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"clmm-gateway/internal/handler/liquidity"
	"clmm-gateway/internal/handler/pool"
	"clmm-gateway/internal/handler/trade"
	"clmm-gateway/internal/svc"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/pools",
			Handler: pool.InitPool(svcCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/pools/:poolId",
			Handler: pool.GetPool(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/pools/pause",
			Handler: pool.PausePool(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/pools/refresh",
			Handler: pool.RefreshPool(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/swap",
			Handler: trade.Swap(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/liquidity/add",
			Handler: liquidity.Add(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/liquidity/remove",
			Handler: liquidity.Remove(svcCtx),
		},
	})
}
