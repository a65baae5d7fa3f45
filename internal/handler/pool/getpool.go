package pool

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"clmm-gateway/internal/logic/pool"
	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

func GetPool(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetPoolRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := pool.NewGetPool(r.Context(), svcCtx)
		resp, err := l.GetPool(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
