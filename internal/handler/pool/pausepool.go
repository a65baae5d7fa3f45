package pool

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"clmm-gateway/internal/logic/pool"
	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

func PausePool(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.PausePoolRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := pool.NewPausePool(r.Context(), svcCtx)
		resp, err := l.PausePool(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
