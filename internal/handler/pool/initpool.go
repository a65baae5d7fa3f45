package pool

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"clmm-gateway/internal/logic/pool"
	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

func InitPool(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.InitPoolRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := pool.NewInitPool(r.Context(), svcCtx)
		resp, err := l.InitPool(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
