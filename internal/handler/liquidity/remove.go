package liquidity

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"clmm-gateway/internal/logic/liquidity"
	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
)

func Remove(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LiquidityRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := liquidity.NewLiquidity(r.Context(), svcCtx)
		resp, err := l.Remove(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
