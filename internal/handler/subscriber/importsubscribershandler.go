// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package subscriber

import (
	"net/http"

	"github.com/joeblew999/plat-campaign/internal/logic/subscriber"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ImportSubscribersHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ImportSubscribersRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := subscriber.NewImportSubscribersLogic(r.Context(), svcCtx)
		resp, err := l.ImportSubscribers(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
