// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package audit

import (
	"net/http"

	"github.com/joeblew999/plat-campaign/internal/logic/audit"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListAuditHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListAuditRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := audit.NewListAuditLogic(r.Context(), svcCtx)
		resp, err := l.ListAudit(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
