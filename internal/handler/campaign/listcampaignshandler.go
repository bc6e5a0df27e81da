// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package campaign

import (
	"net/http"

	"github.com/joeblew999/plat-campaign/internal/logic/campaign"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListCampaignsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListCampaignsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := campaign.NewListCampaignsLogic(r.Context(), svcCtx)
		resp, err := l.ListCampaigns(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
