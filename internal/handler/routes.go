// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"github.com/joeblew999/plat-campaign/internal/handler/audit"
	"github.com/joeblew999/plat-campaign/internal/handler/campaign"
	"github.com/joeblew999/plat-campaign/internal/handler/deliverability"
	"github.com/joeblew999/plat-campaign/internal/handler/stats"
	"github.com/joeblew999/plat-campaign/internal/handler/subscriber"
	"github.com/joeblew999/plat-campaign/internal/handler/suppression"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/deliverability/analyze",
				Handler: deliverability.AnalyzeHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/deliverability/fix-images",
				Handler: deliverability.FixImagesHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/campaigns",
				Handler: campaign.CreateCampaignHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/campaigns",
				Handler: campaign.ListCampaignsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/campaigns/:id",
				Handler: campaign.GetCampaignHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/campaigns/:id/send",
				Handler: campaign.SendCampaignHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/campaigns/:id/pick-winner",
				Handler: campaign.PickWinnerHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/subscribers/import",
				Handler: subscriber.ImportSubscribersHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/subscribers",
				Handler: subscriber.ListSubscribersHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/suppressions",
				Handler: suppression.AddSuppressionHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/suppressions",
				Handler: suppression.ListSuppressionsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/audit",
				Handler: audit.ListAuditHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/stats",
				Handler: stats.GetStatsHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/v1"),
	)
}
