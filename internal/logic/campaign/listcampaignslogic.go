// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package campaign

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/joeblew999/plat-campaign/pkg/deliverability"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListCampaignsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListCampaignsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListCampaignsLogic {
	return &ListCampaignsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListCampaignsLogic) ListCampaigns(req *types.ListCampaignsRequest) (resp *types.ListCampaignsResponse, err error) {
	rows, err := l.svcCtx.Campaigns.List(l.ctx, req.Status, req.Limit)
	if err != nil {
		return nil, errorx.ErrInternal("failed to list campaigns: " + err.Error())
	}

	campaigns := make([]types.Campaign, 0, len(rows))
	for _, row := range rows {
		report := deliverability.Analyze(row.Content)
		campaigns = append(campaigns, toCampaign(row, report.Score))
	}

	return &types.ListCampaignsResponse{
		Campaigns: campaigns,
		Count:     len(campaigns),
	}, nil
}
