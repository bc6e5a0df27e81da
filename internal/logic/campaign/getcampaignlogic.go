// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package campaign

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/joeblew999/plat-campaign/pkg/deliverability"
	"github.com/joeblew999/plat-campaign/pkg/template"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetCampaignLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetCampaignLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetCampaignLogic {
	return &GetCampaignLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetCampaignLogic) GetCampaign(req *types.GetCampaignRequest) (resp *types.GetCampaignResponse, err error) {
	row, err := l.svcCtx.Campaigns.FindOne(l.ctx, req.Id)
	if err == model.ErrNotFound {
		return nil, errorx.ErrNotFound("campaign not found: " + req.Id)
	}
	if err != nil {
		return nil, errorx.ErrInternal("failed to load campaign: " + err.Error())
	}

	report := deliverability.Analyze(row.Content)

	// Preview render with canonical merge data; a broken merge tag surfaces
	// here instead of mid-send.
	preview, err := l.svcCtx.Renderer.RenderString(row.Content, template.PreviewData())
	if err != nil {
		l.Errorf("preview render failed for %s: %v", row.Id, err)
		preview = row.Content
	}

	return &types.GetCampaignResponse{
		Campaign: toCampaign(row, report.Score),
		Content:  row.Content,
		Preview:  preview,
		Report:   toAnalyzeResponse(report),
	}, nil
}
