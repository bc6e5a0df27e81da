// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package campaign

import (
	"context"
	"database/sql"
	"strings"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/events"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/joeblew999/plat-campaign/pkg/deliverability"
	"github.com/google/uuid"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateCampaignLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateCampaignLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateCampaignLogic {
	return &CreateCampaignLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateCampaignLogic) CreateCampaign(req *types.CreateCampaignRequest) (resp *types.CreateCampaignResponse, err error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errorx.ErrBadRequest("campaign name is required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, errorx.ErrBadRequest("campaign subject is required")
	}

	report := deliverability.Analyze(req.Content)

	data := &model.Campaigns{
		Id:      uuid.New().String(),
		Name:    req.Name,
		Subject: req.Subject,
		Content: req.Content,
		Status:  model.CampaignDraft,
	}
	if req.VariantSubject != "" {
		data.VariantSubject = sql.NullString{String: req.VariantSubject, Valid: true}
	}

	if err := l.svcCtx.Campaigns.Insert(l.ctx, data); err != nil {
		return nil, errorx.ErrInternal("failed to create campaign: " + err.Error())
	}

	l.svcCtx.Events.Record(data.Id, events.TypeAuditCampaignCreated, "name="+req.Name)

	return &types.CreateCampaignResponse{
		Campaign: types.Campaign{
			Id:             data.Id,
			Name:           data.Name,
			Subject:        data.Subject,
			Status:         data.Status,
			VariantSubject: req.VariantSubject,
			Score:          report.Score,
		},
		Report: toAnalyzeResponse(report),
	}, nil
}

func toAnalyzeResponse(report deliverability.Report) types.AnalyzeResponse {
	return types.AnalyzeResponse{
		Score:                 report.Score,
		SpamWarnings:          report.SpamWarnings,
		CompatibilityWarnings: report.CompatibilityWarnings,
		AccessibilityWarnings: report.AccessibilityWarnings,
	}
}

func toCampaign(c *model.Campaigns, score int) types.Campaign {
	out := types.Campaign{
		Id:             c.Id,
		Name:           c.Name,
		Subject:        c.Subject,
		Status:         c.Status,
		VariantSubject: model.NullStringValue(c.VariantSubject),
		Score:          score,
		CreatedAt:      c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if c.SentAt.Valid {
		out.SentAt = c.SentAt.Time.Format("2006-01-02 15:04:05")
	}
	return out
}
