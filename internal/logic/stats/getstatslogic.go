// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stats

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetStatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetStatsLogic {
	return &GetStatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetStatsLogic) GetStats() (resp *types.StatsResponse, err error) {
	emailStats, err := l.svcCtx.Emails.Stats(l.ctx)
	if err != nil {
		return nil, errorx.ErrInternal("failed to get email stats: " + err.Error())
	}

	subscribers, err := l.svcCtx.Subscribers.Count(l.ctx, model.SubscriberActive)
	if err != nil {
		return nil, errorx.ErrInternal("failed to count subscribers: " + err.Error())
	}

	campaigns, err := l.svcCtx.Campaigns.List(l.ctx, "all", 1000)
	if err != nil {
		return nil, errorx.ErrInternal("failed to count campaigns: " + err.Error())
	}

	return &types.StatsResponse{
		Total:       emailStats.Total,
		Queued:      emailStats.Queued,
		Sent:        emailStats.Sent,
		Failed:      emailStats.Failed,
		Suppressed:  emailStats.Suppressed,
		Subscribers: subscribers,
		Campaigns:   len(campaigns),
	}, nil
}
