// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package campaign

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/events"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/joeblew999/plat-campaign/pkg/abtest"

	"github.com/zeromicro/go-zero/core/logx"
)

type PickWinnerLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPickWinnerLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PickWinnerLogic {
	return &PickWinnerLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PickWinnerLogic) PickWinner(req *types.PickWinnerRequest) (resp *types.PickWinnerResponse, err error) {
	row, err := l.svcCtx.Campaigns.FindOne(l.ctx, req.Id)
	if err == model.ErrNotFound {
		return nil, errorx.ErrNotFound("campaign not found: " + req.Id)
	}
	if err != nil {
		return nil, errorx.ErrInternal("failed to load campaign: " + err.Error())
	}
	if !row.VariantSubject.Valid {
		return nil, errorx.ErrBadRequest("campaign has no subject variant to test")
	}

	result := abtest.PickWinner(
		abtest.VariantStats{Sends: row.VariantASends, Opens: row.VariantAOpens, Clicks: row.VariantAClicks},
		abtest.VariantStats{Sends: row.VariantBSends, Opens: row.VariantBOpens, Clicks: row.VariantBClicks},
	)

	if result.Conclusive {
		l.svcCtx.Events.Record(row.Id, events.TypeAuditWinnerPicked, "winner="+result.Winner)
	}

	return &types.PickWinnerResponse{
		Winner:     result.Winner,
		Conclusive: result.Conclusive,
		Reason:     result.Reason,
		OpenRateA:  result.OpenRateA,
		OpenRateB:  result.OpenRateB,
		ClickRateA: result.ClickRateA,
		ClickRateB: result.ClickRateB,
	}, nil
}
