// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package deliverability

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/joeblew999/plat-campaign/pkg/deliverability"

	"github.com/zeromicro/go-zero/core/logx"
)

type AnalyzeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyzeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyzeLogic {
	return &AnalyzeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyzeLogic) Analyze(req *types.AnalyzeRequest) (resp *types.AnalyzeResponse, err error) {
	report := deliverability.Analyze(req.Content)

	return &types.AnalyzeResponse{
		Score:                 report.Score,
		SpamWarnings:          report.SpamWarnings,
		CompatibilityWarnings: report.CompatibilityWarnings,
		AccessibilityWarnings: report.AccessibilityWarnings,
	}, nil
}
