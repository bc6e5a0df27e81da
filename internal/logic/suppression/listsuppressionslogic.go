// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package suppression

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListSuppressionsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListSuppressionsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListSuppressionsLogic {
	return &ListSuppressionsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListSuppressionsLogic) ListSuppressions(req *types.ListSuppressionsRequest) (resp *types.ListSuppressionsResponse, err error) {
	rows, err := l.svcCtx.Suppressions.List(l.ctx, req.Limit)
	if err != nil {
		return nil, errorx.ErrInternal("failed to list suppressions: " + err.Error())
	}

	suppressions := make([]types.Suppression, 0, len(rows))
	for _, row := range rows {
		suppressions = append(suppressions, types.Suppression{
			Email:     row.Email,
			Reason:    row.Reason,
			CreatedAt: row.CreatedAt,
		})
	}

	return &types.ListSuppressionsResponse{
		Suppressions: suppressions,
		Count:        len(suppressions),
	}, nil
}
