// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package subscriber

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListSubscribersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListSubscribersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListSubscribersLogic {
	return &ListSubscribersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListSubscribersLogic) ListSubscribers(req *types.ListSubscribersRequest) (resp *types.ListSubscribersResponse, err error) {
	rows, err := l.svcCtx.Subscribers.ListActive(l.ctx, req.Limit)
	if err != nil {
		return nil, errorx.ErrInternal("failed to list subscribers: " + err.Error())
	}

	subscribers := make([]types.Subscriber, 0, len(rows))
	for _, row := range rows {
		subscribers = append(subscribers, types.Subscriber{
			Email:     row.Email,
			Name:      row.Name,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
		})
	}

	return &types.ListSubscribersResponse{
		Subscribers: subscribers,
		Count:       len(subscribers),
	}, nil
}
