// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package subscriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/events"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/google/uuid"

	"github.com/zeromicro/go-zero/core/logx"
)

type ImportSubscribersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewImportSubscribersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ImportSubscribersLogic {
	return &ImportSubscribersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ImportSubscribersLogic) ImportSubscribers(req *types.ImportSubscribersRequest) (resp *types.ImportSubscribersResponse, err error) {
	if len(req.Subscribers) == 0 {
		return nil, errorx.ErrBadRequest("no subscribers to import")
	}

	imported, skipped := 0, 0
	for _, in := range req.Subscribers {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email == "" || !strings.Contains(email, "@") {
			skipped++
			continue
		}

		err := l.svcCtx.Subscribers.Upsert(l.ctx, &model.Subscribers{
			Id:     uuid.New().String(),
			Email:  email,
			Name:   strings.TrimSpace(in.Name),
			Status: model.SubscriberActive,
		})
		if err != nil {
			l.Errorf("import failed for %s: %v", email, err)
			skipped++
			continue
		}
		imported++
	}

	l.svcCtx.Events.Record("import", events.TypeAuditSubscriberImport,
		fmt.Sprintf("imported=%d skipped=%d", imported, skipped))

	return &types.ImportSubscribersResponse{
		Imported: imported,
		Skipped:  skipped,
	}, nil
}
