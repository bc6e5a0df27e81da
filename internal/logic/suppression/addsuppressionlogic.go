// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package suppression

import (
	"context"
	"strings"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/events"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/google/uuid"

	"github.com/zeromicro/go-zero/core/logx"
)

type AddSuppressionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddSuppressionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddSuppressionLogic {
	return &AddSuppressionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddSuppressionLogic) AddSuppression(req *types.AddSuppressionRequest) (resp *types.AddSuppressionResponse, err error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errorx.ErrBadRequest("a valid email address is required")
	}

	reason := req.Reason
	if reason == "" {
		reason = model.ReasonManual
	}

	err = l.svcCtx.Suppressions.Insert(l.ctx, &model.Suppressions{
		Id:     uuid.New().String(),
		Email:  email,
		Reason: reason,
	})
	if err != nil {
		return nil, errorx.ErrInternal("failed to add suppression: " + err.Error())
	}

	l.svcCtx.Events.Record(email, events.TypeAuditSuppressionAdded, "reason="+reason)

	return &types.AddSuppressionResponse{
		Email:  email,
		Reason: reason,
	}, nil
}
