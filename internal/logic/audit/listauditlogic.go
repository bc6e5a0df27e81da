// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package audit

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListAuditLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListAuditLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListAuditLogic {
	return &ListAuditLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListAuditLogic) ListAudit(req *types.ListAuditRequest) (resp *types.ListAuditResponse, err error) {
	rows, err := l.svcCtx.EmailEvents.List(l.ctx, req.Type, req.Limit, req.Offset)
	if err != nil {
		return nil, errorx.ErrInternal("failed to list events: " + err.Error())
	}

	auditEvents := make([]types.AuditEvent, 0, len(rows))
	for _, row := range rows {
		auditEvents = append(auditEvents, types.AuditEvent{
			Id:        row.Id,
			SubjectId: row.EmailId,
			EventType: row.EventType,
			Timestamp: row.Timestamp,
			Details:   row.Details,
		})
	}

	return &types.ListAuditResponse{
		Events: auditEvents,
		Count:  len(auditEvents),
	}, nil
}
