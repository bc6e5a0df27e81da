// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package campaign

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joeblew999/plat-campaign/internal/errorx"
	"github.com/joeblew999/plat-campaign/internal/events"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/joeblew999/plat-campaign/pkg/queue"

	"github.com/zeromicro/go-zero/core/logx"
)

const maxSendListSize = 100000

type SendCampaignLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendCampaignLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendCampaignLogic {
	return &SendCampaignLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SendCampaignLogic) SendCampaign(req *types.SendCampaignRequest) (resp *types.SendCampaignResponse, err error) {
	row, err := l.svcCtx.Campaigns.FindOne(l.ctx, req.Id)
	if err == model.ErrNotFound {
		return nil, errorx.ErrNotFound("campaign not found: " + req.Id)
	}
	if err != nil {
		return nil, errorx.ErrInternal("failed to load campaign: " + err.Error())
	}
	if row.Status != model.CampaignDraft {
		return nil, errorx.ErrConflict("campaign already " + row.Status)
	}

	var scheduledAt time.Time
	if req.ScheduledAt != "" {
		scheduledAt, err = time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			return nil, errorx.ErrBadRequest("scheduledAt must be RFC3339: " + err.Error())
		}
	}

	subscribers, err := l.svcCtx.Subscribers.ListActive(l.ctx, maxSendListSize)
	if err != nil {
		return nil, errorx.ErrInternal("failed to load subscribers: " + err.Error())
	}
	if len(subscribers) == 0 {
		return nil, errorx.ErrBadRequest("no active subscribers to send to")
	}

	// Suppressions are filtered here so the queued job only ever carries
	// sendable addresses; the delivery engine re-checks at send time.
	recipients := make([]string, 0, len(subscribers))
	suppressed := 0
	for _, sub := range subscribers {
		hit, err := l.svcCtx.Suppressions.IsSuppressed(l.ctx, sub.Email)
		if err != nil {
			return nil, errorx.ErrInternal("suppression check failed: " + err.Error())
		}
		if hit {
			suppressed++
			continue
		}
		recipients = append(recipients, sub.Email)
	}
	if len(recipients) == 0 {
		return nil, errorx.ErrBadRequest("all recipients are suppressed")
	}

	job := queue.SendJob{
		CampaignID:  row.Id,
		Subject:     row.Subject,
		Content:     row.Content,
		Recipients:  recipients,
		MaxAttempts: l.svcCtx.Config.Delivery.MaxRetries,
	}
	if !scheduledAt.IsZero() {
		job.ScheduledAt = &scheduledAt
	}

	jobID, err := l.svcCtx.Queue.Enqueue(l.ctx, job)
	if err != nil {
		return nil, errorx.ErrInternal("failed to enqueue campaign: " + err.Error())
	}

	tracking := &model.Emails{
		Id:          jobID,
		CampaignId:  sql.NullString{String: row.Id, Valid: true},
		Recipients:  model.EncodeRecipients(recipients),
		Subject:     row.Subject,
		Status:      model.EmailQueued,
		MaxAttempts: job.MaxAttempts,
	}
	if !scheduledAt.IsZero() {
		tracking.ScheduledAt = sql.NullTime{Time: scheduledAt, Valid: true}
	}
	if err := l.svcCtx.Emails.Insert(l.ctx, tracking); err != nil {
		return nil, errorx.ErrInternal("failed to record send: " + err.Error())
	}

	if err := l.svcCtx.Campaigns.UpdateStatus(l.ctx, row.Id, model.CampaignSending); err != nil {
		return nil, errorx.ErrInternal("failed to update campaign status: " + err.Error())
	}

	l.svcCtx.Events.Record(row.Id, events.TypeAuditCampaignSent,
		fmt.Sprintf("recipients=%d suppressed=%d", len(recipients), suppressed))

	return &types.SendCampaignResponse{
		Id:         row.Id,
		JobId:      jobID,
		Status:     "queued",
		Recipients: len(recipients),
		Suppressed: suppressed,
	}, nil
}
