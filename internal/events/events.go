// Package events records delivery events and the admin audit trail with
// batched inserts.
package events

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Event type prefixes. Delivery events reference an email row; audit events
// reference the entity the admin acted on.
const (
	TypeDeliverySent   = "delivery.sent"
	TypeDeliveryRetry  = "delivery.retry"
	TypeDeliveryFailed = "delivery.failed"
	TypeDeliverySkip   = "delivery.suppressed"

	TypeAuditCampaignCreated  = "audit.campaign.created"
	TypeAuditCampaignSent     = "audit.campaign.sent"
	TypeAuditSubscriberImport = "audit.subscriber.imported"
	TypeAuditSuppressionAdded = "audit.suppression.added"
	TypeAuditWinnerPicked     = "audit.abtest.winner_picked"
)

// Recorder batches event writes using go-zero's BulkInserter.
type Recorder struct {
	inserter *sqlx.BulkInserter
}

// NewRecorder creates a recorder that batches inserts into email_events.
func NewRecorder(conn sqlx.SqlConn) (*Recorder, error) {
	inserter, err := sqlx.NewBulkInserter(conn,
		"insert into `email_events` (`id`, `email_id`, `event_type`, `timestamp`, `details`) values (?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	inserter.SetResultHandler(func(_ sql.Result, err error) {
		if err != nil {
			logx.Errorf("BulkInserter email_events error: %v", err)
		}
	})

	return &Recorder{inserter: inserter}, nil
}

// Record batches an event insert. subjectID is the email row for delivery
// events and the acted-on entity for audit events.
func (r *Recorder) Record(subjectID, eventType, details string) {
	if err := r.inserter.Insert(
		uuid.New().String(),
		subjectID,
		eventType,
		time.Now().Format(time.RFC3339),
		details,
	); err != nil {
		logx.Errorf("Failed to record event: %v", err)
	}
}

// Flush forces all pending events to be written.
func (r *Recorder) Flush() {
	r.inserter.Flush()
}
