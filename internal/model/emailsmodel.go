package model

import (
	"context"
	"database/sql"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Email send statuses.
const (
	EmailQueued     = "queued"
	EmailSent       = "sent"
	EmailFailed     = "failed"
	EmailSuppressed = "suppressed"
)

// Emails mirrors a row of the emails table: one tracking record per queued
// send job.
type Emails struct {
	Id          string         `db:"id"`
	CampaignId  sql.NullString `db:"campaign_id"`
	Recipients  string         `db:"recipients"` // JSON array
	Subject     string         `db:"subject"`
	Status      string         `db:"status"`
	Attempts    int            `db:"attempts"`
	MaxAttempts int            `db:"max_attempts"`
	ScheduledAt sql.NullTime   `db:"scheduled_at"`
	SentAt      sql.NullTime   `db:"sent_at"`
	MessageId   sql.NullString `db:"message_id"`
	Error       sql.NullString `db:"error"`
	CreatedAt   string         `db:"created_at"`
}

// EmailStats aggregates send outcomes for the stats endpoint and dashboard.
type EmailStats struct {
	Total      int64 `db:"total"`
	Queued     int64 `db:"queued"`
	Sent       int64 `db:"sent"`
	Failed     int64 `db:"failed"`
	Suppressed int64 `db:"suppressed"`
}

// EmailsModel is the access interface for the emails table.
type EmailsModel interface {
	Insert(ctx context.Context, data *Emails) error
	FindOne(ctx context.Context, id string) (*Emails, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]*Emails, error)
	MarkSent(ctx context.Context, id, messageID string) error
	MarkRetry(ctx context.Context, id string, attempts int, errMsg string) error
	MarkFailed(ctx context.Context, id string, errMsg string) error
	MarkSuppressed(ctx context.Context, id string) error
	Stats(ctx context.Context) (*EmailStats, error)
}

const emailsRows = "`id`, `campaign_id`, `recipients`, `subject`, `status`, " +
	"`attempts`, `max_attempts`, `scheduled_at`, `sent_at`, `message_id`, `error`, `created_at`"

type defaultEmailsModel struct {
	conn  sqlx.SqlConn
	table string
}

// NewEmailsModel returns a model for the emails table.
func NewEmailsModel(conn sqlx.SqlConn) EmailsModel {
	return &defaultEmailsModel{conn: conn, table: "`emails`"}
}

func (m *defaultEmailsModel) Insert(ctx context.Context, data *Emails) error {
	query := "insert into " + m.table +
		" (`id`, `campaign_id`, `recipients`, `subject`, `status`, `attempts`, `max_attempts`, `scheduled_at`)" +
		" values (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := m.conn.ExecCtx(ctx, query,
		data.Id, data.CampaignId, data.Recipients, data.Subject,
		data.Status, data.Attempts, data.MaxAttempts, data.ScheduledAt)
	return err
}

func (m *defaultEmailsModel) FindOne(ctx context.Context, id string) (*Emails, error) {
	var resp Emails
	query := "select " + emailsRows + " from " + m.table + " where `id` = ? limit 1"
	err := m.conn.QueryRowCtx(ctx, &resp, query, id)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultEmailsModel) ListByStatus(ctx context.Context, status string, limit int) ([]*Emails, error) {
	var resp []*Emails
	var err error

	if status != "" && status != "all" {
		query := "select " + emailsRows + " from " + m.table + " where `status` = ? order by `created_at` desc limit ?"
		err = m.conn.QueryRowsCtx(ctx, &resp, query, status, limit)
	} else {
		query := "select " + emailsRows + " from " + m.table + " order by `created_at` desc limit ?"
		err = m.conn.QueryRowsCtx(ctx, &resp, query, limit)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (m *defaultEmailsModel) MarkSent(ctx context.Context, id, messageID string) error {
	query := "update " + m.table +
		" set `status` = 'sent', `sent_at` = CURRENT_TIMESTAMP, `message_id` = ?, `error` = NULL where `id` = ?"
	_, err := m.conn.ExecCtx(ctx, query, messageID, id)
	return err
}

func (m *defaultEmailsModel) MarkRetry(ctx context.Context, id string, attempts int, errMsg string) error {
	query := "update " + m.table + " set `attempts` = ?, `error` = ? where `id` = ?"
	_, err := m.conn.ExecCtx(ctx, query, attempts, errMsg, id)
	return err
}

func (m *defaultEmailsModel) MarkFailed(ctx context.Context, id string, errMsg string) error {
	query := "update " + m.table + " set `status` = 'failed', `error` = ? where `id` = ?"
	_, err := m.conn.ExecCtx(ctx, query, errMsg, id)
	return err
}

func (m *defaultEmailsModel) MarkSuppressed(ctx context.Context, id string) error {
	query := "update " + m.table + " set `status` = 'suppressed' where `id` = ?"
	_, err := m.conn.ExecCtx(ctx, query, id)
	return err
}

func (m *defaultEmailsModel) Stats(ctx context.Context) (*EmailStats, error) {
	var resp EmailStats
	query := "select count(*) as total," +
		" coalesce(sum(case when `status` = 'queued' then 1 else 0 end), 0) as queued," +
		" coalesce(sum(case when `status` = 'sent' then 1 else 0 end), 0) as sent," +
		" coalesce(sum(case when `status` = 'failed' then 1 else 0 end), 0) as failed," +
		" coalesce(sum(case when `status` = 'suppressed' then 1 else 0 end), 0) as suppressed" +
		" from " + m.table
	if err := m.conn.QueryRowCtx(ctx, &resp, query); err != nil {
		return nil, err
	}
	return &resp, nil
}
