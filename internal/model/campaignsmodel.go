package model

import (
	"context"
	"database/sql"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Campaign statuses.
const (
	CampaignDraft   = "draft"
	CampaignSending = "sending"
	CampaignSent    = "sent"
)

// Campaigns mirrors a row of the campaigns table.
type Campaigns struct {
	Id             string         `db:"id"`
	Name           string         `db:"name"`
	Subject        string         `db:"subject"`
	Content        string         `db:"content"`
	Status         string         `db:"status"`
	VariantSubject sql.NullString `db:"variant_subject"`
	VariantASends  int            `db:"variant_a_sends"`
	VariantAOpens  int            `db:"variant_a_opens"`
	VariantAClicks int            `db:"variant_a_clicks"`
	VariantBSends  int            `db:"variant_b_sends"`
	VariantBOpens  int            `db:"variant_b_opens"`
	VariantBClicks int            `db:"variant_b_clicks"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	SentAt         sql.NullTime   `db:"sent_at"`
}

// CampaignsModel is the access interface for the campaigns table.
type CampaignsModel interface {
	Insert(ctx context.Context, data *Campaigns) error
	FindOne(ctx context.Context, id string) (*Campaigns, error)
	List(ctx context.Context, status string, limit int) ([]*Campaigns, error)
	UpdateStatus(ctx context.Context, id, status string) error
	MarkSent(ctx context.Context, id string) error
}

const campaignsRows = "`id`, `name`, `subject`, `content`, `status`, `variant_subject`, " +
	"`variant_a_sends`, `variant_a_opens`, `variant_a_clicks`, " +
	"`variant_b_sends`, `variant_b_opens`, `variant_b_clicks`, " +
	"`created_at`, `updated_at`, `sent_at`"

type defaultCampaignsModel struct {
	conn  sqlx.SqlConn
	table string
}

// NewCampaignsModel returns a model for the campaigns table.
func NewCampaignsModel(conn sqlx.SqlConn) CampaignsModel {
	return &defaultCampaignsModel{conn: conn, table: "`campaigns`"}
}

func (m *defaultCampaignsModel) Insert(ctx context.Context, data *Campaigns) error {
	query := "insert into " + m.table +
		" (`id`, `name`, `subject`, `content`, `status`, `variant_subject`) values (?, ?, ?, ?, ?, ?)"
	_, err := m.conn.ExecCtx(ctx, query, data.Id, data.Name, data.Subject, data.Content, data.Status, data.VariantSubject)
	return err
}

func (m *defaultCampaignsModel) FindOne(ctx context.Context, id string) (*Campaigns, error) {
	var resp Campaigns
	query := "select " + campaignsRows + " from " + m.table + " where `id` = ? limit 1"
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

func (m *defaultCampaignsModel) List(ctx context.Context, status string, limit int) ([]*Campaigns, error) {
	var resp []*Campaigns
	var err error

	if status != "" && status != "all" {
		query := "select " + campaignsRows + " from " + m.table + " where `status` = ? order by `created_at` desc limit ?"
		err = m.conn.QueryRowsCtx(ctx, &resp, query, status, limit)
	} else {
		query := "select " + campaignsRows + " from " + m.table + " order by `created_at` desc limit ?"
		err = m.conn.QueryRowsCtx(ctx, &resp, query, limit)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (m *defaultCampaignsModel) UpdateStatus(ctx context.Context, id, status string) error {
	query := "update " + m.table + " set `status` = ?, `updated_at` = CURRENT_TIMESTAMP where `id` = ?"
	_, err := m.conn.ExecCtx(ctx, query, status, id)
	return err
}

func (m *defaultCampaignsModel) MarkSent(ctx context.Context, id string) error {
	query := "update " + m.table +
		" set `status` = 'sent', `sent_at` = CURRENT_TIMESTAMP, `updated_at` = CURRENT_TIMESTAMP where `id` = ?"
	_, err := m.conn.ExecCtx(ctx, query, id)
	return err
}
