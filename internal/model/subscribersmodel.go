package model

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Subscriber statuses.
const (
	SubscriberActive       = "active"
	SubscriberUnsubscribed = "unsubscribed"
)

// Subscribers mirrors a row of the subscribers table.
type Subscribers struct {
	Id        string `db:"id"`
	Email     string `db:"email"`
	Name      string `db:"name"`
	Status    string `db:"status"`
	CreatedAt string `db:"created_at"`
}

// SubscribersModel is the access interface for the subscribers table.
type SubscribersModel interface {
	Upsert(ctx context.Context, data *Subscribers) error
	FindByEmail(ctx context.Context, email string) (*Subscribers, error)
	ListActive(ctx context.Context, limit int) ([]*Subscribers, error)
	Count(ctx context.Context, status string) (int64, error)
	Unsubscribe(ctx context.Context, email string) error
}

const subscribersRows = "`id`, `email`, `name`, `status`, `created_at`"

type defaultSubscribersModel struct {
	conn  sqlx.SqlConn
	table string
}

// NewSubscribersModel returns a model for the subscribers table.
func NewSubscribersModel(conn sqlx.SqlConn) SubscribersModel {
	return &defaultSubscribersModel{conn: conn, table: "`subscribers`"}
}

func (m *defaultSubscribersModel) Upsert(ctx context.Context, data *Subscribers) error {
	query := "insert into " + m.table +
		" (`id`, `email`, `name`, `status`) values (?, ?, ?, ?)" +
		" on conflict(`email`) do update set `name` = excluded.`name`"
	_, err := m.conn.ExecCtx(ctx, query, data.Id, data.Email, data.Name, data.Status)
	return err
}

func (m *defaultSubscribersModel) FindByEmail(ctx context.Context, email string) (*Subscribers, error) {
	var resp Subscribers
	query := "select " + subscribersRows + " from " + m.table + " where `email` = ? limit 1"
	err := m.conn.QueryRowCtx(ctx, &resp, query, email)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultSubscribersModel) ListActive(ctx context.Context, limit int) ([]*Subscribers, error) {
	var resp []*Subscribers
	query := "select " + subscribersRows + " from " + m.table + " where `status` = ? order by `email` limit ?"
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, SubscriberActive, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *defaultSubscribersModel) Count(ctx context.Context, status string) (int64, error) {
	var count int64
	var err error
	if status != "" && status != "all" {
		err = m.conn.QueryRowCtx(ctx, &count, "select count(*) from "+m.table+" where `status` = ?", status)
	} else {
		err = m.conn.QueryRowCtx(ctx, &count, "select count(*) from "+m.table)
	}
	return count, err
}

func (m *defaultSubscribersModel) Unsubscribe(ctx context.Context, email string) error {
	query := "update " + m.table + " set `status` = ? where `email` = ?"
	_, err := m.conn.ExecCtx(ctx, query, SubscriberUnsubscribed, email)
	return err
}
