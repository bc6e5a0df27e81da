package model

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Suppression reasons.
const (
	ReasonBounce      = "bounce"
	ReasonComplaint   = "complaint"
	ReasonUnsubscribe = "unsubscribe"
	ReasonManual      = "manual"
)

// Suppressions mirrors a row of the suppressions table. A suppressed address
// never receives campaign mail regardless of subscriber status.
type Suppressions struct {
	Id        string `db:"id"`
	Email     string `db:"email"`
	Reason    string `db:"reason"`
	CreatedAt string `db:"created_at"`
}

// SuppressionsModel is the access interface for the suppressions table.
type SuppressionsModel interface {
	Insert(ctx context.Context, data *Suppressions) error
	IsSuppressed(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, limit int) ([]*Suppressions, error)
	Count(ctx context.Context) (int64, error)
}

const suppressionsRows = "`id`, `email`, `reason`, `created_at`"

type defaultSuppressionsModel struct {
	conn  sqlx.SqlConn
	table string
}

// NewSuppressionsModel returns a model for the suppressions table.
func NewSuppressionsModel(conn sqlx.SqlConn) SuppressionsModel {
	return &defaultSuppressionsModel{conn: conn, table: "`suppressions`"}
}

func (m *defaultSuppressionsModel) Insert(ctx context.Context, data *Suppressions) error {
	query := "insert into " + m.table +
		" (`id`, `email`, `reason`) values (?, ?, ?)" +
		" on conflict(`email`) do update set `reason` = excluded.`reason`"
	_, err := m.conn.ExecCtx(ctx, query, data.Id, data.Email, data.Reason)
	return err
}

func (m *defaultSuppressionsModel) IsSuppressed(ctx context.Context, email string) (bool, error) {
	var count int64
	query := "select count(*) from " + m.table + " where `email` = ?"
	if err := m.conn.QueryRowCtx(ctx, &count, query, email); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *defaultSuppressionsModel) List(ctx context.Context, limit int) ([]*Suppressions, error) {
	var resp []*Suppressions
	query := "select " + suppressionsRows + " from " + m.table + " order by `created_at` desc limit ?"
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *defaultSuppressionsModel) Count(ctx context.Context) (int64, error) {
	var count int64
	err := m.conn.QueryRowCtx(ctx, &count, "select count(*) from "+m.table)
	return count, err
}
