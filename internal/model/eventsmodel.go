package model

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// EmailEvents mirrors a row of the email_events table. Writes go through the
// batched recorder in internal/events; this model serves reads.
type EmailEvents struct {
	Id        string `db:"id"`
	EmailId   string `db:"email_id"`
	EventType string `db:"event_type"`
	Timestamp string `db:"timestamp"`
	Details   string `db:"details"`
}

// EmailEventsModel is the read interface for the email_events table.
type EmailEventsModel interface {
	List(ctx context.Context, eventType string, limit, offset int) ([]*EmailEvents, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*EmailEvents, error)
}

const emailEventsRows = "`id`, `email_id`, `event_type`, `timestamp`, `details`"

type defaultEmailEventsModel struct {
	conn  sqlx.SqlConn
	table string
}

// NewEmailEventsModel returns a model for the email_events table.
func NewEmailEventsModel(conn sqlx.SqlConn) EmailEventsModel {
	return &defaultEmailEventsModel{conn: conn, table: "`email_events`"}
}

func (m *defaultEmailEventsModel) List(ctx context.Context, eventType string, limit, offset int) ([]*EmailEvents, error) {
	var resp []*EmailEvents
	var err error

	if eventType != "" && eventType != "all" {
		query := "select " + emailEventsRows + " from " + m.table +
			" where `event_type` like ? order by `timestamp` desc limit ? offset ?"
		err = m.conn.QueryRowsCtx(ctx, &resp, query, eventType+"%", limit, offset)
	} else {
		query := "select " + emailEventsRows + " from " + m.table + " order by `timestamp` desc limit ? offset ?"
		err = m.conn.QueryRowsCtx(ctx, &resp, query, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (m *defaultEmailEventsModel) ListBySubject(ctx context.Context, subjectID string) ([]*EmailEvents, error) {
	var resp []*EmailEvents
	query := "select " + emailEventsRows + " from " + m.table + " where `email_id` = ? order by `timestamp`"
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, subjectID); err != nil {
		return nil, err
	}
	return resp, nil
}
