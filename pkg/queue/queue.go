// Package queue provides campaign send queue operations using goqite.
package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"maragu.dev/goqite"
)

// DefaultMaxAttempts is the delivery attempt limit applied when a job does
// not set its own.
const DefaultMaxAttempts = 3

// SendJob is one batch of a campaign send: the rendered-ready content plus
// the recipients it targets. Large campaigns are split into many jobs so a
// single SMTP failure only retries its own batch.
type SendJob struct {
	ID          string     `json:"id"`
	CampaignID  string     `json:"campaign_id"`
	Subject     string     `json:"subject"`
	Content     string     `json:"content"`
	Recipients  []string   `json:"recipients"`
	Attempts    int        `json:"attempts"`
	MaxAttempts int        `json:"max_attempts"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Message is the queue receipt handle callers use to settle a job.
type Message = goqite.Message

// Queue manages send jobs using goqite on top of SQLite.
type Queue struct {
	queue *goqite.Queue
	name  string
}

// New creates a send queue, setting up the goqite schema if needed.
func New(db *sql.DB, name string) (*Queue, error) {
	if err := goqite.Setup(context.Background(), db); err != nil {
		return nil, fmt.Errorf("setup goqite: %w", err)
	}

	q := goqite.New(goqite.NewOpts{
		DB:   db,
		Name: name,
	})

	return &Queue{queue: q, name: name}, nil
}

// Enqueue adds a send job to the queue. A scheduled time in the future
// becomes a goqite delivery delay.
func (q *Queue) Enqueue(ctx context.Context, job SendJob) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.MaxAttempts == 0 {
		job.MaxAttempts = DefaultMaxAttempts
	}
	job.CreatedAt = time.Now()

	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	var delay time.Duration
	if job.ScheduledAt != nil && job.ScheduledAt.After(time.Now()) {
		delay = time.Until(*job.ScheduledAt)
	}

	if err := q.queue.Send(ctx, goqite.Message{
		Body:  body,
		Delay: delay,
	}); err != nil {
		return "", fmt.Errorf("send to queue: %w", err)
	}

	return job.ID, nil
}

// Requeue puts a job back with a delay, used for retry backoff. The job's
// attempt counter travels in the message body.
func (q *Queue) Requeue(ctx context.Context, job *SendJob, delay time.Duration) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	return q.queue.Send(ctx, goqite.Message{
		Body:  body,
		Delay: delay,
	})
}

// Receive gets the next job from the queue. Returns (nil, nil, nil) when no
// work is available.
func (q *Queue) Receive(ctx context.Context) (*SendJob, *goqite.Message, error) {
	msg, err := q.queue.Receive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, nil
	}

	var job SendJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return nil, msg, fmt.Errorf("unmarshal job: %w", err)
	}

	return &job, msg, nil
}

// Extend extends the visibility timeout for a message being processed.
func (q *Queue) Extend(ctx context.Context, msg *goqite.Message, d time.Duration) error {
	return q.queue.Extend(ctx, msg.ID, d)
}

// Delete removes a message from the queue once its job is settled.
func (q *Queue) Delete(ctx context.Context, msg *goqite.Message) error {
	return q.queue.Delete(ctx, msg.ID)
}
