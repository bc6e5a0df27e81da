// Package delivery drains the campaign send queue and delivers mail over
// SMTP with retry and suppression enforcement.
package delivery

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/joeblew999/plat-campaign/internal/events"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/pkg/mail"
	"github.com/joeblew999/plat-campaign/pkg/queue"
	"github.com/joeblew999/plat-campaign/pkg/template"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/time/rate"
)

// Config holds delivery engine configuration.
type Config struct {
	MaxRetries   int
	RetryBackoff time.Duration
	MaxBackoff   time.Duration
	RateLimit    int // emails per minute
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:   3,
		RetryBackoff: 5 * time.Minute,
		MaxBackoff:   4 * time.Hour,
		RateLimit:    60,
	}
}

// Stores bundles the persistence the engine touches per job.
type Stores struct {
	Emails       model.EmailsModel
	Campaigns    model.CampaignsModel
	Subscribers  model.SubscribersModel
	Suppressions model.SuppressionsModel
}

// Engine pulls send jobs off the queue and delivers them with retry logic.
type Engine struct {
	config      Config
	queue       *queue.Queue
	stores      Stores
	events      *events.Recorder
	renderer    *template.Renderer
	smtpConfig  mail.Config
	rateLimiter *rate.Limiter
	running     *syncx.AtomicBool

	ctx    context.Context
	cancel context.CancelFunc
	group  *threading.RoutineGroup
}

// NewEngine creates a new delivery engine.
func NewEngine(q *queue.Queue, stores Stores, ev *events.Recorder, r *template.Renderer, smtp mail.Config, cfg Config) *Engine {
	// Rate limiter: N emails per minute
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), 1)

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		config:      cfg,
		queue:       q,
		stores:      stores,
		events:      ev,
		renderer:    r,
		smtpConfig:  smtp,
		rateLimiter: limiter,
		running:     syncx.NewAtomicBool(),
		ctx:         ctx,
		cancel:      cancel,
		group:       threading.NewRoutineGroup(),
	}
}

// Start starts the delivery engine with the specified number of workers.
func (e *Engine) Start(workers int) {
	if !e.running.CompareAndSwap(false, true) {
		return // Already running
	}

	logx.Infow("Delivery engine started", logx.Field("workers", workers))
	for i := 0; i < workers; i++ {
		e.group.RunSafe(func() { e.worker() })
	}
}

// Stop gracefully stops the delivery engine.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return // Already stopped
	}

	logx.Info("Delivery engine stopping, waiting for workers")
	e.cancel()
	e.group.Wait()
	logx.Info("Delivery engine stopped")
}

func (e *Engine) worker() {
	backoff := 100 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		select {
		case <-e.ctx.Done():
			return
		default:
			job, msg, err := e.queue.Receive(e.ctx)
			if err != nil {
				time.Sleep(backoff)
				if backoff < maxBackoff {
					backoff = min(backoff*2, maxBackoff)
				}
				continue
			}
			if job == nil {
				// No work available — adaptive backoff
				time.Sleep(backoff)
				if backoff < maxBackoff {
					backoff = min(backoff*2, maxBackoff)
				}

				e.updateQueueDepth()
				continue
			}

			backoff = 100 * time.Millisecond // Reset on work found
			e.processJob(job, msg)
		}
	}
}

func (e *Engine) processJob(job *queue.SendJob, msg *queue.Message) {
	// Enrich context with per-job fields — all logx calls with ctx include
	// these automatically
	ctx := logx.ContextWithFields(e.ctx,
		logx.Field("job_id", job.ID),
		logx.Field("campaign_id", job.CampaignID),
		logx.Field("recipients", len(job.Recipients)),
	)

	// Panic recovery: mark job failed and record metric if processJob panics
	defer rescue.RecoverCtx(ctx, func() {
		emailsFailed.Inc("panic")
		e.stores.Emails.MarkFailed(ctx, job.ID, "panic during delivery")
		e.queue.Delete(ctx, msg)
	})

	logx.WithContext(ctx).Info("Processing campaign send")

	// Large batches outlive the default visibility window at our send rate;
	// buy enough time for every recipient plus slack.
	if len(job.Recipients) > 10 {
		perSend := time.Minute / time.Duration(e.config.RateLimit)
		e.queue.Extend(ctx, msg, time.Duration(len(job.Recipients))*perSend+time.Minute)
	}

	start := time.Now()

	var sendErrors []string
	delivered, skipped := 0, 0
	for _, recipient := range job.Recipients {
		// Apply rate limiting
		if err := e.rateLimiter.Wait(ctx); err != nil {
			e.handleError(ctx, job, msg, err)
			return
		}

		// Re-check suppressions at send time: the list may have grown since
		// the job was queued.
		suppressed, err := e.stores.Suppressions.IsSuppressed(ctx, recipient)
		if err == nil && suppressed {
			skipped++
			emailsSuppressed.Inc()
			e.events.Record(job.ID, events.TypeDeliverySkip, recipient)
			continue
		}

		html, err := e.renderContent(ctx, job, recipient)
		if err != nil {
			e.handleError(ctx, job, msg, fmt.Errorf("render for %s: %w", recipient, err))
			return
		}

		if err := mail.Send(e.smtpConfig, recipient, job.Subject, html); err != nil {
			sendErrors = append(sendErrors, fmt.Sprintf("send to %s: %v", recipient, err))
			continue
		}
		delivered++
	}

	if len(sendErrors) > 0 {
		e.handleError(ctx, job, msg, fmt.Errorf("%s", strings.Join(sendErrors, "; ")))
		return
	}

	// Success
	e.stores.Emails.MarkSent(ctx, job.ID, "")
	if job.CampaignID != "" {
		e.stores.Campaigns.MarkSent(ctx, job.CampaignID)
	}
	emailsSent.Add(float64(delivered))
	deliveryDuration.Observe(int64(time.Since(start).Milliseconds()))
	e.events.Record(job.ID, events.TypeDeliverySent,
		fmt.Sprintf("delivered=%d suppressed=%d", delivered, skipped))
	e.queue.Delete(ctx, msg)

	logx.WithContext(ctx).Infow("Campaign send complete",
		logx.Field("delivered", delivered),
		logx.Field("suppressed", skipped),
	)
}

// renderContent merges per-recipient fields into the campaign content.
func (e *Engine) renderContent(ctx context.Context, job *queue.SendJob, recipient string) (string, error) {
	data := template.MergeData{
		Email:          recipient,
		UnsubscribeURL: fmt.Sprintf("mailto:%s?subject=unsubscribe", e.smtpConfig.FromEmail),
		Timestamp:      time.Now(),
	}
	if sub, err := e.stores.Subscribers.FindByEmail(ctx, recipient); err == nil {
		data.Name = sub.Name
	}

	return e.renderer.RenderString(job.Content, data)
}

func (e *Engine) handleError(ctx context.Context, job *queue.SendJob, msg *queue.Message, err error) {
	attempts := job.Attempts + 1
	maxAttempts := job.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = e.config.MaxRetries
	}

	if isPermanentFailure(err) || attempts >= maxAttempts {
		e.stores.Emails.MarkFailed(ctx, job.ID, err.Error())
		reason := "transient"
		if isPermanentFailure(err) {
			reason = "permanent"
		}
		emailsFailed.Inc(reason)
		e.events.Record(job.ID, events.TypeDeliveryFailed, err.Error())
		e.queue.Delete(ctx, msg)
		logx.WithContext(ctx).Errorf("Campaign delivery failed permanently: %v", err)
		return
	}

	// Schedule retry with backoff: requeue a fresh message carrying the
	// bumped attempt counter, then retire the old one.
	backoff := e.calculateBackoff(attempts)
	job.Attempts = attempts
	job.Error = err.Error()
	e.stores.Emails.MarkRetry(ctx, job.ID, attempts, err.Error())
	if requeueErr := e.queue.Requeue(ctx, job, backoff); requeueErr != nil {
		logx.WithContext(ctx).Errorf("Failed to requeue job: %v", requeueErr)
		return // message stays visible after timeout, goqite redelivers
	}
	e.queue.Delete(ctx, msg)
	emailsRetried.Inc()
	e.events.Record(job.ID, events.TypeDeliveryRetry,
		fmt.Sprintf("attempt %d, backoff %s: %v", attempts, backoff, err))

	logx.WithContext(ctx).Infof("Campaign delivery retrying in %s: %v", backoff, err)
}

func (e *Engine) calculateBackoff(attempts int) time.Duration {
	backoff := e.config.RetryBackoff * time.Duration(math.Pow(2, float64(attempts-1)))
	if backoff > e.config.MaxBackoff {
		return e.config.MaxBackoff
	}
	return backoff
}

// isPermanentFailure checks if the error indicates a permanent failure.
func isPermanentFailure(err error) bool {
	msg := err.Error()
	// SMTP 5xx codes are permanent failures
	permanentCodes := []string{"550", "551", "552", "553", "554"}
	for _, code := range permanentCodes {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

// updateQueueDepth refreshes the queue depth gauge from current stats.
func (e *Engine) updateQueueDepth() {
	stats, err := e.stores.Emails.Stats(e.ctx)
	if err != nil {
		return
	}
	queueDepth.Set(float64(stats.Queued), model.EmailQueued)
	queueDepth.Set(float64(stats.Failed), model.EmailFailed)
}

// SendNow delivers content to recipients immediately, bypassing the queue.
// Used by the CLI send command.
func (e *Engine) SendNow(ctx context.Context, subject, content string, recipients []string) error {
	for _, recipient := range recipients {
		if err := e.rateLimiter.Wait(ctx); err != nil {
			return err
		}

		suppressed, err := e.stores.Suppressions.IsSuppressed(ctx, recipient)
		if err == nil && suppressed {
			continue
		}

		html, err := e.renderContent(ctx, &queue.SendJob{Content: content}, recipient)
		if err != nil {
			return fmt.Errorf("render for %s: %w", recipient, err)
		}

		if err := mail.Send(e.smtpConfig, recipient, subject, html); err != nil {
			return fmt.Errorf("send to %s: %w", recipient, err)
		}
	}

	return nil
}
