package ui

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/pkg/deliverability"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

// Handlers provides HTTP handlers for the UI.
type Handlers struct {
	campaigns    model.CampaignsModel
	emails       model.EmailsModel
	suppressions model.SuppressionsModel
	subscribers  model.SubscribersModel
}

// NewHandlers creates new UI handlers.
func NewHandlers(campaigns model.CampaignsModel, emails model.EmailsModel,
	suppressions model.SuppressionsModel, subscribers model.SubscribersModel) *Handlers {
	return &Handlers{
		campaigns:    campaigns,
		emails:       emails,
		suppressions: suppressions,
		subscribers:  subscribers,
	}
}

// Routes returns the standard UI routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleDashboard},
		{Method: http.MethodGet, Path: "/checker", Handler: h.handleCheckerPage},
		{Method: http.MethodGet, Path: "/campaigns", Handler: h.handleCampaignsPage},
		{Method: http.MethodGet, Path: "/queue", Handler: h.handleQueuePage},
		{Method: http.MethodGet, Path: "/suppressions", Handler: h.handleSuppressionsPage},
	}
}

// SSERoutes returns the SSE-based API routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/api/stats", Handler: h.handleStats},
		{Method: http.MethodGet, Path: "/api/queue", Handler: h.handleQueueAPI},
		{Method: http.MethodGet, Path: "/api/campaigns", Handler: h.handleCampaignsAPI},
		{Method: http.MethodPost, Path: "/api/check", Handler: h.handleCheck},
		{Method: http.MethodPost, Path: "/api/fix", Handler: h.handleFix},
	}
}

func (h *Handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Dashboard().Render(w); err != nil {
		logx.Errorf("render dashboard: %v", err)
	}
}

func (h *Handlers) handleCheckerPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := CheckerPage().Render(w); err != nil {
		logx.Errorf("render checker page: %v", err)
	}
}

func (h *Handlers) handleCampaignsPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := CampaignsPage().Render(w); err != nil {
		logx.Errorf("render campaigns page: %v", err)
	}
}

func (h *Handlers) handleQueuePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := QueuePage().Render(w); err != nil {
		logx.Errorf("render queue page: %v", err)
	}
}

func (h *Handlers) handleSuppressionsPage(w http.ResponseWriter, r *http.Request) {
	rows, err := h.suppressions.List(r.Context(), 200)
	if err != nil {
		logx.Errorf("list suppressions: %v", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := SuppressionsPage(rows).Render(w); err != nil {
		logx.Errorf("render suppressions page: %v", err)
	}
}

func (h *Handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.emails.Stats(r.Context())
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}
	subscribers, _ := h.subscribers.Count(r.Context(), model.SubscriberActive)
	suppressed, _ := h.suppressions.Count(r.Context())

	h.sendDatastarSignals(w, r, map[string]any{
		"stats": map[string]int64{
			"queued":      stats.Queued,
			"sent":        stats.Sent,
			"failed":      stats.Failed,
			"suppressed":  stats.Suppressed,
			"subscribers": subscribers,
			"blocklist":   suppressed,
		},
		"loading": false,
	})
}

func (h *Handlers) handleQueueAPI(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	rows, err := h.emails.ListByStatus(r.Context(), status, 50)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	// Render queue items as HTML fragment and patch into #queue-items
	sse := datastar.NewSSE(w, r)

	fragment := renderQueueItems(rows)
	if err := sse.PatchElementf(`<div id="queue-items">%s</div>`, fragment); err != nil {
		logx.Errorf("datastar patch queue items: %v", err)
	}

	if err := sse.MarshalAndPatchSignals(map[string]any{"loading": false}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handleCampaignsAPI(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	rows, err := h.campaigns.List(r.Context(), status, 50)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	sse := datastar.NewSSE(w, r)

	fragment := renderCampaignItems(rows)
	if err := sse.PatchElementf(`<div id="campaign-items">%s</div>`, fragment); err != nil {
		logx.Errorf("datastar patch campaign items: %v", err)
	}

	if err := sse.MarshalAndPatchSignals(map[string]any{"loading": false}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	report := deliverability.Analyze(req.Content)

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementf(`<div id="report">%s</div>`, renderReport(report)); err != nil {
		logx.Errorf("datastar patch report: %v", err)
	}
	if err := sse.MarshalAndPatchSignals(map[string]any{
		"score":    report.Score,
		"checking": false,
	}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handleFix(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	fixed := deliverability.FixImages(req.Content)

	h.sendDatastarSignals(w, r, map[string]any{
		"content":  fixed,
		"checking": false,
	})
}

func (h *Handlers) sendDatastarSignals(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.sendDatastarSignals(w, r, map[string]any{
		"loading": false,
		"error":   msg,
	})
}

func renderQueueItems(rows []*model.Emails) string {
	if len(rows) == 0 {
		return `<p class="hint" style="padding:2rem;text-align:center;">No sends in queue</p>`
	}

	var b strings.Builder
	b.WriteString(`<table style="width:100%;border-collapse:collapse;">`)
	b.WriteString(`<thead><tr>`)
	for _, th := range []string{"Subject", "Recipients", "Status", "Attempts", "Error"} {
		b.WriteString(fmt.Sprintf(`<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">%s</th>`, th))
	}
	b.WriteString(`</tr></thead><tbody>`)

	for _, row := range rows {
		statusColor := "var(--text-muted)"
		switch row.Status {
		case model.EmailSent:
			statusColor = "var(--success)"
		case model.EmailFailed:
			statusColor = "var(--danger)"
		case model.EmailQueued:
			statusColor = "var(--warning)"
		}

		recipients := len(model.ParseRecipients(row.Recipients))

		b.WriteString(`<tr style="border-bottom:1px solid var(--border);">`)
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-weight:500;">%s</td>`, html.EscapeString(row.Subject)))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-size:0.875rem;">%d</td>`, recipients))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;"><span style="color:%s;font-weight:600;font-size:0.875rem;">%s</span></td>`, statusColor, html.EscapeString(row.Status)))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-size:0.875rem;">%d/%d</td>`, row.Attempts, row.MaxAttempts))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-size:0.875rem;color:var(--text-muted);">%s</td>`, html.EscapeString(model.NullStringValue(row.Error))))
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}

func renderCampaignItems(rows []*model.Campaigns) string {
	if len(rows) == 0 {
		return `<p class="hint" style="padding:2rem;text-align:center;">No campaigns yet</p>`
	}

	var b strings.Builder
	b.WriteString(`<table style="width:100%;border-collapse:collapse;">`)
	b.WriteString(`<thead><tr>`)
	for _, th := range []string{"Name", "Subject", "Status", "Score", "Created"} {
		b.WriteString(fmt.Sprintf(`<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">%s</th>`, th))
	}
	b.WriteString(`</tr></thead><tbody>`)

	for _, row := range rows {
		statusColor := "var(--text-muted)"
		switch row.Status {
		case model.CampaignSent:
			statusColor = "var(--success)"
		case model.CampaignSending:
			statusColor = "var(--warning)"
		}

		score := deliverability.Analyze(row.Content).Score
		scoreColor := "var(--success)"
		if score < 70 {
			scoreColor = "var(--warning)"
		}
		if score < 50 {
			scoreColor = "var(--danger)"
		}

		b.WriteString(`<tr style="border-bottom:1px solid var(--border);">`)
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-weight:500;">%s</td>`, html.EscapeString(row.Name)))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-size:0.875rem;">%s</td>`, html.EscapeString(row.Subject)))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;"><span style="color:%s;font-weight:600;font-size:0.875rem;">%s</span></td>`, statusColor, html.EscapeString(row.Status)))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;"><span style="color:%s;font-weight:600;">%d</span></td>`, scoreColor, score))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-size:0.875rem;color:var(--text-muted);">%s</td>`, row.CreatedAt.Format("Jan 2 15:04")))
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}

func renderReport(report deliverability.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<div class="score-banner">Deliverability score: <strong>%d</strong>/100</div>`, report.Score))

	sections := []struct {
		title    string
		warnings []string
	}{
		{"Spam", report.SpamWarnings},
		{"Client compatibility", report.CompatibilityWarnings},
		{"Accessibility", report.AccessibilityWarnings},
	}

	for _, s := range sections {
		if len(s.warnings) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf(`<h3>%s</h3><ul>`, s.title))
		for _, warning := range s.warnings {
			b.WriteString(fmt.Sprintf(`<li>%s</li>`, html.EscapeString(warning)))
		}
		b.WriteString(`</ul>`)
	}

	if len(report.SpamWarnings)+len(report.CompatibilityWarnings)+len(report.AccessibilityWarnings) == 0 {
		b.WriteString(`<p class="hint">No warnings. Ready to send.</p>`)
	}

	return b.String()
}
