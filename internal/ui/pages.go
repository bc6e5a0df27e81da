// Package ui provides the Datastar-based web UI for plat-campaign.
package ui

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"

	"github.com/joeblew999/plat-campaign/internal/model"
)

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js")),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			h.Nav(h.Class("navbar"),
				h.Div(h.Class("nav-brand"), g.Text("plat-campaign")),
				h.Div(h.Class("nav-links"),
					h.A(h.Href("/"), g.Text("Dashboard")),
					h.A(h.Href("/checker"), g.Text("Checker")),
					h.A(h.Href("/campaigns"), g.Text("Campaigns")),
					h.A(h.Href("/queue"), g.Text("Queue")),
					h.A(h.Href("/suppressions"), g.Text("Suppressions")),
				),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("plat-campaign - Email Campaign Platform"),
			),
		),
	)
}

// Dashboard renders the main dashboard page.
func Dashboard() g.Node {
	return Layout("Dashboard - plat-campaign",
		data.Signals(map[string]any{
			"stats":   map[string]int{},
			"loading": true,
		}),
		data.Init("@get('/api/stats')"),

		h.H1(g.Text("Campaign Dashboard")),

		// Stats cards
		h.Div(h.Class("stats-grid"),
			StatCard("queued", "Queued"),
			StatCard("sent", "Sent"),
			StatCard("failed", "Failed"),
			StatCard("suppressed", "Suppressed"),
			StatCard("subscribers", "Subscribers"),
			StatCard("blocklist", "Blocklist"),
		),

		// Quick actions
		h.Div(h.Class("section"),
			h.H2(g.Text("Quick Actions")),
			h.Div(h.Class("actions"),
				h.A(h.Href("/checker"), h.Button(g.Text("Check Deliverability"))),
				h.A(h.Href("/campaigns"), h.Button(g.Text("View Campaigns"))),
				h.A(h.Href("/queue"), h.Button(g.Text("View Queue"))),
			),
		),

		// Auto-refreshing stats
		h.Div(h.Class("section"),
			h.H2(g.Text("Recent Activity")),
			data.OnInterval("@get('/api/stats')", data.ModifierDuration, data.Duration(5*time.Second)),
			h.Div(h.ID("recent-list"),
				data.Show("!$loading"),
				h.P(g.Text("Stats loaded. Check the queue for per-send details.")),
			),
			h.Div(
				data.Show("$loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading..."),
			),
		),
	)
}

// StatCard renders a statistics card.
func StatCard(key, label string) g.Node {
	return h.Div(h.Class("stat-card"),
		h.Div(h.Class("stat-value"), data.Text("$stats."+key+" || 0")),
		h.Div(h.Class("stat-label"), g.Text(label)),
	)
}

// CheckerPage renders the deliverability checker: paste campaign HTML, get
// the score and warnings back, optionally auto-fix image attributes.
func CheckerPage() g.Node {
	return Layout("Checker - plat-campaign",
		data.Signals(map[string]any{
			"content":  "",
			"score":    0,
			"checking": false,
		}),

		h.H1(g.Text("Deliverability Checker")),

		h.Div(h.Class("checker-grid"),
			h.Div(h.Class("section"),
				h.H2(g.Text("Campaign HTML")),
				h.Textarea(
					data.Bind("content"),
					h.Placeholder("<p>Paste your campaign HTML here...</p>"),
					h.Rows("18"),
					h.StyleAttr("width:100%;font-family:monospace;"),
				),
				h.Div(h.Class("actions"),
					h.Button(
						data.On("click", `$checking = true; @post('/api/check', {body: JSON.stringify({content: $content})})`),
						data.Attr("disabled", "$checking"),
						g.Text("Analyze"),
					),
					h.Button(
						data.On("click", `$checking = true; @post('/api/fix', {body: JSON.stringify({content: $content})})`),
						data.Attr("disabled", "$checking"),
						g.Text("Fix Images"),
					),
				),
			),

			h.Div(h.Class("section"),
				h.H2(g.Text("Report")),
				h.Div(
					data.Show("$checking"),
					h.Span(h.Class("loading-spinner")),
					g.Text(" Analyzing..."),
				),
				h.Div(h.ID("report"),
					h.P(h.Class("hint"), g.Text("Paste content and hit Analyze")),
				),
			),
		),
	)
}

// CampaignsPage renders the campaign list page.
func CampaignsPage() g.Node {
	return Layout("Campaigns - plat-campaign",
		data.Signals(map[string]any{
			"filter":  "all",
			"loading": true,
		}),
		data.Init("@get('/api/campaigns')"),

		h.H1(g.Text("Campaigns")),

		h.Div(h.Class("filter-bar"),
			filterButton("all", "All", "/api/campaigns"),
			filterButton("draft", "Draft", "/api/campaigns?status=draft"),
			filterButton("sending", "Sending", "/api/campaigns?status=sending"),
			filterButton("sent", "Sent", "/api/campaigns?status=sent"),
		),

		h.Div(h.Class("queue-list"),
			data.Show("$loading"),
			h.Div(h.Class("loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading campaigns..."),
			),
		),
		h.Div(h.ID("campaign-items"),
			data.Show("!$loading"),
		),
	)
}

// QueuePage renders the send queue monitoring page.
func QueuePage() g.Node {
	return Layout("Queue - plat-campaign",
		data.Signals(map[string]any{
			"filter":  "all",
			"loading": true,
		}),
		data.Init("@get('/api/queue')"),

		h.H1(g.Text("Send Queue")),

		h.Div(h.Class("filter-bar"),
			filterButton("all", "All", "/api/queue"),
			filterButton("queued", "Queued", "/api/queue?status=queued"),
			filterButton("sent", "Sent", "/api/queue?status=sent"),
			filterButton("failed", "Failed", "/api/queue?status=failed"),
		),

		// Auto-refresh
		h.Div(h.Class("refresh-bar"),
			data.OnInterval("@get('/api/queue?status=' + ($filter === 'all' ? '' : $filter))", data.ModifierDuration, data.Duration(5*time.Second)),
			g.Text("Auto-refresh: 5s"),
		),

		h.Div(h.Class("queue-list"),
			data.Show("$loading"),
			h.Div(h.Class("loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading queue..."),
			),
		),
		h.Div(h.ID("queue-items"),
			data.Show("!$loading"),
		),
	)
}

// SuppressionsPage renders the suppression list.
func SuppressionsPage(rows []*model.Suppressions) g.Node {
	var items []g.Node
	for _, row := range rows {
		items = append(items, h.Tr(
			h.Td(g.Text(row.Email)),
			h.Td(g.Text(row.Reason)),
			h.Td(g.Text(row.CreatedAt)),
		))
	}

	var body g.Node
	if len(items) == 0 {
		body = h.P(h.Class("hint"), g.Text("No suppressed addresses"))
	} else {
		body = h.Table(h.Class("data-table"),
			h.THead(h.Tr(
				h.Th(g.Text("Email")),
				h.Th(g.Text("Reason")),
				h.Th(g.Text("Added")),
			)),
			h.TBody(g.Group(items)),
		)
	}

	return Layout("Suppressions - plat-campaign",
		h.H1(g.Text("Suppression List")),
		h.Div(h.Class("section"),
			h.P(h.Class("hint"), g.Text("Addresses here never receive campaign mail, regardless of subscriber status.")),
			body,
		),
	)
}

func filterButton(key, label, endpoint string) g.Node {
	return h.Button(
		data.On("click", "$filter = '"+key+"'; @get('"+endpoint+"')"),
		data.Class("active", "$filter === '"+key+"'"),
		g.Text(label),
	)
}

const styles = `
:root {
	--primary: #6366f1;
	--primary-dark: #4f46e5;
	--success: #10b981;
	--warning: #f59e0b;
	--danger: #ef4444;
	--bg: #f8fafc;
	--card-bg: #ffffff;
	--text: #1e293b;
	--text-muted: #64748b;
	--border: #e2e8f0;
}

* {
	box-sizing: border-box;
	margin: 0;
	padding: 0;
}

body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	background: var(--bg);
	color: var(--text);
	line-height: 1.6;
}

.navbar {
	background: var(--primary);
	color: white;
	padding: 1rem 2rem;
	display: flex;
	justify-content: space-between;
	align-items: center;
	box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

.nav-brand {
	font-size: 1.5rem;
	font-weight: bold;
}

.nav-links a {
	color: white;
	text-decoration: none;
	margin-left: 2rem;
	opacity: 0.9;
	transition: opacity 0.2s;
}

.nav-links a:hover {
	opacity: 1;
}

.container {
	max-width: 1200px;
	margin: 0 auto;
	padding: 2rem;
}

.footer {
	text-align: center;
	padding: 2rem;
	color: var(--text-muted);
	border-top: 1px solid var(--border);
	margin-top: 2rem;
}

h1 {
	margin-bottom: 1.5rem;
	color: var(--text);
}

h2 {
	margin-bottom: 1rem;
	color: var(--text);
	font-size: 1.25rem;
}

.stats-grid {
	display: grid;
	grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
	gap: 1.5rem;
	margin-bottom: 2rem;
}

.stat-card {
	background: var(--card-bg);
	border-radius: 12px;
	padding: 1.5rem;
	text-align: center;
	box-shadow: 0 1px 3px rgba(0,0,0,0.1);
	border: 1px solid var(--border);
	transition: transform 0.2s, box-shadow 0.2s;
}

.stat-card:hover {
	transform: translateY(-2px);
	box-shadow: 0 4px 12px rgba(0,0,0,0.1);
}

.stat-value {
	font-size: 2.5rem;
	font-weight: bold;
	color: var(--primary);
}

.stat-label {
	color: var(--text-muted);
	font-size: 0.875rem;
	text-transform: uppercase;
	letter-spacing: 0.05em;
}

.section {
	background: var(--card-bg);
	border-radius: 12px;
	padding: 1.5rem;
	margin-bottom: 1.5rem;
	border: 1px solid var(--border);
}

.actions {
	display: flex;
	gap: 1rem;
	flex-wrap: wrap;
	margin-top: 1rem;
}

button {
	background: var(--primary);
	color: white;
	border: none;
	padding: 0.75rem 1.5rem;
	border-radius: 8px;
	cursor: pointer;
	font-size: 1rem;
	font-weight: 500;
	transition: background 0.2s, transform 0.1s;
}

button:hover {
	background: var(--primary-dark);
}

button:active {
	transform: scale(0.98);
}

button:disabled {
	background: var(--text-muted);
	cursor: not-allowed;
}

button.active {
	background: var(--primary-dark);
	box-shadow: inset 0 2px 4px rgba(0,0,0,0.2);
}

.checker-grid {
	display: grid;
	grid-template-columns: 1fr 1fr;
	gap: 1.5rem;
}

.score-banner {
	font-size: 1.25rem;
	padding: 1rem;
	border-radius: 8px;
	background: var(--bg);
	margin-bottom: 1rem;
}

.hint {
	color: var(--text-muted);
	font-style: italic;
}

.filter-bar {
	display: flex;
	gap: 0.5rem;
	margin-bottom: 1rem;
}

.refresh-bar {
	color: var(--text-muted);
	font-size: 0.875rem;
	margin-bottom: 1rem;
}

.queue-list {
	background: var(--card-bg);
	border-radius: 12px;
	border: 1px solid var(--border);
}

.loading {
	padding: 2rem;
	text-align: center;
	color: var(--text-muted);
}

.loading-spinner {
	display: inline-block;
	width: 16px;
	height: 16px;
	border: 2px solid var(--border);
	border-top-color: var(--primary);
	border-radius: 50%;
	animation: spin 1s linear infinite;
}

@keyframes spin {
	to { transform: rotate(360deg); }
}

.data-table {
	width: 100%;
	border-collapse: collapse;
}

.data-table th,
.data-table td {
	text-align: left;
	padding: 0.75rem 1rem;
	border-bottom: 1px solid var(--border);
}

.data-table th {
	border-bottom-width: 2px;
	color: var(--text-muted);
	font-size: 0.875rem;
}

textarea {
	padding: 0.75rem;
	border: 1px solid var(--border);
	border-radius: 8px;
	font-size: 0.9rem;
}

textarea:focus {
	outline: none;
	border-color: var(--primary);
	box-shadow: 0 0 0 3px rgba(99, 102, 241, 0.1);
}

@media (max-width: 768px) {
	.checker-grid {
		grid-template-columns: 1fr;
	}

	.nav-links a {
		margin-left: 1rem;
	}
}
`
