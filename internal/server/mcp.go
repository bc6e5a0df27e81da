package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/joeblew999/plat-campaign/internal/logic/campaign"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/joeblew999/plat-campaign/pkg/deliverability"
	"github.com/zeromicro/go-zero/mcp"
)

// RegisterMCPTools registers all MCP tools for the campaign platform.
func RegisterMCPTools(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	registerCheckTool(s)
	registerFixImagesTool(s)
	registerSendCampaignTool(s, svcCtx)
	registerGetSendStatusTool(s, svcCtx)
	registerLexiconResource(s)
}

func registerCheckTool(s mcp.McpServer) {
	s.RegisterTool(mcp.Tool{
		Name:        "check_deliverability",
		Description: "Analyze campaign HTML for spam triggers, mail client compatibility problems, and accessibility issues. Returns a 0-100 score with warnings.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"content": map[string]any{
					"type":        "string",
					"description": "Campaign HTML content to analyze",
				},
			},
			Required: []string{"content"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				Content string `json:"content"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			report := deliverability.Analyze(args.Content)

			return map[string]any{
				"score":                 report.Score,
				"spamWarnings":          report.SpamWarnings,
				"compatibilityWarnings": report.CompatibilityWarnings,
				"accessibilityWarnings": report.AccessibilityWarnings,
			}, nil
		},
	})
}

func registerFixImagesTool(s mcp.McpServer) {
	s.RegisterTool(mcp.Tool{
		Name:        "fix_images",
		Description: "Repair image tags in campaign HTML: add missing width/height attributes (inferred from the source URL when possible) and responsive CSS.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"content": map[string]any{
					"type":        "string",
					"description": "Campaign HTML content to repair",
				},
			},
			Required: []string{"content"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				Content string `json:"content"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			fixed := deliverability.FixImages(args.Content)

			return map[string]any{
				"content": fixed,
				"changed": fixed != args.Content,
			}, nil
		},
	})
}

func registerSendCampaignTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "send_campaign",
		Description: "Queue a draft campaign for delivery to all active, non-suppressed subscribers.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Campaign ID",
				},
			},
			Required: []string{"id"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				ID string `json:"id"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			l := campaign.NewSendCampaignLogic(ctx, svcCtx)
			resp, err := l.SendCampaign(&types.SendCampaignRequest{Id: args.ID})
			if err != nil {
				return nil, fmt.Errorf("send failed: %w", err)
			}

			return map[string]any{
				"id":         resp.Id,
				"jobId":      resp.JobId,
				"status":     resp.Status,
				"recipients": resp.Recipients,
				"suppressed": resp.Suppressed,
			}, nil
		},
	})
}

func registerGetSendStatusTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "get_send_status",
		Description: "Get the delivery status of a queued campaign send by its job ID.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Send job ID returned from send_campaign",
				},
			},
			Required: []string{"id"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				ID string `json:"id"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			row, err := svcCtx.Emails.FindOne(ctx, args.ID)
			if err == model.ErrNotFound {
				return nil, fmt.Errorf("send not found: %s", args.ID)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to get status: %w", err)
			}

			return map[string]any{
				"id":         row.Id,
				"campaign":   model.NullStringValue(row.CampaignId),
				"recipients": len(model.ParseRecipients(row.Recipients)),
				"subject":    row.Subject,
				"status":     row.Status,
				"attempts":   row.Attempts,
				"error":      model.NullStringValue(row.Error),
				"created_at": row.CreatedAt,
			}, nil
		},
	})
}

func registerLexiconResource(s mcp.McpServer) {
	s.RegisterResource(mcp.Resource{
		Name:        "spam-lexicon",
		URI:         "campaign://spam-lexicon",
		Description: "Spam trigger phrases the deliverability analyzer penalizes",
		MimeType:    "text/plain",
		Handler: func(ctx context.Context) (mcp.ResourceContent, error) {
			var b strings.Builder
			b.WriteString("Spam trigger phrases (each distinct match costs score):\n")
			for _, phrase := range deliverability.Lexicon() {
				b.WriteString("- " + phrase + "\n")
			}

			return mcp.ResourceContent{
				URI:      "campaign://spam-lexicon",
				MimeType: "text/plain",
				Text:     b.String(),
			}, nil
		},
	})
}
