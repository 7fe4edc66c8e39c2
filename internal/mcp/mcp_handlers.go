package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cogniahq/cognia/core"
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/internal/source"
	"github.com/cogniahq/cognia/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// configFromRequest clones the base config and applies request overrides.
func (h *toolHandler) configFromRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	cfg.DataPath = request.GetString("data_path", cfg.DataPath)
	if d := request.GetString("domain", ""); d != "" {
		domain := schema.Domain(d)
		if _, ok := schema.ValidDomains[domain]; !ok {
			return nil, fmt.Errorf("invalid domain %q", d)
		}
		cfg.Domain = domain
	}
	if c := request.GetString("context_path", ""); c != "" {
		cfg.ContextPath = c
	}
	if s := request.GetString("span", ""); s != "" {
		span, err := contract.ParseSpanDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid span %q: %w", s, err)
		}
		cfg.Span = span
	}
	if cfg.DataPath == "" {
		return nil, fmt.Errorf("data_path is required")
	}
	return cfg, nil
}

func (h *toolHandler) handleAnalyzeBehavior(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	result, _, err := core.GetAnalysisResults(ctx, cfg, source.NewEventSource(cfg), source.NewCalendarSource(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	if recordErr := core.RecordRun(h.mgr.GetRunStore(), cfg, start, time.Now(), result); recordErr != nil {
		contract.LogWarn("failed to record run", recordErr)
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDataQuality(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows, quality, err := core.GetDailyHistory(ctx, cfg, source.NewEventSource(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("quality check failed: %v", err)), nil
	}

	valid := 0
	for _, row := range rows {
		if row.IsValid {
			valid++
		}
	}
	view := map[string]any{
		"domain":        cfg.Domain,
		"quality_score": quality,
		"total_days":    len(rows),
		"valid_days":    valid,
	}
	jsonData, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDailyHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows, _, err := core.GetDailyHistory(ctx, cfg, source.NewEventSource(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history failed: %v", err)), nil
	}

	if l := request.GetInt("limit", 0); l > 0 && len(rows) > l {
		rows = rows[len(rows)-l:]
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
