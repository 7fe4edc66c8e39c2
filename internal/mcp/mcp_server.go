// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cogniahq/cognia/internal/contract"
)

// NewMCPServer initializes and configures the Cognia MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Cognia Behavioral Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_behavior ---
	s.AddTool(mcp.NewTool("analyze_behavior",
		mcp.WithDescription("Analyze behavioral event history against its own baseline and return a status/trend/confidence verdict."),
		mcp.WithString("data_path", mcp.Description("Path to the event data file (call log JSON or fitness export)."), mcp.Required()),
		mcp.WithString("domain", mcp.Description("Behavioral domain to analyze. Defaults to 'calls'."), mcp.Enum("calls", "fitness")),
		mcp.WithString("context_path", mcp.Description("Optional path to a calendar export for context correlation.")),
		mcp.WithString("span", mcp.Description("History span to ingest (e.g. '30 days', '6 weeks').")),
	), h.handleAnalyzeBehavior)

	// --- 2. Tool: data_quality ---
	s.AddTool(mcp.NewTool("data_quality",
		mcp.WithDescription("Report the data quality of a behavioral event history: valid days vs total days after gap repair."),
		mcp.WithString("data_path", mcp.Description("Path to the event data file."), mcp.Required()),
		mcp.WithString("domain", mcp.Description("Behavioral domain. Defaults to 'calls'."), mcp.Enum("calls", "fitness")),
	), h.handleDataQuality)

	// --- 3. Tool: daily_history ---
	s.AddTool(mcp.NewTool("daily_history",
		mcp.WithDescription("Return the repaired daily feature series for a behavioral event history."),
		mcp.WithString("data_path", mcp.Description("Path to the event data file."), mcp.Required()),
		mcp.WithString("domain", mcp.Description("Behavioral domain. Defaults to 'calls'."), mcp.Enum("calls", "fitness")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of most recent rows returned.")),
	), h.handleDailyHistory)

	return s
}

// StartMCPServer starts the Cognia MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
