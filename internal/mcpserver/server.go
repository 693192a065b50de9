// Package mcpserver exposes a loaded table and the speed parser as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
	"github.com/KaramelBytes/txmedia-cli/internal/report"
	"github.com/KaramelBytes/txmedia-cli/internal/speed"
	"github.com/KaramelBytes/txmedia-cli/internal/utils"
)

const (
	Name    = "txmedia"
	Version = "0.1.0"
)

// Options configures the tool server.
type Options struct {
	Compare compare.Options
	Logger  *zerolog.Logger
}

// Server serves one read-only table. Handlers may run concurrently; they only read it.
type Server struct {
	table *dataset.Table
	opt   compare.Options
	log   zerolog.Logger
	mcp   *server.MCPServer
}

// New registers the tools for t. A nil table serves only parse_speed.
func New(t *dataset.Table, opt Options) *Server {
	s := &Server{table: t, opt: opt.Compare, log: zerolog.Nop()}
	if opt.Logger != nil {
		s.log = *opt.Logger
	}
	s.mcp = server.NewMCPServer(Name, Version, server.WithToolCapabilities(false))

	s.mcp.AddTool(mcp.NewTool("parse_speed",
		mcp.WithDescription("Normalize a free-text link speed such as '100 Mbps - 10 Gbps' or '0.5 Kbps' to Mbps"),
		mcp.WithString("text", mcp.Required(), mcp.Description("speed text as written in the dataset")),
	), s.handleParseSpeed)

	if t == nil {
		return s
	}
	s.mcp.AddTool(mcp.NewTool("list_modes",
		mcp.WithDescription("List the comparison modes the loaded dataset supports and its columns"),
	), s.handleListModes)
	s.mcp.AddTool(mcp.NewTool("compare",
		mcp.WithDescription("Render a comparison of the loaded transmission media dataset"),
		mcp.WithString("mode", mcp.Description("speed, reliability, coverage, cost, overview or all (default)"),
			mcp.Enum(sectionNames()...)),
		mcp.WithString("format", mcp.Description("markdown (default) or json"), mcp.Enum("markdown", "json")),
	), s.handleCompare)
	s.mcp.AddTool(mcp.NewTool("lookup_media",
		mcp.WithDescription("Return the canonical records whose media type contains the query (case-insensitive)"),
		mcp.WithString("query", mcp.Required(), mcp.Description("media type name or part of it")),
	), s.handleLookup)
	return s
}

// ServeStdio blocks serving requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.log.Info().Str("server", Name).Bool("table", s.table != nil).Msg("serving tools on stdio")
	return server.ServeStdio(s.mcp)
}

func sectionNames() []string {
	out := make([]string, len(report.Sections))
	for i, x := range report.Sections {
		out[i] = string(x)
	}
	return out
}

func (s *Server) handleParseSpeed(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res := speed.Explain(text)
	s.log.Debug().Str("tool", "parse_speed").Str("text", text).Str("rule", string(res.Rule)).Msg("tool call")
	return jsonResult(res)
}

func (s *Server) handleListModes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(compare.Available(s.table))
}

func (s *Server) handleCompare(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sec, err := report.ParseSection(req.GetString("mode", string(report.SectionAll)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := report.ParseFormat(req.GetString("format", string(report.FormatMarkdown)))
	if err != nil || f == report.FormatText {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q", req.GetString("format", ""))), nil
	}
	s.log.Debug().Str("tool", "compare").Str("mode", string(sec)).Str("format", string(f)).Msg("tool call")
	out, err := report.New(s.table, s.opt, sec).Render(f)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) handleLookup(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	q = strings.ToLower(strings.TrimSpace(q))
	var hits []dataset.Record
	for _, r := range s.table.Records() {
		if strings.Contains(strings.ToLower(r.MediaType), q) {
			hits = append(hits, r)
		}
	}
	if len(hits) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no media type matches %q", q)), nil
	}
	return jsonResult(hits)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := utils.PrettyJSON(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
