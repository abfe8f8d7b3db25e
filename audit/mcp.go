// CLAUDE:SUMMARY MCP tool surface: run_audit, get_audit, list_audits.
package audit

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterMCP registers the audit tools on an MCP server, so agent clients
// can drive audits over the same service the HTTP surface uses.
func (s *Service) RegisterMCP(srv *mcp.Server) {
	type runReq struct {
		URL string `json:"url" jsonschema:"storefront URL to audit"`
	}
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "run_audit",
		Description: "Audit the first page of an online storefront and return the scored report",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in runReq) (*mcp.CallToolResult, *Report, error) {
		rep, err := s.Run(ctx, in.URL)
		if err != nil {
			return nil, nil, err
		}
		return nil, rep, nil
	})

	type getReq struct {
		ID string `json:"id" jsonschema:"audit report ID"`
	}
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_audit",
		Description: "Fetch a stored audit report by ID",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in getReq) (*mcp.CallToolResult, *Report, error) {
		rep, err := s.store.Get(ctx, in.ID)
		if err != nil {
			return nil, nil, err
		}
		return nil, rep, nil
	})

	type listReq struct {
		Limit int `json:"limit,omitempty" jsonschema:"maximum number of audits to return"`
	}
	type listResp struct {
		Audits []Summary `json:"audits"`
	}
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_audits",
		Description: "List recent audits, newest first",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in listReq) (*mcp.CallToolResult, *listResp, error) {
		sums, err := s.store.Recent(ctx, in.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, &listResp{Audits: sums}, nil
	})
}
