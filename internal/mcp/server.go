package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rxtech-lab/chain-directory/internal/services"
	"github.com/rxtech-lab/chain-directory/internal/tools"
)

type MCPServer struct {
	server *server.MCPServer
}

func NewMCPServer(
	chainService services.ChainService,
	gasPriceService services.GasPriceService,
	walletService services.WalletService,
	featureService services.FeatureService,
	safeAppService services.SafeAppService,
) *MCPServer {
	srv := server.NewMCPServer(
		"Chain Directory MCP Server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	srv.AddPrompt(mcp.NewPrompt("chain-directory-usage",
		mcp.WithPromptDescription("Instructions and guidance for using the chain directory tools"),
		mcp.WithArgument("tool_category",
			mcp.ArgumentDescription("Category of tools to get instructions for (chains, safe-apps, or all)"),
			mcp.RequiredArgument(),
		),
	), func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		category := request.Params.Arguments["tool_category"]
		if category == "" {
			return nil, fmt.Errorf("tool_category is required")
		}

		instructions := getToolInstructions(category)

		return mcp.NewGetPromptResult(
			fmt.Sprintf("Chain Directory Tools - %s", category),
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(
					mcp.RoleUser,
					mcp.NewTextContent(instructions),
				),
			},
		), nil
	})

	// Chain Directory Tools
	listChainsTool, listChainsHandler := tools.NewListChainsTool(chainService)
	srv.AddTool(listChainsTool, listChainsHandler)

	getChainTool, getChainHandler := tools.NewGetChainTool(chainService, gasPriceService, walletService, featureService)
	srv.AddTool(getChainTool, getChainHandler)

	// Safe App Tools
	listSafeAppsTool, listSafeAppsHandler := tools.NewListSafeAppsTool(safeAppService)
	srv.AddTool(listSafeAppsTool, listSafeAppsHandler)

	return &MCPServer{server: srv}
}

func getToolInstructions(category string) string {
	switch category {
	case "chains":
		return `Chain Directory Tools:

1. list_chains - List chains with their configurations
   Usage: Browse the directory page by page, ordered by relevance then name.
   Supports ordering, limit and offset arguments matching the HTTP API.

2. get_chain - Get one chain's full record
   Usage: Look a chain up by chain_id or short_name (exactly one). The
   response includes the chain's gas price sources, enabled wallets and
   enabled features.`

	case "safe-apps":
		return `Safe App Tools:

1. list_safe_apps - List the visible safe apps
   Usage: Returns every visible app, or only the apps supporting a chain
   when chain_id is given. Hidden apps never appear. A chain_id that is
   not a number is ignored and the full listing is returned.`

	case "all":
		return `Chain Directory MCP Tools Overview:

This MCP server exposes the read side of the chain directory:

CHAIN DIRECTORY (2 tools):
- list_chains: Page through the chain listing
- get_chain: Fetch one chain with gas prices, wallets and features

SAFE APPS (1 tool):
- list_safe_apps: List visible safe apps, optionally filtered by chain

All tools are read-only. Writes go through the seeding pipeline, not MCP.`

	default:
		return `Invalid category. Available categories: chains, safe-apps, all`
	}
}

func (s *MCPServer) Start() error {
	return server.ServeStdio(s.server)
}
