package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rxtech-lab/chain-directory/internal/services"
)

func NewListChainsTool(chainService services.ChainService) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("list_chains",
		mcp.WithDescription("List the chains in the directory with their configurations. Results are paginated; use limit and offset to walk the collection. Call get_chain for a single chain's full record including gas prices and wallets."),
		mcp.WithString("ordering",
			mcp.Description("Comma separated ordering fields. Supported: relevance, name, -relevance, -name. Defaults to relevance then name."),
		),
		mcp.WithString("limit",
			mcp.Description("Maximum number of chains to return (default: 10, maximum: 100)"),
		),
		mcp.WithString("offset",
			mcp.Description("Number of chains to skip from the start of the collection"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := services.ChainListParams{
			Ordering: splitOrdering(request.GetString("ordering", "")),
		}
		if limit, err := strconv.Atoi(request.GetString("limit", "")); err == nil {
			params.Limit = limit
		}
		if offset, err := strconv.Atoi(request.GetString("offset", "")); err == nil {
			params.Offset = offset
		}

		chains, count, err := chainService.ListChains(params)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing chains: %v", err)), nil
		}

		chainList := make([]map[string]interface{}, len(chains))
		for i, chain := range chains {
			chainList[i] = map[string]interface{}{
				"chain_id":   chain.ID,
				"name":       chain.Name,
				"short_name": chain.ShortName,
				"relevance":  chain.Relevance,
				"l2":         chain.L2,
				"rpc_uri":    chain.RPCURI,
				"currency":   chain.CurrencySymbol,
			}
		}

		response := map[string]interface{}{
			"chains": chainList,
			"count":  count,
		}

		responseJSON, err := json.Marshal(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error serializing response: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Chains listed: %s", string(responseJSON))), nil
	}

	return tool, handler
}

// splitOrdering splits a comma separated ordering argument, dropping empty
// entries. Unknown fields are ignored downstream.
func splitOrdering(raw string) []string {
	if raw == "" {
		return nil
	}
	var fields []string
	for _, field := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}
