package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rxtech-lab/chain-directory/internal/services"
)

func NewListSafeAppsTool(safeAppService services.SafeAppService) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("list_safe_apps",
		mcp.WithDescription("List the visible safe apps in the directory. Optionally filter by the numeric chain_id an app must support. A non-numeric chain_id is ignored and the full listing is returned."),
		mcp.WithString("chain_id",
			mcp.Description("Only return apps available on this chain id (e.g. \"137\" for Polygon)"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var chainID *uint64
		if raw := request.GetString("chain_id", ""); raw != "" {
			if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
				chainID = &parsed
			}
		}

		safeApps, err := safeAppService.ListSafeApps(chainID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing safe apps: %v", err)), nil
		}

		appList := make([]map[string]interface{}, len(safeApps))
		for i, app := range safeApps {
			entry := map[string]interface{}{
				"id":          app.ID,
				"name":        app.Name,
				"url":         app.URL,
				"description": app.Description,
				"chain_ids":   app.ChainIDs,
			}
			if app.Provider != nil {
				entry["provider"] = map[string]interface{}{
					"url":  app.Provider.URL,
					"name": app.Provider.Name,
				}
			}
			appList[i] = entry
		}

		response := map[string]interface{}{
			"safe_apps": appList,
			"count":     len(appList),
		}

		responseJSON, err := json.Marshal(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error serializing response: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Safe apps listed: %s", string(responseJSON))), nil
	}

	return tool, handler
}
