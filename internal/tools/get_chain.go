package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rxtech-lab/chain-directory/internal/models"
	"github.com/rxtech-lab/chain-directory/internal/services"
)

func NewGetChainTool(
	chainService services.ChainService,
	gasPriceService services.GasPriceService,
	walletService services.WalletService,
	featureService services.FeatureService,
) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("get_chain",
		mcp.WithDescription("Get one chain's full directory record, including its gas price sources, enabled wallets and enabled features. Provide either chain_id or short_name, not both."),
		mcp.WithString("chain_id",
			mcp.Description("The chain's numeric network id (e.g. \"1\" for Ethereum mainnet)"),
		),
		mcp.WithString("short_name",
			mcp.Description("The chain's short name (e.g. \"eth\"). Matching is exact and case sensitive."),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		chainIDArg := request.GetString("chain_id", "")
		shortName := request.GetString("short_name", "")

		if (chainIDArg == "") == (shortName == "") {
			return mcp.NewToolResultError("Provide exactly one of chain_id or short_name"), nil
		}

		var (
			chain *models.Chain
			err   error
		)
		if chainIDArg != "" {
			chainID, parseErr := strconv.ParseUint(chainIDArg, 10, 64)
			if parseErr != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Invalid chain_id %q: must be a decimal number", chainIDArg)), nil
			}
			chain, err = chainService.GetChainByID(chainID)
		} else {
			chain, err = chainService.GetChainByShortName(shortName)
		}
		if errors.Is(err, services.ErrNotFound) {
			return mcp.NewToolResultError("Chain not found"), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error getting chain: %v", err)), nil
		}

		gasPrices, err := gasPriceService.ListGasPrices(chain.ID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing gas prices: %v", err)), nil
		}
		wallets, err := walletService.EnabledWallets(chain.ID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing wallets: %v", err)), nil
		}
		features, err := featureService.EnabledFeatures(chain.ID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing features: %v", err)), nil
		}

		response := map[string]interface{}{
			"chain":            chain,
			"gas_prices":       serializeGasPrices(gasPrices),
			"enabled_wallets":  keysOfWallets(wallets),
			"enabled_features": keysOfFeatures(features),
		}

		responseJSON, err := json.Marshal(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error serializing response: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Chain found: %s", string(responseJSON))), nil
	}

	return tool, handler
}

// serializeGasPrices renders each gas price row as its resolved source
// variant so clients never see the raw either-or columns.
func serializeGasPrices(gasPrices []models.GasPrice) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(gasPrices))
	for i := range gasPrices {
		entry := map[string]interface{}{
			"rank": gasPrices[i].Rank,
		}
		source, err := gasPrices[i].Source()
		if err != nil {
			continue
		}
		switch src := source.(type) {
		case models.OracleSource:
			entry["type"] = "oracle"
			entry["uri"] = src.URI
			entry["parameter"] = src.Parameter
			entry["gwei_factor"] = src.GweiFactor.String()
		case models.FixedSource:
			entry["type"] = "fixed"
			entry["wei_value"] = src.WeiValue.String()
		}
		out = append(out, entry)
	}
	return out
}

func keysOfWallets(wallets []models.Wallet) []string {
	keys := make([]string, len(wallets))
	for i, w := range wallets {
		keys[i] = w.Key
	}
	return keys
}

func keysOfFeatures(features []models.Feature) []string {
	keys := make([]string, len(features))
	for i, f := range features {
		keys[i] = f.Key
	}
	return keys
}
