package api

import (
	"strconv"
	"strings"

	"github.com/rxtech-lab/chain-directory/internal/models"
)

// Response shapes for the public API. Field names are camelCase and chain
// ids are rendered as decimal strings, which is what directory clients
// parse today.

type RPCEndpointJSON struct {
	Authentication models.RPCAuthentication `json:"authentication"`
	Value          string                   `json:"value"`
}

type BlockExplorerTemplateJSON struct {
	Address string `json:"address"`
	TxHash  string `json:"txHash"`
	API     string `json:"api"`
}

type NativeCurrencyJSON struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	LogoURI  string `json:"logoUri"`
}

type ThemeJSON struct {
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
}

type ChainJSON struct {
	ChainID                      string                    `json:"chainId"`
	ChainName                    string                    `json:"chainName"`
	ShortName                    string                    `json:"shortName"`
	Relevance                    int16                     `json:"relevance"`
	Description                  string                    `json:"description"`
	L2                           bool                      `json:"l2"`
	RPCURI                       RPCEndpointJSON           `json:"rpcUri"`
	SafeAppsRPCURI               RPCEndpointJSON           `json:"safeAppsRpcUri"`
	PublicRPCURI                 RPCEndpointJSON           `json:"publicRpcUri"`
	BlockExplorerURITemplate     BlockExplorerTemplateJSON `json:"blockExplorerUriTemplate"`
	NativeCurrency               NativeCurrencyJSON        `json:"nativeCurrency"`
	TransactionService           string                    `json:"transactionService"`
	VPCTransactionService        string                    `json:"vpcTransactionService"`
	Theme                        ThemeJSON                 `json:"theme"`
	ENSRegistryAddress           *string                   `json:"ensRegistryAddress"`
	RecommendedMasterCopyVersion string                    `json:"recommendedMasterCopyVersion"`
}

type SafeAppProviderJSON struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type SafeAppJSON struct {
	ID          uint64               `json:"id"`
	URL         string               `json:"url"`
	Name        string               `json:"name"`
	IconURL     string               `json:"iconUrl"`
	Description string               `json:"description"`
	ChainIDs    []string             `json:"chainIds"`
	Provider    *SafeAppProviderJSON `json:"provider"`
}

func serializeChain(chain *models.Chain, mediaBaseURL string) ChainJSON {
	return ChainJSON{
		ChainID:     strconv.FormatUint(chain.ID, 10),
		ChainName:   chain.Name,
		ShortName:   chain.ShortName,
		Relevance:   chain.Relevance,
		Description: chain.Description,
		L2:          chain.L2,
		RPCURI: RPCEndpointJSON{
			Authentication: chain.RPCAuthentication,
			Value:          chain.RPCURI,
		},
		SafeAppsRPCURI: RPCEndpointJSON{
			Authentication: chain.SafeAppsRPCAuthentication,
			Value:          chain.SafeAppsRPCURI,
		},
		PublicRPCURI: RPCEndpointJSON{
			Authentication: chain.PublicRPCAuthentication,
			Value:          chain.PublicRPCURI,
		},
		BlockExplorerURITemplate: BlockExplorerTemplateJSON{
			Address: chain.BlockExplorerURIAddressTemplate,
			TxHash:  chain.BlockExplorerURITxHashTemplate,
			API:     chain.BlockExplorerURIAPITemplate,
		},
		NativeCurrency: NativeCurrencyJSON{
			Name:     chain.CurrencyName,
			Symbol:   chain.CurrencySymbol,
			Decimals: chain.CurrencyDecimals,
			LogoURI:  currencyLogoURI(chain, mediaBaseURL),
		},
		TransactionService:    chain.TransactionServiceURI,
		VPCTransactionService: chain.VPCTransactionServiceURI,
		Theme: ThemeJSON{
			TextColor:       chain.ThemeTextColor,
			BackgroundColor: chain.ThemeBackgroundColor,
		},
		ENSRegistryAddress:           chain.ENSRegistryAddress,
		RecommendedMasterCopyVersion: chain.RecommendedMasterCopyVersion,
	}
}

func serializeChains(chains []models.Chain, mediaBaseURL string) []ChainJSON {
	out := make([]ChainJSON, len(chains))
	for i := range chains {
		out[i] = serializeChain(&chains[i], mediaBaseURL)
	}
	return out
}

// currencyLogoURI resolves the stored logo path against the configured
// media base URL. Chains without an uploaded logo serve an empty string.
func currencyLogoURI(chain *models.Chain, mediaBaseURL string) string {
	if chain.CurrencyLogoPath == "" {
		return ""
	}
	return strings.TrimRight(mediaBaseURL, "/") + "/" + chain.CurrencyLogoPath
}

func serializeSafeApp(app *models.SafeApp) SafeAppJSON {
	chainIDs := make([]string, len(app.ChainIDs))
	for i, id := range app.ChainIDs {
		chainIDs[i] = strconv.FormatUint(id, 10)
	}

	var provider *SafeAppProviderJSON
	if app.Provider != nil {
		provider = &SafeAppProviderJSON{
			URL:  app.Provider.URL,
			Name: app.Provider.Name,
		}
	}

	return SafeAppJSON{
		ID:          app.ID,
		URL:         app.URL,
		Name:        app.Name,
		IconURL:     app.IconURL,
		Description: app.Description,
		ChainIDs:    chainIDs,
		Provider:    provider,
	}
}

func serializeSafeApps(apps []models.SafeApp) []SafeAppJSON {
	out := make([]SafeAppJSON, len(apps))
	for i := range apps {
		out[i] = serializeSafeApp(&apps[i])
	}
	return out
}
