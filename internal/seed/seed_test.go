package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/chain-directory/internal/assets"
	"github.com/rxtech-lab/chain-directory/internal/models"
	"github.com/rxtech-lab/chain-directory/internal/services"
)

const seedDocument = `wallets:
  - metamask
  - walletConnect
features:
  - contractInteraction
chains:
  - id: 1
    name: Ethereum
    short_name: eth
    description: The main network
    relevance: 5
    rpc_authentication: API_KEY_PATH
    rpc_uri: https://mainnet.infura.io/v3/
    safe_apps_rpc_authentication: API_KEY_PATH
    safe_apps_rpc_uri: https://mainnet.infura.io/v3/
    public_rpc_authentication: NO_AUTHENTICATION
    public_rpc_uri: https://cloudflare-eth.com
    block_explorer_uri_address_template: https://etherscan.io/address/{{address}}
    block_explorer_uri_tx_hash_template: https://etherscan.io/tx/{{txHash}}
    block_explorer_uri_api_template: https://api.etherscan.io/api?module={{module}}&action={{action}}
    currency_name: Ether
    currency_symbol: ETH
    currency_decimals: 18
    currency_logo_file: ethereum.png
    transaction_service_uri: https://safe-transaction.mainnet.example
    vpc_transaction_service_uri: http://nginx/txs
    theme_text_color: "#001428"
    theme_background_color: "#E8E7E6"
    ens_registry_address: "0x00000000000c2e074ec69a0dfb2997ba6c7d2e1e"
    recommended_master_copy_version: "1.3.0"
    gas_prices:
      - oracle_uri: https://ethgasstation.info/json/ethgasAPI.json
        oracle_parameter: fast
        gwei_factor: "100000000.000000000"
        rank: 50
      - fixed_wei_value: "24000000000"
    wallets:
      - metamask
    features:
      - contractInteraction
  - id: 100
    name: Gnosis Chain
    short_name: gno
    l2: true
    rpc_uri: https://rpc.gnosischain.com
    public_rpc_uri: https://rpc.gnosischain.com
    block_explorer_uri_address_template: https://gnosisscan.io/address/{{address}}
    block_explorer_uri_tx_hash_template: https://gnosisscan.io/tx/{{txHash}}
    block_explorer_uri_api_template: https://api.gnosisscan.io/api?module={{module}}&action={{action}}
    currency_name: xDai
    currency_symbol: XDAI
    transaction_service_uri: https://safe-transaction.gnosis.example
    recommended_master_copy_version: "1.3.0"
providers:
  - url: https://example.finance
    name: Example Finance
safe_apps:
  - name: Swap
    url: https://swap.example
    icon_url: https://swap.example/icon.png
    description: Token swaps
    chain_ids: [1]
    provider_url: https://example.finance
  - name: Hidden
    url: https://hidden.example
    chain_ids: [1, 100]
    visible: false
`

type seedServices struct {
	chains    services.ChainService
	gasPrices services.GasPriceService
	wallets   services.WalletService
	features  services.FeatureService
	safeApps  services.SafeAppService
}

func setupSeeder(t *testing.T) (*Seeder, seedServices) {
	dbService, err := services.NewSqliteDBService(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = dbService.Close()
	})

	db := dbService.GetDB()
	svcs := seedServices{
		chains:    services.NewChainService(db),
		gasPrices: services.NewGasPriceService(db),
		wallets:   services.NewWalletService(db),
		features:  services.NewFeatureService(db),
		safeApps:  services.NewSafeAppService(db),
	}

	seeder, err := NewSeeder(svcs.chains, svcs.gasPrices, svcs.wallets, svcs.features, svcs.safeApps)
	require.NoError(t, err)
	return seeder, svcs
}

func TestSeederApply(t *testing.T) {
	seeder, svcs := setupSeeder(t)

	file, err := seeder.Load([]byte(seedDocument))
	require.NoError(t, err)
	require.NoError(t, seeder.Apply(file))

	mainnet, err := svcs.chains.GetChainByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Ethereum", mainnet.Name)
	assert.Equal(t, int16(5), mainnet.Relevance)
	assert.Equal(t, models.RPCAuthenticationAPIKeyPath, mainnet.RPCAuthentication)
	assert.Equal(t, "#001428", mainnet.ThemeTextColor)
	assert.Equal(t, "chains/1/currency_logo.png", mainnet.CurrencyLogoPath)

	// Seeded addresses come out checksummed
	require.NotNil(t, mainnet.ENSRegistryAddress)
	assert.Equal(t, "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e", *mainnet.ENSRegistryAddress)

	// Omitted fields pick up the documented defaults
	gnosis, err := svcs.chains.GetChainByShortName("gno")
	require.NoError(t, err)
	assert.True(t, gnosis.L2)
	assert.Equal(t, models.DefaultRelevance, gnosis.Relevance)
	assert.Equal(t, models.RPCAuthenticationNone, gnosis.RPCAuthentication)
	assert.Equal(t, models.DefaultThemeTextColor, gnosis.ThemeTextColor)
	assert.Equal(t, models.DefaultThemeBackground, gnosis.ThemeBackgroundColor)
	assert.Equal(t, models.DefaultCurrencyDecimals, gnosis.CurrencyDecimals)

	gasPrices, err := svcs.gasPrices.ListGasPrices(1)
	require.NoError(t, err)
	require.Len(t, gasPrices, 2)

	source, err := gasPrices[0].Source()
	require.NoError(t, err)
	oracle, ok := source.(models.OracleSource)
	require.True(t, ok)
	assert.Equal(t, "https://ethgasstation.info/json/ethgasAPI.json", oracle.URI)
	assert.Equal(t, "fast", oracle.Parameter)
	assert.True(t, oracle.GweiFactor.Equal(decimal.RequireFromString("100000000")))

	source, err = gasPrices[1].Source()
	require.NoError(t, err)
	fixed, ok := source.(models.FixedSource)
	require.True(t, ok)
	assert.True(t, fixed.WeiValue.Equal(decimal.RequireFromString("24000000000")))

	enabled, err := svcs.wallets.EnabledWallets(1)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "metamask", enabled[0].Key)

	disabled, err := svcs.wallets.DisabledWallets(1)
	require.NoError(t, err)
	require.Len(t, disabled, 1)
	assert.Equal(t, "walletConnect", disabled[0].Key)

	enabledFeatures, err := svcs.features.EnabledFeatures(1)
	require.NoError(t, err)
	require.Len(t, enabledFeatures, 1)
	assert.Equal(t, "contractInteraction", enabledFeatures[0].Key)

	// Only the visible app shows up; visibility defaulted to true for it
	apps, err := svcs.safeApps.ListSafeApps(nil)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Swap", apps[0].Name)
	assert.True(t, apps[0].Visible)
	require.NotNil(t, apps[0].Provider)
	assert.Equal(t, "Example Finance", apps[0].Provider.Name)
}

func TestSeederLoadFile(t *testing.T) {
	seeder, _ := setupSeeder(t)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedDocument), 0644))

	file, err := seeder.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Chains, 2)
	assert.Len(t, file.SafeApps, 2)

	_, err = seeder.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read seed file")
}

func TestSeederLoadRejectsInvalidVersion(t *testing.T) {
	seeder, _ := setupSeeder(t)

	document := `chains:
  - id: 1
    name: Ethereum
    short_name: eth
    rpc_uri: https://rpc.example
    public_rpc_uri: https://rpc.example
    block_explorer_uri_address_template: https://scan.example/address/{{address}}
    block_explorer_uri_tx_hash_template: https://scan.example/tx/{{txHash}}
    block_explorer_uri_api_template: https://scan.example/api
    currency_name: Ether
    currency_symbol: ETH
    transaction_service_uri: https://tx.example
    recommended_master_copy_version: "1.3"
`

	_, err := seeder.Load([]byte(document))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RecommendedMasterCopyVersion")
	assert.Contains(t, err.Error(), "semverfull")
}

func TestSeederLoadRejectsMalformedYAML(t *testing.T) {
	seeder, _ := setupSeeder(t)

	_, err := seeder.Load([]byte("chains: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse seed file")
}

func TestSeederApplyRejectsUndeclaredWallet(t *testing.T) {
	seeder, _ := setupSeeder(t)

	document := `chains:
  - id: 1
    name: Ethereum
    short_name: eth
    rpc_uri: https://rpc.example
    public_rpc_uri: https://rpc.example
    block_explorer_uri_address_template: https://scan.example/address/{{address}}
    block_explorer_uri_tx_hash_template: https://scan.example/tx/{{txHash}}
    block_explorer_uri_api_template: https://scan.example/api
    currency_name: Ether
    currency_symbol: ETH
    transaction_service_uri: https://tx.example
    recommended_master_copy_version: "1.3.0"
    wallets:
      - ghost
`

	file, err := seeder.Load([]byte(document))
	require.NoError(t, err)

	err = seeder.Apply(file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	assert.Contains(t, err.Error(), `enable wallet "ghost"`)
}

func TestSeederApplyStarterDocument(t *testing.T) {
	seeder, svcs := setupSeeder(t)

	file, err := seeder.Load(assets.StarterSeed)
	require.NoError(t, err)
	require.NoError(t, seeder.Apply(file))

	chains, count, err := svcs.chains.ListChains(services.ChainListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	// Default ordering puts the most relevant chain first.
	assert.Equal(t, "Ethereum", chains[0].Name)

	apps, err := svcs.safeApps.ListSafeApps(nil)
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}
