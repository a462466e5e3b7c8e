package seed

// File is one seed document. Wallets and features are declared at the top
// level and referenced by key from the chains that enable them.
type File struct {
	Chains    []ChainSeed    `yaml:"chains" validate:"dive"`
	Wallets   []string       `yaml:"wallets" validate:"dive,required"`
	Features  []string       `yaml:"features" validate:"dive,required"`
	Providers []ProviderSeed `yaml:"providers" validate:"dive"`
	SafeApps  []SafeAppSeed  `yaml:"safe_apps" validate:"dive"`
}

type ChainSeed struct {
	ID          uint64 `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	ShortName   string `yaml:"short_name" validate:"required"`
	Description string `yaml:"description"`
	L2          bool   `yaml:"l2"`
	Relevance   int16  `yaml:"relevance"`

	RPCAuthentication         string `yaml:"rpc_authentication" validate:"omitempty,oneof=API_KEY_PATH NO_AUTHENTICATION"`
	RPCURI                    string `yaml:"rpc_uri" validate:"required,url"`
	SafeAppsRPCAuthentication string `yaml:"safe_apps_rpc_authentication" validate:"omitempty,oneof=API_KEY_PATH NO_AUTHENTICATION"`
	SafeAppsRPCURI            string `yaml:"safe_apps_rpc_uri" validate:"omitempty,url"`
	PublicRPCAuthentication   string `yaml:"public_rpc_authentication" validate:"omitempty,oneof=API_KEY_PATH NO_AUTHENTICATION"`
	PublicRPCURI              string `yaml:"public_rpc_uri" validate:"required,url"`

	BlockExplorerURIAddressTemplate string `yaml:"block_explorer_uri_address_template" validate:"required"`
	BlockExplorerURITxHashTemplate  string `yaml:"block_explorer_uri_tx_hash_template" validate:"required"`
	BlockExplorerURIAPITemplate     string `yaml:"block_explorer_uri_api_template" validate:"required"`

	CurrencyName     string `yaml:"currency_name" validate:"required"`
	CurrencySymbol   string `yaml:"currency_symbol" validate:"required"`
	CurrencyDecimals int    `yaml:"currency_decimals"`
	CurrencyLogoFile string `yaml:"currency_logo_file"`

	TransactionServiceURI    string `yaml:"transaction_service_uri" validate:"required,url"`
	VPCTransactionServiceURI string `yaml:"vpc_transaction_service_uri" validate:"omitempty,url"`

	ThemeTextColor       string `yaml:"theme_text_color" validate:"omitempty,hexcolor6"`
	ThemeBackgroundColor string `yaml:"theme_background_color" validate:"omitempty,hexcolor6"`

	ENSRegistryAddress *string `yaml:"ens_registry_address" validate:"omitempty,eth_addr"`

	RecommendedMasterCopyVersion string `yaml:"recommended_master_copy_version" validate:"required,semverfull"`

	GasPrices []GasPriceSeed `yaml:"gas_prices" validate:"dive"`
	Wallets   []string       `yaml:"wallets" validate:"dive,required"`
	Features  []string       `yaml:"features" validate:"dive,required"`
}

type GasPriceSeed struct {
	OracleURI       *string `yaml:"oracle_uri" validate:"omitempty,url"`
	OracleParameter *string `yaml:"oracle_parameter"`
	GweiFactor      string  `yaml:"gwei_factor" validate:"omitempty,numeric"`
	FixedWeiValue   *string `yaml:"fixed_wei_value" validate:"omitempty,number"`
	Rank            int16   `yaml:"rank"`
}

type ProviderSeed struct {
	URL  string `yaml:"url" validate:"required,url"`
	Name string `yaml:"name" validate:"required"`
}

type SafeAppSeed struct {
	Name        string   `yaml:"name" validate:"required"`
	URL         string   `yaml:"url" validate:"required,url"`
	IconURL     string   `yaml:"icon_url" validate:"omitempty,url"`
	Description string   `yaml:"description"`
	ChainIDs    []uint64 `yaml:"chain_ids" validate:"required,min=1"`
	ProviderURL *string  `yaml:"provider_url" validate:"omitempty,url"`
	Visible     *bool    `yaml:"visible"`
}
