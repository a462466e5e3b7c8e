package models

import (
	"fmt"
	"path"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rxtech-lab/chain-directory/internal/validation"
)

// RPCAuthentication describes how clients must authenticate against one of
// a chain's RPC endpoints.
type RPCAuthentication string

const (
	RPCAuthenticationAPIKeyPath RPCAuthentication = "API_KEY_PATH"
	RPCAuthenticationNone       RPCAuthentication = "NO_AUTHENTICATION"
)

// Chain is one blockchain's directory entry. The primary key is the chain's
// own network id, assigned by the operator rather than the database.
type Chain struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Relevance   int16  `gorm:"not null;default:100" json:"relevance"`
	Name        string `gorm:"not null" json:"name"`
	ShortName   string `gorm:"uniqueIndex;not null" json:"short_name"`
	Description string `json:"description"`
	L2          bool   `gorm:"not null" json:"l2"`

	RPCAuthentication         RPCAuthentication `gorm:"not null" json:"rpc_authentication"`
	RPCURI                    string            `gorm:"not null" json:"rpc_uri"`
	SafeAppsRPCAuthentication RPCAuthentication `gorm:"not null" json:"safe_apps_rpc_authentication"`
	SafeAppsRPCURI            string            `json:"safe_apps_rpc_uri"`
	PublicRPCAuthentication   RPCAuthentication `gorm:"not null" json:"public_rpc_authentication"`
	PublicRPCURI              string            `gorm:"not null" json:"public_rpc_uri"`

	BlockExplorerURIAddressTemplate string `gorm:"not null" json:"block_explorer_uri_address_template"`
	BlockExplorerURITxHashTemplate  string `gorm:"not null" json:"block_explorer_uri_tx_hash_template"`
	BlockExplorerURIAPITemplate     string `gorm:"not null" json:"block_explorer_uri_api_template"`

	CurrencyName     string `gorm:"not null" json:"currency_name"`
	CurrencySymbol   string `gorm:"not null" json:"currency_symbol"`
	CurrencyDecimals int    `gorm:"not null;default:18" json:"currency_decimals"`
	CurrencyLogoPath string `json:"currency_logo_path"`

	TransactionServiceURI    string `gorm:"not null" json:"transaction_service_uri"`
	VPCTransactionServiceURI string `gorm:"not null" json:"vpc_transaction_service_uri"`

	ThemeTextColor       string `gorm:"not null" json:"theme_text_color"`
	ThemeBackgroundColor string `gorm:"not null" json:"theme_background_color"`

	ENSRegistryAddress *string `gorm:"type:varchar(42)" json:"ens_registry_address"`

	RecommendedMasterCopyVersion string `gorm:"not null" json:"recommended_master_copy_version"`

	GasPrices []GasPrice `gorm:"foreignKey:ChainID;constraint:OnDelete:CASCADE" json:"gas_prices,omitempty"`
	Wallets   []Wallet   `gorm:"many2many:chain_wallets" json:"wallets,omitempty"`
	Features  []Feature  `gorm:"many2many:chain_features" json:"features,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Defaults applied by ApplyDefaults for fields the write path may omit.
const (
	DefaultRelevance        int16 = 100
	DefaultCurrencyDecimals       = 18
	DefaultThemeTextColor         = "#ffffff"
	DefaultThemeBackground        = "#000000"
)

// ApplyDefaults fills the fields that carry a documented default when the
// caller left them at their zero value.
func (c *Chain) ApplyDefaults() {
	if c.Relevance == 0 {
		c.Relevance = DefaultRelevance
	}
	if c.CurrencyDecimals == 0 {
		c.CurrencyDecimals = DefaultCurrencyDecimals
	}
	if c.ThemeTextColor == "" {
		c.ThemeTextColor = DefaultThemeTextColor
	}
	if c.ThemeBackgroundColor == "" {
		c.ThemeBackgroundColor = DefaultThemeBackground
	}
	if c.RPCAuthentication == "" {
		c.RPCAuthentication = RPCAuthenticationNone
	}
	if c.SafeAppsRPCAuthentication == "" {
		c.SafeAppsRPCAuthentication = RPCAuthenticationNone
	}
	if c.PublicRPCAuthentication == "" {
		c.PublicRPCAuthentication = RPCAuthenticationNone
	}
}

// Validate checks the chain's field level invariants and reports every
// violation at once.
func (c *Chain) Validate() error {
	verr := &validation.ValidationError{}
	if !validation.IsHexColor(c.ThemeTextColor) {
		verr.Add("theme_text_color", validation.MsgInvalidHexColor)
	}
	if !validation.IsHexColor(c.ThemeBackgroundColor) {
		verr.Add("theme_background_color", validation.MsgInvalidHexColor)
	}
	if !validation.IsSemVer(c.RecommendedMasterCopyVersion) {
		verr.Add("recommended_master_copy_version", validation.MsgInvalidSemVer)
	}
	if c.ENSRegistryAddress != nil && !validation.IsEthereumAddress(*c.ENSRegistryAddress) {
		verr.Add("ens_registry_address", validation.MsgInvalidEthereumAddress)
	}
	return verr.Err()
}

// NormalizeENSRegistryAddress rewrites the ENS registry address into its
// EIP-55 checksummed form. Callers validate first; an unset address is left
// alone.
func (c *Chain) NormalizeENSRegistryAddress() {
	if c.ENSRegistryAddress == nil {
		return
	}
	checksummed := common.HexToAddress(*c.ENSRegistryAddress).Hex()
	c.ENSRegistryAddress = &checksummed
}

// NativeCurrencyLogoPath returns the storage path for a chain's currency
// logo: keyed by chain id, keeping the uploaded file's extension.
func NativeCurrencyLogoPath(chainID uint64, filename string) string {
	return fmt.Sprintf("chains/%d/currency_logo%s", chainID, path.Ext(filename))
}
