package seed

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/chain-directory/internal/models"
	"github.com/rxtech-lab/chain-directory/internal/services"
	"github.com/rxtech-lab/chain-directory/internal/validation"
)

// Seeder loads seed documents and writes their records through the service
// layer, so seeded data passes the same checks as any other write.
type Seeder struct {
	validator *validator.Validate
	chains    services.ChainService
	gasPrices services.GasPriceService
	wallets   services.WalletService
	features  services.FeatureService
	safeApps  services.SafeAppService
}

func NewSeeder(
	chains services.ChainService,
	gasPrices services.GasPriceService,
	wallets services.WalletService,
	features services.FeatureService,
	safeApps services.SafeAppService,
) (*Seeder, error) {
	v := validator.New()
	if err := validation.RegisterTagValidators(v); err != nil {
		return nil, err
	}
	return &Seeder{
		validator: v,
		chains:    chains,
		gasPrices: gasPrices,
		wallets:   wallets,
		features:  features,
		safeApps:  safeApps,
	}, nil
}

// LoadFile reads and validates the seed document at path.
func (s *Seeder) LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return s.Load(data)
}

// Load parses a YAML seed document and validates every record in it before
// anything is written.
func (s *Seeder) Load(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := s.validator.Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return &file, nil
}

// Apply writes the document's records into an empty directory. Wallets,
// features and providers go first so chains and safe apps can reference
// them by key.
func (s *Seeder) Apply(file *File) error {
	for _, key := range file.Wallets {
		if err := s.wallets.CreateWallet(&models.Wallet{Key: key}); err != nil {
			return fmt.Errorf("failed to create wallet %q: %w", key, err)
		}
	}
	for _, key := range file.Features {
		if err := s.features.CreateFeature(&models.Feature{Key: key}); err != nil {
			return fmt.Errorf("failed to create feature %q: %w", key, err)
		}
	}
	for _, provider := range file.Providers {
		if err := s.safeApps.CreateProvider(&models.Provider{URL: provider.URL, Name: provider.Name}); err != nil {
			return fmt.Errorf("failed to create provider %q: %w", provider.URL, err)
		}
	}
	for _, chainSeed := range file.Chains {
		if err := s.applyChain(chainSeed); err != nil {
			return fmt.Errorf("failed to seed chain %d (%s): %w", chainSeed.ID, chainSeed.Name, err)
		}
	}
	for _, appSeed := range file.SafeApps {
		if err := s.applySafeApp(appSeed); err != nil {
			return fmt.Errorf("failed to seed safe app %q: %w", appSeed.Name, err)
		}
	}
	return nil
}

func (s *Seeder) applyChain(chainSeed ChainSeed) error {
	chain := &models.Chain{
		ID:          chainSeed.ID,
		Relevance:   chainSeed.Relevance,
		Name:        chainSeed.Name,
		ShortName:   chainSeed.ShortName,
		Description: chainSeed.Description,
		L2:          chainSeed.L2,

		RPCAuthentication:         models.RPCAuthentication(chainSeed.RPCAuthentication),
		RPCURI:                    chainSeed.RPCURI,
		SafeAppsRPCAuthentication: models.RPCAuthentication(chainSeed.SafeAppsRPCAuthentication),
		SafeAppsRPCURI:            chainSeed.SafeAppsRPCURI,
		PublicRPCAuthentication:   models.RPCAuthentication(chainSeed.PublicRPCAuthentication),
		PublicRPCURI:              chainSeed.PublicRPCURI,

		BlockExplorerURIAddressTemplate: chainSeed.BlockExplorerURIAddressTemplate,
		BlockExplorerURITxHashTemplate:  chainSeed.BlockExplorerURITxHashTemplate,
		BlockExplorerURIAPITemplate:     chainSeed.BlockExplorerURIAPITemplate,

		CurrencyName:     chainSeed.CurrencyName,
		CurrencySymbol:   chainSeed.CurrencySymbol,
		CurrencyDecimals: chainSeed.CurrencyDecimals,

		TransactionServiceURI:    chainSeed.TransactionServiceURI,
		VPCTransactionServiceURI: chainSeed.VPCTransactionServiceURI,

		ThemeTextColor:       chainSeed.ThemeTextColor,
		ThemeBackgroundColor: chainSeed.ThemeBackgroundColor,

		ENSRegistryAddress: chainSeed.ENSRegistryAddress,

		RecommendedMasterCopyVersion: chainSeed.RecommendedMasterCopyVersion,
	}
	if chainSeed.CurrencyLogoFile != "" {
		chain.CurrencyLogoPath = models.NativeCurrencyLogoPath(chainSeed.ID, chainSeed.CurrencyLogoFile)
	}

	if err := s.chains.CreateChain(chain); err != nil {
		return err
	}

	for i, gasPriceSeed := range chainSeed.GasPrices {
		gasPrice, err := gasPriceSeed.toModel(chainSeed.ID)
		if err != nil {
			return fmt.Errorf("gas price %d: %w", i, err)
		}
		if err := s.gasPrices.CreateGasPrice(gasPrice); err != nil {
			return fmt.Errorf("gas price %d: %w", i, err)
		}
	}

	for _, key := range chainSeed.Wallets {
		if err := s.wallets.EnableWallet(chainSeed.ID, key); err != nil {
			return fmt.Errorf("failed to enable wallet %q: %w", key, err)
		}
	}
	for _, key := range chainSeed.Features {
		if err := s.features.EnableFeature(chainSeed.ID, key); err != nil {
			return fmt.Errorf("failed to enable feature %q: %w", key, err)
		}
	}
	return nil
}

// applySafeApp stores one safe app. Visibility defaults to true when the
// document leaves it unset.
func (s *Seeder) applySafeApp(appSeed SafeAppSeed) error {
	visible := true
	if appSeed.Visible != nil {
		visible = *appSeed.Visible
	}
	return s.safeApps.CreateSafeApp(&models.SafeApp{
		Name:        appSeed.Name,
		URL:         appSeed.URL,
		IconURL:     appSeed.IconURL,
		Description: appSeed.Description,
		ChainIDs:    appSeed.ChainIDs,
		ProviderURL: appSeed.ProviderURL,
		Visible:     visible,
	})
}

func (g GasPriceSeed) toModel(chainID uint64) (*models.GasPrice, error) {
	gasPrice := &models.GasPrice{
		ChainID:         chainID,
		OracleURI:       g.OracleURI,
		OracleParameter: g.OracleParameter,
		Rank:            g.Rank,
	}
	if g.GweiFactor != "" {
		factor, err := decimal.NewFromString(g.GweiFactor)
		if err != nil {
			return nil, fmt.Errorf("invalid gwei_factor %q: %w", g.GweiFactor, err)
		}
		gasPrice.GweiFactor = factor
	}
	if g.FixedWeiValue != nil {
		value, err := decimal.NewFromString(*g.FixedWeiValue)
		if err != nil {
			return nil, fmt.Errorf("invalid fixed_wei_value %q: %w", *g.FixedWeiValue, err)
		}
		gasPrice.FixedWeiValue = &value
	}
	return gasPrice, nil
}
