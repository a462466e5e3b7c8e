package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rxtech-lab/chain-directory/internal/models"
	"github.com/rxtech-lab/chain-directory/internal/validation"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use in-memory SQLite database for testing
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to connect to in-memory database")

	err = db.AutoMigrate(
		&models.Chain{},
		&models.GasPrice{},
		&models.Wallet{},
		&models.Feature{},
		&models.Provider{},
		&models.SafeApp{},
	)
	require.NoError(t, err, "Failed to run migrations")

	// Enable debug mode to see SQL queries during test
	if testing.Verbose() {
		db = db.Debug()
	}

	return db
}

func testChain(id uint64, name, shortName string, relevance int16) *models.Chain {
	return &models.Chain{
		ID:                           id,
		Relevance:                    relevance,
		Name:                         name,
		ShortName:                    shortName,
		RPCAuthentication:            models.RPCAuthenticationNone,
		RPCURI:                       fmt.Sprintf("https://rpc.%s.example/", shortName),
		PublicRPCURI:                 fmt.Sprintf("https://public.%s.example/", shortName),
		TransactionServiceURI:        fmt.Sprintf("https://tx.%s.example/", shortName),
		VPCTransactionServiceURI:     fmt.Sprintf("http://tx.%s.internal/", shortName),
		CurrencyName:                 "Ether",
		CurrencySymbol:               "ETH",
		ThemeTextColor:               "#ffffff",
		ThemeBackgroundColor:         "#000000",
		RecommendedMasterCopyVersion: "1.3.0",
	}
}

func seedChains(t *testing.T, service ChainService, chains ...*models.Chain) {
	for _, chain := range chains {
		require.NoError(t, service.CreateChain(chain))
	}
}

func chainIDs(chains []models.Chain) []uint64 {
	ids := make([]uint64, len(chains))
	for i, c := range chains {
		ids[i] = c.ID
	}
	return ids
}

func TestCreateChain(t *testing.T) {
	t.Run("applies defaults before storing", func(t *testing.T) {
		service := NewChainService(setupTestDB(t))

		chain := testChain(1, "Ethereum", "eth", 0)
		chain.ThemeTextColor = ""
		chain.ThemeBackgroundColor = ""
		require.NoError(t, service.CreateChain(chain))

		stored, err := service.GetChainByID(1)
		require.NoError(t, err)
		assert.Equal(t, int16(100), stored.Relevance)
		assert.Equal(t, 18, stored.CurrencyDecimals)
		assert.Equal(t, "#ffffff", stored.ThemeTextColor)
		assert.Equal(t, "#000000", stored.ThemeBackgroundColor)
		assert.Equal(t, models.RPCAuthenticationNone, stored.SafeAppsRPCAuthentication)
	})

	t.Run("rejects invalid fields together", func(t *testing.T) {
		service := NewChainService(setupTestDB(t))

		chain := testChain(1, "Ethereum", "eth", 100)
		chain.ThemeTextColor = "white"
		chain.RecommendedMasterCopyVersion = "1.02.0"
		err := service.CreateChain(chain)
		require.Error(t, err)

		var verr *validation.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.NotEmpty(t, verr.FieldMessages("theme_text_color"))
		assert.NotEmpty(t, verr.FieldMessages("recommended_master_copy_version"))

		// Nothing was stored.
		_, err = service.GetChainByID(1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("normalizes ens registry address", func(t *testing.T) {
		service := NewChainService(setupTestDB(t))

		lower := "0x00000000000c2e074ec69a0dfb2997ba6c7d2e1e"
		chain := testChain(1, "Ethereum", "eth", 100)
		chain.ENSRegistryAddress = &lower
		require.NoError(t, service.CreateChain(chain))

		stored, err := service.GetChainByID(1)
		require.NoError(t, err)
		require.NotNil(t, stored.ENSRegistryAddress)
		assert.Equal(t, "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e", *stored.ENSRegistryAddress)
	})
}

func TestGetChainByID(t *testing.T) {
	service := NewChainService(setupTestDB(t))
	seedChains(t, service, testChain(5, "Goerli", "gor", 100))

	t.Run("returns the chain", func(t *testing.T) {
		chain, err := service.GetChainByID(5)
		require.NoError(t, err)
		assert.Equal(t, "Goerli", chain.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := service.GetChainByID(404)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetChainByShortName(t *testing.T) {
	service := NewChainService(setupTestDB(t))
	seedChains(t, service, testChain(1, "Ethereum", "eth", 100))

	t.Run("exact match", func(t *testing.T) {
		chain, err := service.GetChainByShortName("eth")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), chain.ID)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := service.GetChainByShortName("ETH")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing short name", func(t *testing.T) {
		_, err := service.GetChainByShortName("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListChainsOrdering(t *testing.T) {
	service := NewChainService(setupTestDB(t))
	seedChains(t, service,
		testChain(1, "Zora", "zora", 10),
		testChain(2, "Arbitrum", "arb1", 50),
		testChain(3, "Polygon", "matic", 50),
	)

	tests := []struct {
		name     string
		ordering []string
		wantIDs  []uint64
	}{
		{"default is relevance then name", nil, []uint64{1, 2, 3}},
		{"by name", []string{"name"}, []uint64{2, 3, 1}},
		{"by name descending", []string{"-name"}, []uint64{1, 3, 2}},
		{"by relevance descending with name tiebreak", []string{"-relevance", "name"}, []uint64{2, 3, 1}},
		{"unknown fields fall back to default", []string{"created_at", "rpc_uri"}, []uint64{1, 2, 3}},
		{"unknown fields are dropped from a mixed request", []string{"bogus", "name"}, []uint64{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chains, count, err := service.ListChains(ChainListParams{Ordering: tt.ordering})
			require.NoError(t, err)
			assert.Equal(t, int64(3), count)
			assert.Equal(t, tt.wantIDs, chainIDs(chains))
		})
	}
}

func TestListChainsPagination(t *testing.T) {
	t.Run("default page size", func(t *testing.T) {
		service := NewChainService(setupTestDB(t))
		for i := 1; i <= 12; i++ {
			seedChains(t, service, testChain(uint64(i), fmt.Sprintf("Chain %03d", i), fmt.Sprintf("c%03d", i), 100))
		}

		chains, count, err := service.ListChains(ChainListParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(12), count)
		assert.Len(t, chains, DefaultPageLimit)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		service := NewChainService(setupTestDB(t))
		for i := 1; i <= 120; i++ {
			seedChains(t, service, testChain(uint64(i), fmt.Sprintf("Chain %03d", i), fmt.Sprintf("c%03d", i), 100))
		}

		chains, count, err := service.ListChains(ChainListParams{Limit: 500})
		require.NoError(t, err)
		assert.Equal(t, int64(120), count)
		assert.Len(t, chains, MaxPageLimit)
	})

	t.Run("offset walks the collection without overlap", func(t *testing.T) {
		service := NewChainService(setupTestDB(t))
		for i := 1; i <= 5; i++ {
			seedChains(t, service, testChain(uint64(i), fmt.Sprintf("Chain %03d", i), fmt.Sprintf("c%03d", i), 100))
		}

		first, count, err := service.ListChains(ChainListParams{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)

		second, _, err := service.ListChains(ChainListParams{Limit: 2, Offset: 2})
		require.NoError(t, err)
		third, _, err := service.ListChains(ChainListParams{Limit: 2, Offset: 4})
		require.NoError(t, err)

		var walked []uint64
		for _, page := range [][]models.Chain{first, second, third} {
			walked = append(walked, chainIDs(page)...)
		}
		assert.Equal(t, []uint64{1, 2, 3, 4, 5}, walked)
	})

	t.Run("offset past the end returns an empty page with the real count", func(t *testing.T) {
		service := NewChainService(setupTestDB(t))
		seedChains(t, service, testChain(1, "Ethereum", "eth", 100))

		chains, count, err := service.ListChains(ChainListParams{Limit: 10, Offset: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Empty(t, chains)
	})
}
