package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chain-directory/internal/api"
	"github.com/rxtech-lab/chain-directory/internal/assets"
	"github.com/rxtech-lab/chain-directory/internal/cache"
	"github.com/rxtech-lab/chain-directory/internal/config"
	"github.com/rxtech-lab/chain-directory/internal/seed"
	"github.com/rxtech-lab/chain-directory/internal/server"
	"github.com/rxtech-lab/chain-directory/internal/services"
)

// TestSetup holds all test infrastructure
type TestSetup struct {
	DBService      services.DBService
	ChainService   services.ChainService
	SafeAppService services.SafeAppService
	Seeder         *seed.Seeder
	APIServer      *api.APIServer
	ServerPort     int
	t              *testing.T
}

// NewTestSetup boots the full service against a throwaway database and a
// real listening socket.
func NewTestSetup(t *testing.T) *TestSetup {
	setup := &TestSetup{t: t}

	tempDir := t.TempDir()

	cfg, err := config.Load(tempDir)
	require.NoError(t, err)

	// Use a file database so every connection sees the same data
	dbService, err := services.NewSqliteDBService(filepath.Join(tempDir, "test.db"))
	require.NoError(t, err)
	setup.DBService = dbService

	zapLogger := zap.NewNop()

	chainService, gasPriceService, walletService, featureService, safeAppService := server.InitializeServices(dbService.GetDB())
	setup.ChainService = chainService
	setup.SafeAppService = safeAppService

	seeder, err := seed.NewSeeder(chainService, gasPriceService, walletService, featureService, safeAppService)
	require.NoError(t, err)
	setup.Seeder = seeder

	safeAppsCache := cache.NewMemoryCache(cache.SafeAppsRegion, cfg.Cache.SafeAppsTTL, cfg.Cache.CleanupInterval, zapLogger)

	apiServer := api.NewAPIServer(cfg, zapLogger, chainService, safeAppService, safeAppsCache)
	port, err := apiServer.Start(nil)
	require.NoError(t, err)
	setup.APIServer = apiServer
	setup.ServerPort = port

	// Wait for server to be ready
	time.Sleep(100 * time.Millisecond)

	return setup
}

// Cleanup shuts down the server and closes the database
func (s *TestSetup) Cleanup() {
	if s.APIServer != nil {
		_ = s.APIServer.Shutdown()
	}
	if s.DBService != nil {
		_ = s.DBService.Close()
	}
}

// ApplyStarterSeed loads the embedded starter document into the database
func (s *TestSetup) ApplyStarterSeed() {
	file, err := s.Seeder.Load(assets.StarterSeed)
	require.NoError(s.t, err)
	require.NoError(s.t, s.Seeder.Apply(file))
}

// MakeAPIRequest performs an HTTP request against the running server
func (s *TestSetup) MakeAPIRequest(method, path string) (*http.Response, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	url := fmt.Sprintf("http://localhost:%d%s", s.ServerPort, path)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}

// GetJSON fetches a path, asserts a 200 and decodes the body into out
func (s *TestSetup) GetJSON(path string, out interface{}) {
	resp, err := s.MakeAPIRequest("GET", path)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	require.Equal(s.t, http.StatusOK, resp.StatusCode, "GET %s", path)
	require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
}

// AssertServerHealth verifies the health endpoint responds
func (s *TestSetup) AssertServerHealth() {
	resp, err := s.MakeAPIRequest("GET", "/health")
	require.NoError(s.t, err)
	defer resp.Body.Close()

	require.Equal(s.t, http.StatusOK, resp.StatusCode)
}
