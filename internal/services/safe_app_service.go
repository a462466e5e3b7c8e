package services

import (
	"github.com/rxtech-lab/chain-directory/internal/models"
	"gorm.io/gorm"
)

// SafeAppService handles safe app listings
type SafeAppService interface {
	CreateProvider(provider *models.Provider) error
	CreateSafeApp(app *models.SafeApp) error
	UpdateSafeApp(app *models.SafeApp) error
	ListSafeApps(chainID *uint64) ([]models.SafeApp, error)
}

type safeAppService struct {
	db *gorm.DB
}

// NewSafeAppService creates a new SafeAppService
func NewSafeAppService(db *gorm.DB) SafeAppService {
	return &safeAppService{db: db}
}

// CreateProvider registers an app provider under its URL
func (s *safeAppService) CreateProvider(provider *models.Provider) error {
	return s.db.Create(provider).Error
}

// CreateSafeApp stores a new safe app listing
func (s *safeAppService) CreateSafeApp(app *models.SafeApp) error {
	return s.db.Create(app).Error
}

// UpdateSafeApp persists changes to an existing safe app
func (s *safeAppService) UpdateSafeApp(app *models.SafeApp) error {
	return s.db.Save(app).Error
}

// ListSafeApps returns the visible safe apps, optionally narrowed to those
// supporting the given chain. Hidden apps never appear. The chain filter
// runs in process because the supported chain set is a JSON column.
func (s *safeAppService) ListSafeApps(chainID *uint64) ([]models.SafeApp, error) {
	var apps []models.SafeApp
	err := s.db.Preload("Provider").Where("visible = ?", true).Order("id").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	if chainID == nil {
		return apps, nil
	}

	filtered := make([]models.SafeApp, 0, len(apps))
	for _, app := range apps {
		if app.SupportsChain(*chainID) {
			filtered = append(filtered, app)
		}
	}
	return filtered, nil
}
