package services

import (
	"errors"

	"github.com/rxtech-lab/chain-directory/internal/models"
	"gorm.io/gorm"
)

// FeatureService handles feature flags and their per-chain enablement
type FeatureService interface {
	CreateFeature(feature *models.Feature) error
	ListFeatures() ([]models.Feature, error)
	EnableFeature(chainID uint64, featureKey string) error
	EnabledFeatures(chainID uint64) ([]models.Feature, error)
}

type featureService struct {
	db *gorm.DB
}

// NewFeatureService creates a new FeatureService
func NewFeatureService(db *gorm.DB) FeatureService {
	return &featureService{db: db}
}

// CreateFeature registers a feature under its unique key
func (s *featureService) CreateFeature(feature *models.Feature) error {
	return s.db.Create(feature).Error
}

// ListFeatures returns every registered feature ordered by key
func (s *featureService) ListFeatures() ([]models.Feature, error) {
	var features []models.Feature
	err := s.db.Order("key").Find(&features).Error
	return features, err
}

// EnableFeature marks a feature as enabled for a chain
func (s *featureService) EnableFeature(chainID uint64, featureKey string) error {
	var chain models.Chain
	if err := s.db.First(&chain, "id = ?", chainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	var feature models.Feature
	if err := s.db.First(&feature, "key = ?", featureKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&chain).Association("Features").Append(&feature)
}

// EnabledFeatures returns the features enabled for a chain, ordered by key
func (s *featureService) EnabledFeatures(chainID uint64) ([]models.Feature, error) {
	enabled := s.db.Table("chain_features").Select("feature_id").Where("chain_id = ?", chainID)
	var features []models.Feature
	err := s.db.Where("id IN (?)", enabled).Order("key").Find(&features).Error
	return features, err
}
