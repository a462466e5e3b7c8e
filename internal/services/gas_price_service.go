package services

import (
	"errors"

	"github.com/rxtech-lab/chain-directory/internal/models"
	"gorm.io/gorm"
)

// GasPriceService handles gas price source operations
type GasPriceService interface {
	CreateGasPrice(gasPrice *models.GasPrice) error
	UpdateGasPrice(gasPrice *models.GasPrice) error
	ListGasPrices(chainID uint64) ([]models.GasPrice, error)
}

type gasPriceService struct {
	db *gorm.DB
}

// NewGasPriceService creates a new GasPriceService
func NewGasPriceService(db *gorm.DB) GasPriceService {
	return &gasPriceService{db: db}
}

// CreateGasPrice validates and stores a gas price source for a chain
func (s *gasPriceService) CreateGasPrice(gasPrice *models.GasPrice) error {
	gasPrice.ApplyDefaults()
	if err := gasPrice.Validate(); err != nil {
		return err
	}
	return s.db.Create(gasPrice).Error
}

// UpdateGasPrice validates and persists changes to a gas price source
func (s *gasPriceService) UpdateGasPrice(gasPrice *models.GasPrice) error {
	if err := gasPrice.Validate(); err != nil {
		return err
	}
	return s.db.Save(gasPrice).Error
}

// ListGasPrices returns a chain's gas price sources ordered by rank, then
// insertion order for equal ranks.
func (s *gasPriceService) ListGasPrices(chainID uint64) ([]models.GasPrice, error) {
	if err := s.chainExists(chainID); err != nil {
		return nil, err
	}
	var gasPrices []models.GasPrice
	err := s.db.Where("chain_id = ?", chainID).Order("rank, id").Find(&gasPrices).Error
	return gasPrices, err
}

func (s *gasPriceService) chainExists(chainID uint64) error {
	var chain models.Chain
	err := s.db.Select("id").First(&chain, "id = ?", chainID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
