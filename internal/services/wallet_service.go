package services

import (
	"errors"

	"github.com/rxtech-lab/chain-directory/internal/models"
	"gorm.io/gorm"
)

// WalletService handles wallet registration and per-chain enablement
type WalletService interface {
	CreateWallet(wallet *models.Wallet) error
	ListWallets() ([]models.Wallet, error)
	EnableWallet(chainID uint64, walletKey string) error
	EnabledWallets(chainID uint64) ([]models.Wallet, error)
	DisabledWallets(chainID uint64) ([]models.Wallet, error)
}

type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletService
func NewWalletService(db *gorm.DB) WalletService {
	return &walletService{db: db}
}

// CreateWallet registers a wallet under its unique key
func (s *walletService) CreateWallet(wallet *models.Wallet) error {
	return s.db.Create(wallet).Error
}

// ListWallets returns every registered wallet ordered by key
func (s *walletService) ListWallets() ([]models.Wallet, error) {
	var wallets []models.Wallet
	err := s.db.Order("key").Find(&wallets).Error
	return wallets, err
}

// EnableWallet marks a wallet as enabled for a chain
func (s *walletService) EnableWallet(chainID uint64, walletKey string) error {
	var chain models.Chain
	if err := s.db.First(&chain, "id = ?", chainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	var wallet models.Wallet
	if err := s.db.First(&wallet, "key = ?", walletKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&chain).Association("Wallets").Append(&wallet)
}

// EnabledWallets returns the wallets enabled for a chain, ordered by key
func (s *walletService) EnabledWallets(chainID uint64) ([]models.Wallet, error) {
	enabled := s.db.Table("chain_wallets").Select("wallet_id").Where("chain_id = ?", chainID)
	var wallets []models.Wallet
	err := s.db.Where("id IN (?)", enabled).Order("key").Find(&wallets).Error
	return wallets, err
}

// DisabledWallets returns every registered wallet not enabled for the
// chain. Disablement is derived, not stored.
func (s *walletService) DisabledWallets(chainID uint64) ([]models.Wallet, error) {
	enabled := s.db.Table("chain_wallets").Select("wallet_id").Where("chain_id = ?", chainID)
	var wallets []models.Wallet
	err := s.db.Where("id NOT IN (?)", enabled).Order("key").Find(&wallets).Error
	return wallets, err
}
