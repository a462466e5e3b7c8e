package services

import (
	"errors"
	"strings"

	"github.com/rxtech-lab/chain-directory/internal/models"
	"gorm.io/gorm"
)

// Page size bounds for list endpoints. Larger limits are clamped, never
// rejected.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// chainOrderings maps the accepted ordering tokens to SQL order clauses.
// Anything else in an ordering request is ignored.
var chainOrderings = map[string]string{
	"relevance":  "relevance",
	"-relevance": "relevance DESC",
	"name":       "name",
	"-name":      "name DESC",
}

// ChainListParams carries the query parameters of a chain listing.
type ChainListParams struct {
	Ordering []string
	Limit    int
	Offset   int
}

// ChainService handles chain-related operations
type ChainService interface {
	CreateChain(chain *models.Chain) error
	UpdateChain(chain *models.Chain) error
	GetChainByID(chainID uint64) (*models.Chain, error)
	GetChainByShortName(shortName string) (*models.Chain, error)
	ListChains(params ChainListParams) ([]models.Chain, int64, error)
}

type chainService struct {
	db *gorm.DB
}

// NewChainService creates a new ChainService
func NewChainService(db *gorm.DB) ChainService {
	return &chainService{db: db}
}

// CreateChain validates and stores a new chain entry
func (s *chainService) CreateChain(chain *models.Chain) error {
	chain.ApplyDefaults()
	if err := chain.Validate(); err != nil {
		return err
	}
	chain.NormalizeENSRegistryAddress()
	return s.db.Create(chain).Error
}

// UpdateChain validates and persists changes to an existing chain
func (s *chainService) UpdateChain(chain *models.Chain) error {
	if err := chain.Validate(); err != nil {
		return err
	}
	chain.NormalizeENSRegistryAddress()
	return s.db.Save(chain).Error
}

// GetChainByID returns the chain with the given network id
func (s *chainService) GetChainByID(chainID uint64) (*models.Chain, error) {
	var chain models.Chain
	err := s.db.First(&chain, "id = ?", chainID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chain, nil
}

// GetChainByShortName returns the chain with the given short name. The
// lookup is exact, including case.
func (s *chainService) GetChainByShortName(shortName string) (*models.Chain, error) {
	var chain models.Chain
	err := s.db.First(&chain, "short_name = ?", shortName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chain, nil
}

// ListChains returns one page of chains plus the total count
func (s *chainService) ListChains(params ChainListParams) ([]models.Chain, int64, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	var count int64
	if err := s.db.Model(&models.Chain{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var chains []models.Chain
	err := s.db.Order(chainOrderClause(params.Ordering)).Limit(limit).Offset(offset).Find(&chains).Error
	if err != nil {
		return nil, 0, err
	}
	return chains, count, nil
}

// chainOrderClause translates the requested ordering into SQL. Unknown
// fields are dropped; when nothing valid remains the relevance then name
// default applies.
func chainOrderClause(ordering []string) string {
	clauses := make([]string, 0, len(ordering))
	for _, field := range ordering {
		if clause, ok := chainOrderings[strings.TrimSpace(field)]; ok {
			clauses = append(clauses, clause)
		}
	}
	if len(clauses) == 0 {
		return "relevance, name"
	}
	return strings.Join(clauses, ", ")
}
