package models

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/chain-directory/internal/validation"
)

// MaxUint256 bounds fixed wei values, which must fit the EVM word size.
var MaxUint256 = decimal.NewFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)), 0)

// GasPrice is one gas price source attached to a chain. A row is either
// oracle backed or a fixed value, never both; rank orders sources within a
// chain, lower first.
type GasPrice struct {
	ID              uint64           `gorm:"primaryKey" json:"id"`
	ChainID         uint64           `gorm:"not null;index" json:"chain_id"`
	OracleURI       *string          `json:"oracle_uri"`
	OracleParameter *string          `json:"oracle_parameter"`
	GweiFactor      decimal.Decimal  `gorm:"type:decimal(19,9);not null" json:"gwei_factor"`
	FixedWeiValue   *decimal.Decimal `gorm:"type:decimal(79,0)" json:"fixed_wei_value"`
	Rank            int16            `gorm:"not null;default:100" json:"rank"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ApplyDefaults fills rank and gwei factor when the caller omitted them.
func (g *GasPrice) ApplyDefaults() {
	if g.Rank == 0 {
		g.Rank = 100
	}
	if g.GweiFactor.IsZero() {
		g.GweiFactor = decimal.NewFromInt(1)
	}
}

// Validate enforces the source exclusivity rule. Both violations are
// reported when both an oracle and a fixed value are present.
func (g *GasPrice) Validate() error {
	verr := &validation.ValidationError{}
	if (g.OracleURI != nil) == (g.FixedWeiValue != nil) {
		verr.Add("oracle_uri", validation.MsgGasPriceSourceExclusive)
		verr.Add("fixed_wei_value", validation.MsgGasPriceSourceExclusive)
	}
	if g.OracleURI != nil && (g.OracleParameter == nil || *g.OracleParameter == "") {
		verr.Add("oracle_parameter", validation.MsgOracleParameterRequired)
	}
	if g.FixedWeiValue != nil && (g.FixedWeiValue.IsNegative() || g.FixedWeiValue.GreaterThan(MaxUint256)) {
		verr.Add("fixed_wei_value", validation.MsgValueExceedsUint256)
	}
	return verr.Err()
}

// GasPriceSource is the resolved pricing strategy of a gas price row,
// either OracleSource or FixedSource.
type GasPriceSource interface {
	isGasPriceSource()
}

// OracleSource points consumers at an external price oracle. GweiFactor
// converts the oracle's reading into wei.
type OracleSource struct {
	URI        string
	Parameter  string
	GweiFactor decimal.Decimal
}

// FixedSource is a constant price in wei.
type FixedSource struct {
	WeiValue decimal.Decimal
}

func (OracleSource) isGasPriceSource() {}
func (FixedSource) isGasPriceSource()  {}

// Source returns the row's pricing strategy as a tagged variant. Rows that
// violate the exclusivity rule return the validation error instead.
func (g *GasPrice) Source() (GasPriceSource, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.OracleURI != nil {
		return OracleSource{
			URI:        *g.OracleURI,
			Parameter:  *g.OracleParameter,
			GweiFactor: g.GweiFactor,
		}, nil
	}
	return FixedSource{WeiValue: *g.FixedWeiValue}, nil
}
