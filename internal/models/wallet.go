package models

import "time"

// Wallet is a client wallet known to the directory, identified by a unique
// key. A wallet is enabled per chain through the chain_wallets join table;
// every wallet not enabled for a chain counts as disabled there.
type Wallet struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Chains    []Chain   `gorm:"many2many:chain_wallets" json:"chains,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
