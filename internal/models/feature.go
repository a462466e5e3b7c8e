package models

import "time"

// Feature is an optional capability flag, enabled per chain through the
// chain_features join table.
type Feature struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Chains    []Chain   `gorm:"many2many:chain_features" json:"chains,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
