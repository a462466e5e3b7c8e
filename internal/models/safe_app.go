package models

import "time"

// Provider identifies the organization publishing a safe app. The URL is
// the natural key.
type Provider struct {
	URL       string    `gorm:"primaryKey" json:"url"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SafeApp is a third party application listed in the directory. ChainIDs is
// the set of chains the app supports, stored as a JSON array column.
type SafeApp struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	URL         string    `gorm:"not null" json:"url"`
	Name        string    `gorm:"not null" json:"name"`
	IconURL     string    `json:"icon_url"`
	Description string    `json:"description"`
	ChainIDs    []uint64  `gorm:"serializer:json" json:"chain_ids"`
	ProviderURL *string   `json:"provider_url,omitempty"`
	Provider    *Provider `gorm:"foreignKey:ProviderURL;references:URL" json:"provider,omitempty"`
	Visible     bool      `gorm:"not null" json:"visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupportsChain reports whether chainID appears in the app's supported
// chain list.
func (s *SafeApp) SupportsChain(chainID uint64) bool {
	for _, id := range s.ChainIDs {
		if id == chainID {
			return true
		}
	}
	return false
}
