package models

import "time"

// Metadata is the immutable descriptive payload fixed at mint time.
// ContentURI points at externally stored content and is never interpreted.
type Metadata struct {
	Name        string            `gorm:"not null" json:"name"`
	Description string            `gorm:"not null" json:"description"`
	ContentURI  string            `json:"content_uri,omitempty"`
	Attributes  map[string]string `gorm:"serializer:json" json:"attributes,omitempty"`
}

// Asset represents a uniquely-owned skill NFT. IDs are assigned
// monotonically at mint time and never reused; Creator and Metadata are
// fixed forever, Owner changes only through a successful purchase or an
// explicit transfer by the current owner.
type Asset struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Creator  Principal `gorm:"not null;index" json:"creator"`
	Owner    Principal `gorm:"not null;index" json:"owner"`
	Metadata Metadata  `gorm:"embedded" json:"metadata"`
	Price    int64     `gorm:"not null;default:0" json:"price"`
	Listed   bool      `gorm:"not null;default:false" json:"listed"`
	Active   bool      `gorm:"not null;default:true" json:"active"`
	MintedAt time.Time `gorm:"not null" json:"minted_at"`
}

// Clone returns a deep copy of the asset, including its attribute map, so
// callers can hand assets out of the state tables without aliasing them.
func (a *Asset) Clone() *Asset {
	cp := *a
	if a.Metadata.Attributes != nil {
		cp.Metadata.Attributes = make(map[string]string, len(a.Metadata.Attributes))
		for k, v := range a.Metadata.Attributes {
			cp.Metadata.Attributes[k] = v
		}
	}
	return &cp
}
