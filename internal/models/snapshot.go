package models

import "time"

// SnapshotVersion is the current snapshot format version. Restoring a
// snapshot written with a newer version is refused rather than guessed at.
const SnapshotVersion = 1

// SnapshotMeta records the format version and the registry's next-id
// counter alongside a saved snapshot. Exactly one row exists per snapshot
// database.
type SnapshotMeta struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Version int       `gorm:"not null" json:"version"`
	NextID  uint64    `gorm:"not null" json:"next_id"`
	SavedAt time.Time `gorm:"not null" json:"saved_at"`
}

// TableName overrides the default pluralized table name.
func (SnapshotMeta) TableName() string { return "snapshot_meta" }
