package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "skillmart/internal/errors"
	"skillmart/internal/models"
	"skillmart/internal/state"
)

// snapshotService persists the combined registry/ledger state across a
// restart boundary. It is invoked only at those boundaries: Restore before
// the server starts taking calls, Save after it has stopped. It never runs
// per-operation.
type snapshotService struct {
	db    *gorm.DB
	store *state.Store
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB, store *state.Store) SnapshotServicer {
	return &snapshotService{db: db, store: store}
}

// Save captures every asset, every account, and the next-id counter into
// the snapshot database, replacing any previous snapshot in one database
// transaction.
func (s *snapshotService) Save() (*models.SnapshotMeta, error) {
	tables := s.store.Export()

	assets := make([]models.Asset, 0, len(tables.Assets))
	for _, asset := range tables.Assets {
		assets = append(assets, *asset)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })

	accounts := make([]models.Account, 0, len(tables.Accounts))
	for _, acct := range tables.Accounts {
		accounts = append(accounts, *acct)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Principal < accounts[j].Principal })

	meta := &models.SnapshotMeta{
		ID:      1,
		Version: models.SnapshotVersion,
		NextID:  tables.NextID,
		SavedAt: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := wipe.Delete(&models.Asset{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := wipe.Delete(&models.Account{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := wipe.Delete(&models.SnapshotMeta{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if len(assets) > 0 {
			if err := tx.Create(&assets).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(accounts) > 0 {
			if err := tx.Create(&accounts).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := tx.Create(meta).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meta, nil
}

// Restore rebuilds the in-memory tables from the snapshot database. A
// missing snapshot means a fresh start; a snapshot written with a newer
// format version is refused before any live state is touched.
func (s *snapshotService) Restore() error {
	var meta models.SnapshotMeta
	if err := s.db.First(&meta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if meta.Version > models.SnapshotVersion {
		return apperrors.WithMessage(apperrors.ErrIncompatibleVersion,
			fmt.Sprintf("snapshot version %d is newer than supported version %d", meta.Version, models.SnapshotVersion))
	}

	var assets []models.Asset
	if err := s.db.Find(&assets).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var accounts []models.Account
	if err := s.db.Find(&accounts).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	tables := state.NewTables()
	tables.NextID = meta.NextID
	for i := range assets {
		asset := assets[i]
		tables.Assets[asset.ID] = &asset
	}
	for i := range accounts {
		acct := accounts[i]
		tables.Accounts[acct.Principal] = &acct
	}

	s.store.Replace(tables)
	return nil
}
