package services

import (
	"sort"
	"strings"
	"time"

	apperrors "skillmart/internal/errors"
	"skillmart/internal/models"
	"skillmart/internal/pagination"
	"skillmart/internal/state"
	"skillmart/internal/uuid"
)

// royaltyPercent is the fixed creator royalty taken from every resale,
// computed with floor division. The truncation remainder stays with the
// seller.
const royaltyPercent = 10

// registryService handles asset-related business logic.
type registryService struct {
	store  *state.Store
	ledger LedgerServicer
}

// NewRegistryService creates a new RegistryServicer.
func NewRegistryService(store *state.Store, ledger LedgerServicer) RegistryServicer {
	return &registryService{store: store, ledger: ledger}
}

// Mint creates a new asset owned by its creator, unlisted and active.
func (s *registryService) Mint(creator models.Principal, metadata models.Metadata) (*models.Asset, error) {
	if strings.TrimSpace(metadata.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "metadata name is required")
	}
	if strings.TrimSpace(metadata.Description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "metadata description is required")
	}

	var minted *models.Asset
	err := s.store.Atomic(func(t *state.Tables) error {
		asset := &models.Asset{
			ID:       t.AllocateID(),
			Creator:  creator,
			Owner:    creator,
			Metadata: metadata,
			Listed:   false,
			Active:   true,
			MintedAt: time.Now(),
		}
		t.Assets[asset.ID] = asset
		minted = asset.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return minted, nil
}

// List puts an asset up for sale at the given price.
func (s *registryService) List(caller models.Principal, id uint64, price int64) (*models.Asset, error) {
	if price <= 0 {
		return nil, apperrors.ErrInvalidPrice
	}

	var listed *models.Asset
	err := s.store.Atomic(func(t *state.Tables) error {
		asset, ok := t.Assets[id]
		if !ok {
			return apperrors.ErrAssetNotFound
		}
		if asset.Owner != caller {
			return apperrors.ErrNotOwner
		}
		if !asset.Active {
			return apperrors.ErrInactiveAsset
		}

		asset.Price = price
		asset.Listed = true
		listed = asset.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listed, nil
}

// Delist withdraws an asset from sale. The price is retained but ignored
// while the asset is unlisted.
func (s *registryService) Delist(caller models.Principal, id uint64) (*models.Asset, error) {
	var delisted *models.Asset
	err := s.store.Atomic(func(t *state.Tables) error {
		asset, ok := t.Assets[id]
		if !ok {
			return apperrors.ErrAssetNotFound
		}
		if asset.Owner != caller {
			return apperrors.ErrNotOwner
		}

		asset.Listed = false
		delisted = asset.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delisted, nil
}

// SetActive toggles the asset's freeze switch. Either the creator or the
// current owner may flip it. Deactivating does not auto-delist: a dormant
// listing becomes purchasable again, at its previously set price, as soon
// as the asset is reactivated.
func (s *registryService) SetActive(caller models.Principal, id uint64, active bool) (*models.Asset, error) {
	var updated *models.Asset
	err := s.store.Atomic(func(t *state.Tables) error {
		asset, ok := t.Assets[id]
		if !ok {
			return apperrors.ErrAssetNotFound
		}
		if asset.Creator != caller && asset.Owner != caller {
			return apperrors.ErrNotAuthorized
		}

		asset.Active = active
		updated = asset.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Purchase executes the purchase protocol as one indivisible step. All
// preconditions, including the buyer's balance, are validated before any
// mutation; a failure at any point leaves balances and ownership exactly
// as they were.
func (s *registryService) Purchase(caller models.Principal, id uint64) (*models.PurchaseReceipt, error) {
	var receipt *models.PurchaseReceipt
	err := s.store.Atomic(func(t *state.Tables) error {
		asset, ok := t.Assets[id]
		if !ok {
			return apperrors.ErrAssetNotFound
		}
		if !asset.Active {
			return apperrors.ErrInactiveAsset
		}
		if !asset.Listed {
			return apperrors.ErrNotListed
		}
		if asset.Owner == caller {
			return apperrors.ErrSelfPurchase
		}

		total := asset.Price
		royalty := total * royaltyPercent / 100
		seller := asset.Owner

		if err := s.ledger.SettlePurchase(t, caller, seller, asset.Creator, total, royalty); err != nil {
			return err
		}

		// Ledger settle succeeded; ownership follows the money.
		asset.Owner = caller
		asset.Listed = false
		asset.Price = 0

		if seller == asset.Creator {
			royalty = 0
		}
		receipt = &models.PurchaseReceipt{
			ID:          uuid.New(),
			AssetID:     asset.ID,
			Buyer:       caller,
			Seller:      seller,
			Creator:     asset.Creator,
			TotalPaid:   total,
			RoyaltyPaid: royalty,
			Timestamp:   time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Transfer gifts an asset to another principal with no payment. The
// listing is cleared so the new owner has to relist at their own price.
func (s *registryService) Transfer(caller models.Principal, id uint64, to models.Principal) (*models.Asset, error) {
	if to == caller {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "new owner must differ from the current owner")
	}

	var transferred *models.Asset
	err := s.store.Atomic(func(t *state.Tables) error {
		asset, ok := t.Assets[id]
		if !ok {
			return apperrors.ErrAssetNotFound
		}
		if asset.Owner != caller {
			return apperrors.ErrNotOwner
		}
		if !asset.Active {
			return apperrors.ErrInactiveAsset
		}

		asset.Owner = to
		asset.Listed = false
		asset.Price = 0
		transferred = asset.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transferred, nil
}

// GetAsset retrieves a single asset by id.
func (s *registryService) GetAsset(id uint64) (*models.Asset, error) {
	var found *models.Asset
	err := s.store.View(func(t *state.Tables) error {
		asset, ok := t.Assets[id]
		if !ok {
			return apperrors.ErrAssetNotFound
		}
		found = asset.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// GetAssets enumerates assets matching the filter, ordered by id.
func (s *registryService) GetAssets(filter AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	var matched []models.Asset
	_ = s.store.View(func(t *state.Tables) error {
		for _, asset := range t.Assets {
			if filter.Owner != nil && asset.Owner != *filter.Owner {
				continue
			}
			if filter.Creator != nil && asset.Creator != *filter.Creator {
				continue
			}
			if filter.Active != nil && asset.Active != *filter.Active {
				continue
			}
			if filter.Listed != nil && asset.Listed != *filter.Listed {
				continue
			}
			matched = append(matched, *asset.Clone())
		}
		return nil
	})

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	totalItems := int64(len(matched))
	result := pagination.NewPageResponse(pagination.Slice(matched, page), page.Page, page.PageSize, totalItems)
	return &result, nil
}
