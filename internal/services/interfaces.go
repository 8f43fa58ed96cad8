package services

import (
	"skillmart/internal/models"
	"skillmart/internal/pagination"
	"skillmart/internal/state"
)

// AssetFilter holds optional filter parameters for enumerating assets.
type AssetFilter struct {
	Owner   *models.Principal
	Creator *models.Principal
	Active  *bool
	Listed  *bool
}

// RegistryServicer defines the contract for the asset registry: minting,
// listing, ownership, and the purchase protocol.
type RegistryServicer interface {
	Mint(creator models.Principal, metadata models.Metadata) (*models.Asset, error)
	List(caller models.Principal, id uint64, price int64) (*models.Asset, error)
	Delist(caller models.Principal, id uint64) (*models.Asset, error)
	SetActive(caller models.Principal, id uint64, active bool) (*models.Asset, error)
	Purchase(caller models.Principal, id uint64) (*models.PurchaseReceipt, error)
	Transfer(caller models.Principal, id uint64, to models.Principal) (*models.Asset, error)
	GetAsset(id uint64) (*models.Asset, error)
	GetAssets(filter AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
}

// LedgerServicer defines the contract for the balance ledger. Purchase and
// royalty settlement never create or destroy value; only Deposit and
// Withdraw change the total supply.
type LedgerServicer interface {
	Deposit(principal models.Principal, amount int64) (int64, error)
	Withdraw(caller models.Principal, amount int64) (int64, error)
	BalanceOf(principal models.Principal) int64
	RoyaltyEarnedOf(principal models.Principal) int64
	Transfer(from, to models.Principal, amount int64) error

	// SettlePurchase moves purchase funds inside an already-held
	// transaction scope, splitting the total between seller proceeds and
	// creator royalty. It validates the buyer's balance before mutating
	// anything, so a failure leaves the tables untouched.
	SettlePurchase(t *state.Tables, buyer, seller, creator models.Principal, total, royalty int64) error
}

// SnapshotServicer defines the contract for saving and restoring the
// combined registry/ledger state across a restart boundary.
type SnapshotServicer interface {
	Save() (*models.SnapshotMeta, error)
	Restore() error
}
