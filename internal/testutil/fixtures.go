package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"skillmart/internal/models"
	"skillmart/internal/services"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewPrincipal returns a unique principal for a test.
func NewPrincipal(t *testing.T) models.Principal {
	t.Helper()
	return models.Principal(fmt.Sprintf("principal-%d", nextID()))
}

// TestMetadata returns a well-formed metadata payload with unique values.
func TestMetadata(t *testing.T) models.Metadata {
	t.Helper()
	n := nextID()
	return models.Metadata{
		Name:        fmt.Sprintf("Test Skill %d", n),
		Description: fmt.Sprintf("Description for test skill %d", n),
		ContentURI:  fmt.Sprintf("ipfs://test/%d", n),
		Attributes:  map[string]string{"level": "beginner"},
	}
}

// MintTestAsset mints an asset for the given creator.
func MintTestAsset(t *testing.T, registry services.RegistryServicer, creator models.Principal) *models.Asset {
	t.Helper()

	asset, err := registry.Mint(creator, TestMetadata(t))
	if err != nil {
		t.Fatalf("failed to mint test asset: %v", err)
	}
	return asset
}

// MintListedAsset mints an asset and lists it at the given price.
func MintListedAsset(t *testing.T, registry services.RegistryServicer, creator models.Principal, price int64) *models.Asset {
	t.Helper()

	asset := MintTestAsset(t, registry, creator)
	listed, err := registry.List(creator, asset.ID, price)
	if err != nil {
		t.Fatalf("failed to list test asset: %v", err)
	}
	return listed
}

// Fund deposits the given amount into a principal's account.
func Fund(t *testing.T, ledger services.LedgerServicer, principal models.Principal, amount int64) {
	t.Helper()

	if _, err := ledger.Deposit(principal, amount); err != nil {
		t.Fatalf("failed to fund principal %s: %v", principal, err)
	}
}
