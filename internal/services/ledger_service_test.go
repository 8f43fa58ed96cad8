package services_test

import (
	"sync"
	"testing"

	"skillmart/internal/state"
	"skillmart/internal/testutil"
)

func TestDeposit(t *testing.T) {
	t.Run("credits_balance", func(t *testing.T) {
		_, ledger, _ := newTestServices()
		principal := testutil.NewPrincipal(t)

		balance, err := ledger.Deposit(principal, 100)
		testutil.AssertNoError(t, err)
		if balance != 100 {
			t.Errorf("expected balance 100, got %d", balance)
		}

		balance, err = ledger.Deposit(principal, 50)
		testutil.AssertNoError(t, err)
		if balance != 150 {
			t.Errorf("expected balance 150, got %d", balance)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		_, ledger, _ := newTestServices()

		_, err := ledger.Deposit(testutil.NewPrincipal(t), 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		_, ledger, _ := newTestServices()

		_, err := ledger.Deposit(testutil.NewPrincipal(t), -10)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("debits_balance", func(t *testing.T) {
		_, ledger, _ := newTestServices()
		principal := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, principal, 100)

		balance, err := ledger.Withdraw(principal, 40)
		testutil.AssertNoError(t, err)
		if balance != 60 {
			t.Errorf("expected balance 60, got %d", balance)
		}
	})

	t.Run("exact_balance", func(t *testing.T) {
		_, ledger, _ := newTestServices()
		principal := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, principal, 100)

		balance, err := ledger.Withdraw(principal, 100)
		testutil.AssertNoError(t, err)
		if balance != 0 {
			t.Errorf("expected balance 0, got %d", balance)
		}
	})

	t.Run("overdraft", func(t *testing.T) {
		_, ledger, _ := newTestServices()
		principal := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, principal, 100)

		_, err := ledger.Withdraw(principal, 101)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		if got := ledger.BalanceOf(principal); got != 100 {
			t.Errorf("expected balance unchanged at 100, got %d", got)
		}
	})

	t.Run("unknown_principal", func(t *testing.T) {
		_, ledger, _ := newTestServices()

		_, err := ledger.Withdraw(testutil.NewPrincipal(t), 1)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")
	})

	t.Run("zero_amount", func(t *testing.T) {
		_, ledger, _ := newTestServices()
		principal := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, principal, 100)

		_, err := ledger.Withdraw(principal, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestBalanceOf(t *testing.T) {
	t.Run("unknown_principal_is_zero", func(t *testing.T) {
		store, ledger, _ := newTestServices()

		if got := ledger.BalanceOf(testutil.NewPrincipal(t)); got != 0 {
			t.Errorf("expected balance 0, got %d", got)
		}

		// A balance query must not materialize an account.
		_ = store.View(func(tables *state.Tables) error {
			if len(tables.Accounts) != 0 {
				t.Errorf("expected no accounts, got %d", len(tables.Accounts))
			}
			return nil
		})
	})
}

func TestLedgerTransfer(t *testing.T) {
	t.Run("moves_funds", func(t *testing.T) {
		_, ledger, _ := newTestServices()
		from := testutil.NewPrincipal(t)
		to := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, from, 100)

		err := ledger.Transfer(from, to, 30)
		testutil.AssertNoError(t, err)

		if got := ledger.BalanceOf(from); got != 70 {
			t.Errorf("expected sender balance 70, got %d", got)
		}
		if got := ledger.BalanceOf(to); got != 30 {
			t.Errorf("expected recipient balance 30, got %d", got)
		}
	})

	t.Run("insufficient_funds", func(t *testing.T) {
		_, ledger, _ := newTestServices()
		from := testutil.NewPrincipal(t)
		to := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, from, 20)

		err := ledger.Transfer(from, to, 30)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		if got := ledger.BalanceOf(from); got != 20 {
			t.Errorf("expected sender balance unchanged at 20, got %d", got)
		}
		if got := ledger.BalanceOf(to); got != 0 {
			t.Errorf("expected recipient balance unchanged at 0, got %d", got)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		_, ledger, _ := newTestServices()

		err := ledger.Transfer(testutil.NewPrincipal(t), testutil.NewPrincipal(t), 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestSettlePurchase(t *testing.T) {
	t.Run("splits_royalty", func(t *testing.T) {
		store, ledger, _ := newTestServices()
		buyer := testutil.NewPrincipal(t)
		seller := testutil.NewPrincipal(t)
		creator := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, buyer, 200)

		err := store.Atomic(func(tables *state.Tables) error {
			return ledger.SettlePurchase(tables, buyer, seller, creator, 200, 20)
		})
		testutil.AssertNoError(t, err)

		if got := ledger.BalanceOf(buyer); got != 0 {
			t.Errorf("expected buyer balance 0, got %d", got)
		}
		if got := ledger.BalanceOf(seller); got != 180 {
			t.Errorf("expected seller balance 180, got %d", got)
		}
		if got := ledger.BalanceOf(creator); got != 20 {
			t.Errorf("expected creator balance 20, got %d", got)
		}
		if got := ledger.RoyaltyEarnedOf(creator); got != 20 {
			t.Errorf("expected royalty earned 20, got %d", got)
		}
	})

	t.Run("royalty_tally_accumulates", func(t *testing.T) {
		store, ledger, _ := newTestServices()
		seller := testutil.NewPrincipal(t)
		creator := testutil.NewPrincipal(t)

		for _, sale := range []struct{ total, royalty int64 }{{100, 10}, {300, 30}} {
			buyer := testutil.NewPrincipal(t)
			testutil.Fund(t, ledger, buyer, sale.total)
			err := store.Atomic(func(tables *state.Tables) error {
				return ledger.SettlePurchase(tables, buyer, seller, creator, sale.total, sale.royalty)
			})
			testutil.AssertNoError(t, err)
		}

		if got := ledger.RoyaltyEarnedOf(creator); got != 40 {
			t.Errorf("expected cumulative royalty 40, got %d", got)
		}
	})

	t.Run("seller_is_creator", func(t *testing.T) {
		store, ledger, _ := newTestServices()
		buyer := testutil.NewPrincipal(t)
		creator := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, buyer, 100)

		err := store.Atomic(func(tables *state.Tables) error {
			return ledger.SettlePurchase(tables, buyer, creator, creator, 100, 10)
		})
		testutil.AssertNoError(t, err)

		if got := ledger.BalanceOf(creator); got != 100 {
			t.Errorf("expected creator balance 100, got %d", got)
		}
		if got := ledger.RoyaltyEarnedOf(creator); got != 0 {
			t.Errorf("expected no royalty recorded, got %d", got)
		}
	})

	t.Run("insufficient_funds_mutates_nothing", func(t *testing.T) {
		store, ledger, _ := newTestServices()
		buyer := testutil.NewPrincipal(t)
		seller := testutil.NewPrincipal(t)
		creator := testutil.NewPrincipal(t)
		testutil.Fund(t, ledger, buyer, 50)

		err := store.Atomic(func(tables *state.Tables) error {
			return ledger.SettlePurchase(tables, buyer, seller, creator, 100, 10)
		})
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		if got := ledger.BalanceOf(buyer); got != 50 {
			t.Errorf("expected buyer balance unchanged at 50, got %d", got)
		}
		if got := ledger.BalanceOf(seller); got != 0 {
			t.Errorf("expected seller balance unchanged at 0, got %d", got)
		}
	})
}

func TestConcurrentDeposits(t *testing.T) {
	_, ledger, _ := newTestServices()
	principal := testutil.NewPrincipal(t)

	const workers = 8
	const depositsPerWorker = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < depositsPerWorker; j++ {
				if _, err := ledger.Deposit(principal, 1); err != nil {
					t.Errorf("deposit failed: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	if got := ledger.BalanceOf(principal); got != workers*depositsPerWorker {
		t.Errorf("expected balance %d, got %d", workers*depositsPerWorker, got)
	}
}
