package services

import (
	apperrors "skillmart/internal/errors"
	"skillmart/internal/models"
	"skillmart/internal/state"
)

// ledgerService handles balance-related business logic.
type ledgerService struct {
	store *state.Store
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(store *state.Store) LedgerServicer {
	return &ledgerService{store: store}
}

// Deposit credits a principal's balance unconditionally. This is the
// external funding path; bridging to any outside currency happens upstream.
func (s *ledgerService) Deposit(principal models.Principal, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	var balance int64
	err := s.store.Atomic(func(t *state.Tables) error {
		acct := t.Account(principal)
		acct.Balance += amount
		balance = acct.Balance
		return nil
	})
	return balance, err
}

// Withdraw debits the caller's balance, rejecting overdrafts.
func (s *ledgerService) Withdraw(caller models.Principal, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	var balance int64
	err := s.store.Atomic(func(t *state.Tables) error {
		if t.Balance(caller) < amount {
			return apperrors.ErrInsufficientFunds
		}
		acct := t.Account(caller)
		acct.Balance -= amount
		balance = acct.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// BalanceOf returns a principal's balance, defaulting to 0 for principals
// that have never held funds.
func (s *ledgerService) BalanceOf(principal models.Principal) int64 {
	var balance int64
	_ = s.store.View(func(t *state.Tables) error {
		balance = t.Balance(principal)
		return nil
	})
	return balance
}

// RoyaltyEarnedOf returns the cumulative royalties a principal has received
// as a creator.
func (s *ledgerService) RoyaltyEarnedOf(principal models.Principal) int64 {
	var earned int64
	_ = s.store.View(func(t *state.Tables) error {
		if acct, ok := t.Accounts[principal]; ok {
			earned = acct.RoyaltyEarned
		}
		return nil
	})
	return earned
}

// Transfer moves funds between two principals. The debit is validated
// before any mutation, so a failed transfer leaves both balances untouched.
func (s *ledgerService) Transfer(from, to models.Principal, amount int64) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	return s.store.Atomic(func(t *state.Tables) error {
		if t.Balance(from) < amount {
			return apperrors.ErrInsufficientFunds
		}
		t.Account(from).Balance -= amount
		t.Account(to).Balance += amount
		return nil
	})
}

// SettlePurchase settles a purchase inside the registry's transaction
// scope: the buyer is debited the full price, the seller is credited the
// proceeds, and the creator is credited the royalty. When the seller is
// still the creator the two credits collapse into one credit of the total
// and no royalty is recorded.
func (s *ledgerService) SettlePurchase(t *state.Tables, buyer, seller, creator models.Principal, total, royalty int64) error {
	if t.Balance(buyer) < total {
		return apperrors.ErrInsufficientFunds
	}

	t.Account(buyer).Balance -= total

	if seller == creator {
		t.Account(seller).Balance += total
		return nil
	}

	t.Account(seller).Balance += total - royalty
	creatorAcct := t.Account(creator)
	creatorAcct.Balance += royalty
	creatorAcct.RoyaltyEarned += royalty
	return nil
}
