package models

// Account holds a principal's balance in the internal currency unit.
// Accounts are created implicitly on the first balance-affecting operation
// and are never deleted. Balances never go negative.
//
// RoyaltyEarned is a running total of royalties the principal has received
// as a creator; it is informational and already included in Balance.
type Account struct {
	Principal     Principal `gorm:"primaryKey" json:"principal"`
	Balance       int64     `gorm:"not null;default:0" json:"balance"`
	RoyaltyEarned int64     `gorm:"not null;default:0" json:"royalty_earned"`
}

// Clone returns a copy of the account.
func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}
