package models

import "time"

// PurchaseReceipt describes a completed purchase. Receipts are returned to
// the buyer but not retained by the marketplace.
type PurchaseReceipt struct {
	ID          string    `json:"id"`
	AssetID     uint64    `json:"asset_id"`
	Buyer       Principal `json:"buyer"`
	Seller      Principal `json:"seller"`
	Creator     Principal `json:"creator"`
	TotalPaid   int64     `json:"total_paid"`
	RoyaltyPaid int64     `json:"royalty_paid"`
	Timestamp   time.Time `json:"timestamp"`
}
