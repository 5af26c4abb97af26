package model

import "time"

// Notification is the per-partner, per-confirmed-order alert created at
// checkout. It is derived from the order's items and never mutated except
// for the read flag.
type Notification struct {
	ID        string    `firestore:"-" json:"notification_id"`
	OrderID   string    `firestore:"order_id" json:"order_id"`
	Customer  string    `firestore:"customer" json:"customer"`
	ItemIDs   []string  `firestore:"item_ids" json:"item_ids"`
	Read      bool      `firestore:"read" json:"read"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
}
