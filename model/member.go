package model

import "time"

// Member is a partner, customer or delivery worker record, keyed by name
// inside its per-role subcollection under the tenant.
type Member struct {
	Name         string    `firestore:"name" json:"name"`
	Address      string    `firestore:"address" json:"address"`
	Phone        string    `firestore:"phone" json:"phone"`
	PasswordHash string    `firestore:"password" json:"-"`
	CreatedAt    time.Time `firestore:"created_at" json:"created_at"`

	// Delivery workers only.
	Status string `firestore:"status,omitempty" json:"status,omitempty"`
	// Customers only: id of the current draft order, "" when none.
	ActiveOrderID string `firestore:"activeOrderId,omitempty" json:"activeOrderId,omitempty"`
}

type RegisterMemberInput struct {
	TenantName string `json:"nameofm" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Password   string `json:"password" validate:"required"`
}

type DeliveryStatusInput struct {
	TenantName string `json:"nameofm" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

type MemberPasswordInput struct {
	TenantName string `json:"nameofm" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Password   string `json:"password" validate:"required"`
}
