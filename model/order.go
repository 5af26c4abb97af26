package model

import "time"

// Order is a customer's cart. The id is a millisecond timestamp string;
// "Preorder" is the legacy field name for the item count.
type Order struct {
	ID          string    `firestore:"-" json:"order_id"`
	Status      string    `firestore:"status" json:"status"`
	ItemCount   int64     `firestore:"Preorder" json:"item_count"`
	CreatedAt   time.Time `firestore:"created_at" json:"created_at"`
	ConfirmedAt time.Time `firestore:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
}

type OrderItem struct {
	ID          string  `firestore:"-" json:"item_id"`
	ProductName string  `firestore:"product_name" json:"product_name"`
	Description string  `firestore:"description" json:"description"`
	Price       float64 `firestore:"price" json:"price"`
	ImageURL    string  `firestore:"image_url" json:"image_url"`
	Partner     string  `firestore:"partner" json:"partner"`
	Quantity    int64   `firestore:"quantity" json:"quantity"`
	Status      string  `firestore:"status" json:"status"`
}

// CartRef identifies a cart in every item-level request.
type CartRef struct {
	TenantName string `json:"nameofm" validate:"required"`
	Customer   string `json:"customer" validate:"required"`
	OrderID    string `json:"order_id" validate:"required"`
}

type GetCartInput struct {
	TenantName string `json:"nameofm" validate:"required"`
	Customer   string `json:"customer" validate:"required"`
}

type AddItemInput struct {
	CartRef
	ProductName string  `json:"product_name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Partner     string  `json:"shop" validate:"required"`
}

type ItemRefInput struct {
	CartRef
	ItemID string `json:"item_id" validate:"required"`
}

type ConfirmOrderInput struct {
	CartRef
}
