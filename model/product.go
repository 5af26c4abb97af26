package model

import "time"

// Product lives at (tenant, partner, mode, product-name).
type Product struct {
	ProductName string    `firestore:"product_name" json:"product_name"`
	Description string    `firestore:"description" json:"description"`
	Price       float64   `firestore:"price" json:"price"`
	ImageURL    string    `firestore:"image_url" json:"image_url"`
	Partner     string    `firestore:"partner" json:"partner"`
	CreatedAt   time.Time `firestore:"created_at" json:"created_at"`
}

type SaveProductInput struct {
	TenantName  string  `json:"nameofm" validate:"required"`
	Partner     string  `json:"shop" validate:"required"`
	Mode        string  `json:"mode" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}
