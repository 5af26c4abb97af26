package model

import "time"

// Tenant is one market (OFM) instance. Field names follow the documents
// written by the legacy service.
type Tenant struct {
	Name         string    `firestore:"OFM_name" json:"OFM_name"`
	NameLower    string    `firestore:"OFM_name_lower" json:"OFM_name_lower"`
	SearchPrefix []string  `firestore:"search_prefix" json:"search_prefix"`
	CreatedAt    time.Time `firestore:"created_at" json:"created_at"`
}

// Admin is one admin credential record. Several admins may reference the
// same tenant. Note: the stored hash field is spelled "addminpass" in the
// legacy data.
type Admin struct {
	TenantName   string    `firestore:"nameofm" json:"nameofm"`
	AdminName    string    `firestore:"adminname" json:"adminname"`
	Address      string    `firestore:"address" json:"address"`
	Phone        string    `firestore:"phone" json:"phone"`
	PasswordHash string    `firestore:"addminpass" json:"-"`
	CreatedAt    time.Time `firestore:"created_at" json:"created_at"`
}

type RegisterAdminInput struct {
	TenantName string `json:"nameofm" validate:"required"`
	AdminName  string `json:"adminname" validate:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Password   string `json:"adminpassword" validate:"required"`
}

type AdminPasswordInput struct {
	TenantName string `json:"nameofm" validate:"required"`
	Password   string `json:"adminpassword" validate:"required"`
}

type SearchTenantInput struct {
	Term string `json:"term" validate:"required"`
}
