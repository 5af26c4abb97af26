package service

import (
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"

	"ofm_manager/model"
	"ofm_manager/store"
)

// ProductService stores the partner product catalog under
// (tenant, partner, mode, product-name).
type ProductService struct {
	Store store.Store
}

func NewProductService(st store.Store) *ProductService {
	return &ProductService{Store: st}
}

// Save upserts a product document. The owning partner is denormalized onto
// it so cart items can carry it later.
func (s *ProductService) Save(ctx context.Context, input model.SaveProductInput) (Status, error) {
	if _, err := s.Store.Get(ctx, tenantPath(input.TenantName)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return StatusNotFound, nil
		}
		return StatusError, err
	}

	var product model.Product
	copier.Copy(&product, &input)
	product.CreatedAt = time.Now()

	err := s.Store.Set(ctx, productPath(input.TenantName, input.Partner, input.Mode, input.ProductName), store.Doc{
		"product_name": product.ProductName,
		"description":  product.Description,
		"price":        product.Price,
		"image_url":    product.ImageURL,
		"partner":      product.Partner,
		"created_at":   product.CreatedAt,
	}, true)
	if err != nil {
		return StatusError, err
	}
	return StatusSuccess, nil
}

// List returns every product of a (tenant, partner, mode).
func (s *ProductService) List(ctx context.Context, tenant, partner, mode string) ([]model.Product, error) {
	snaps, err := s.Store.List(ctx, productsCollection(tenant, partner, mode))
	if err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(snaps))
	for _, snap := range snaps {
		price, _ := snap.Data["price"].(float64)
		p := model.Product{
			ProductName: store.Str(snap.Data, "product_name"),
			Description: store.Str(snap.Data, "description"),
			Price:       price,
			ImageURL:    store.Str(snap.Data, "image_url"),
			Partner:     store.Str(snap.Data, "partner"),
		}
		if t, ok := snap.Data["created_at"].(time.Time); ok {
			p.CreatedAt = t
		}
		products = append(products, p)
	}
	return products, nil
}
