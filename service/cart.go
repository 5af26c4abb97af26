package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/store"
)

// CartService is the preorder cart / order state machine. States per
// order: draft -> orderconfirmed (terminal); the customer record caches
// the current draft's id as activeOrderId so there is at most one draft
// per customer.
type CartService struct {
	Store store.Store

	// now is swappable so tests can control the generated order ids.
	now func() time.Time
}

func NewCartService(st store.Store) *CartService {
	return &CartService{Store: st, now: time.Now}
}

// GetOrCreateActiveOrder returns the customer's draft order, creating the
// customer record when absent and a fresh draft when the customer has no
// activeOrderId or the cached id no longer resolves. Two sequential calls
// return the same order. Concurrent first calls can race and both create a
// draft; the last pointer write wins (accepted in the original design, not
// mitigated here).
func (s *CartService) GetOrCreateActiveOrder(ctx context.Context, tenant, customer string) (*model.Order, error) {
	if fields := missing(map[string]string{"nameofm": tenant, "customer": customer}); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	custPath := customerPath(tenant, customer)
	cust, err := s.Store.Get(ctx, custPath)
	if errors.Is(err, store.ErrNotFound) {
		cust = store.Doc{"name": customer, "created_at": s.now()}
		if err := s.Store.Set(ctx, custPath, cust, false); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if active := store.Str(cust, "activeOrderId"); active != "" {
		doc, err := s.Store.Get(ctx, orderPath(tenant, customer, active))
		if err == nil {
			return docToOrder(active, doc), nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		// Dangling pointer, fall through and start a fresh draft.
	}

	id := strconv.FormatInt(s.now().UnixMilli(), 10)
	doc := store.Doc{
		"status":     constants.ORDER_STATUS_DRAFT,
		"Preorder":   int64(0),
		"created_at": s.now(),
	}
	if err := s.Store.Set(ctx, orderPath(tenant, customer, id), doc, false); err != nil {
		return nil, err
	}
	if err := s.Store.Update(ctx, custPath, store.Doc{"activeOrderId": id}); err != nil {
		return nil, err
	}
	return docToOrder(id, doc), nil
}

// AddItem creates an item with quantity 1 under the order and increments
// the order's item count. Returns the generated item id.
func (s *CartService) AddItem(ctx context.Context, input model.AddItemInput) (string, error) {
	if fields := missing(map[string]string{
		"nameofm":      input.TenantName,
		"customer":     input.Customer,
		"order_id":     input.OrderID,
		"product_name": input.ProductName,
	}); len(fields) > 0 {
		return "", &ValidationError{Fields: fields}
	}

	oPath := orderPath(input.TenantName, input.Customer, input.OrderID)
	if _, err := s.Store.Get(ctx, oPath); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", &NotFoundError{Resource: "order"}
		}
		return "", err
	}

	itemID, err := s.Store.Add(ctx, itemsCollection(input.TenantName, input.Customer, input.OrderID), store.Doc{
		"product_name": input.ProductName,
		"description":  input.Description,
		"price":        input.Price,
		"image_url":    input.ImageURL,
		"partner":      input.Partner,
		"quantity":     int64(1),
		"status":       constants.ITEM_STATUS_DRAFT,
	})
	if err != nil {
		return "", err
	}

	err = s.Store.Transact(ctx, oPath, func(d store.Doc) (store.Doc, error) {
		return store.Doc{"Preorder": store.Int(d, "Preorder") + 1}, nil
	})
	return itemID, err
}

// IncreaseQuantity adds one to the item's quantity.
func (s *CartService) IncreaseQuantity(ctx context.Context, input model.ItemRefInput) (int64, error) {
	return s.changeQuantity(ctx, input, +1)
}

// DecreaseQuantity subtracts one, never going below 1.
func (s *CartService) DecreaseQuantity(ctx context.Context, input model.ItemRefInput) (int64, error) {
	return s.changeQuantity(ctx, input, -1)
}

// changeQuantity clamps inside a transaction: a plain read-then-write
// would lose updates under concurrent increment/decrement of one item.
func (s *CartService) changeQuantity(ctx context.Context, input model.ItemRefInput, delta int64) (int64, error) {
	var quantity int64
	err := s.Store.Transact(ctx, itemPath(input.TenantName, input.Customer, input.OrderID, input.ItemID), func(d store.Doc) (store.Doc, error) {
		quantity = store.Int(d, "quantity") + delta
		if quantity < 1 {
			quantity = 1
		}
		return store.Doc{"quantity": quantity}, nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return 0, &NotFoundError{Resource: "item"}
	}
	return quantity, err
}

// DeleteItem removes the item and decrements the order's item count,
// floored at zero.
func (s *CartService) DeleteItem(ctx context.Context, input model.ItemRefInput) error {
	iPath := itemPath(input.TenantName, input.Customer, input.OrderID, input.ItemID)
	if _, err := s.Store.Get(ctx, iPath); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &NotFoundError{Resource: "item"}
		}
		return err
	}
	if err := s.Store.Delete(ctx, iPath); err != nil {
		return err
	}
	return s.Store.Transact(ctx, orderPath(input.TenantName, input.Customer, input.OrderID), func(d store.Doc) (store.Doc, error) {
		count := store.Int(d, "Preorder") - 1
		if count < 0 {
			count = 0
		}
		return store.Doc{"Preorder": count}, nil
	})
}

// ListItems returns the order's items.
func (s *CartService) ListItems(ctx context.Context, ref model.CartRef) ([]model.OrderItem, error) {
	snaps, err := s.Store.List(ctx, itemsCollection(ref.TenantName, ref.Customer, ref.OrderID))
	if err != nil {
		return nil, err
	}
	items := make([]model.OrderItem, 0, len(snaps))
	for _, snap := range snaps {
		items = append(items, docToItem(snap.ID, snap.Data))
	}
	return items, nil
}

// ConfirmOrder transitions a draft into a confirmed order: stamps the
// order, clears the customer's active pointer and creates one unread
// notification per partner holding at least one item. The no-items guard
// runs before any mutation, so confirming an empty order leaves the order
// and the customer untouched.
func (s *CartService) ConfirmOrder(ctx context.Context, ref model.CartRef) (Status, error) {
	oPath := orderPath(ref.TenantName, ref.Customer, ref.OrderID)
	if _, err := s.Store.Get(ctx, oPath); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return StatusNotFound, nil
		}
		return StatusError, err
	}

	snaps, err := s.Store.List(ctx, itemsCollection(ref.TenantName, ref.Customer, ref.OrderID))
	if err != nil {
		return StatusError, err
	}
	if len(snaps) == 0 {
		return StatusNoItems, ErrNoItems
	}

	byPartner := make(map[string][]string)
	for _, snap := range snaps {
		partner := store.Str(snap.Data, "partner")
		byPartner[partner] = append(byPartner[partner], snap.ID)
	}

	now := s.now()
	if err := s.Store.Update(ctx, oPath, store.Doc{
		"status":       constants.ORDER_STATUS_CONFIRMED,
		"Preorder":     int64(0),
		"confirmed_at": now,
	}); err != nil {
		return StatusError, err
	}
	if err := s.Store.Update(ctx, customerPath(ref.TenantName, ref.Customer), store.Doc{"activeOrderId": ""}); err != nil {
		return StatusError, err
	}

	for partner, itemIDs := range byPartner {
		if partner == "" {
			continue
		}
		if _, err := s.Store.Add(ctx, notificationsCollection(ref.TenantName, partner), store.Doc{
			"order_id":   ref.OrderID,
			"customer":   ref.Customer,
			"item_ids":   itemIDs,
			"read":       false,
			"created_at": now,
		}); err != nil {
			return StatusError, err
		}
	}
	return StatusSuccess, nil
}

// HasUnreadNotification returns the partner's first unread notification,
// or nil when there is none.
func (s *CartService) HasUnreadNotification(ctx context.Context, tenant, partner string) (*model.Notification, error) {
	snaps, err := s.Store.Query(ctx, notificationsCollection(tenant, partner), "read", "==", false, 1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return docToNotification(snaps[0].ID, snaps[0].Data), nil
}

func missing(fields map[string]string) []string {
	var out []string
	for name, value := range fields {
		if value == "" {
			out = append(out, name)
		}
	}
	return out
}

func docToOrder(id string, d store.Doc) *model.Order {
	order := &model.Order{
		ID:        id,
		Status:    store.Str(d, "status"),
		ItemCount: store.Int(d, "Preorder"),
	}
	if t, ok := d["created_at"].(time.Time); ok {
		order.CreatedAt = t
	}
	if t, ok := d["confirmed_at"].(time.Time); ok {
		order.ConfirmedAt = t
	}
	return order
}

func docToItem(id string, d store.Doc) model.OrderItem {
	price, _ := d["price"].(float64)
	return model.OrderItem{
		ID:          id,
		ProductName: store.Str(d, "product_name"),
		Description: store.Str(d, "description"),
		Price:       price,
		ImageURL:    store.Str(d, "image_url"),
		Partner:     store.Str(d, "partner"),
		Quantity:    store.Int(d, "quantity"),
		Status:      store.Str(d, "status"),
	}
}

func docToNotification(id string, d store.Doc) *model.Notification {
	n := &model.Notification{
		ID:       id,
		OrderID:  store.Str(d, "order_id"),
		Customer: store.Str(d, "customer"),
	}
	n.Read, _ = d["read"].(bool)
	if t, ok := d["created_at"].(time.Time); ok {
		n.CreatedAt = t
	}
	switch ids := d["item_ids"].(type) {
	case []string:
		n.ItemIDs = ids
	case []interface{}:
		for _, v := range ids {
			if s, ok := v.(string); ok {
				n.ItemIDs = append(n.ItemIDs, s)
			}
		}
	}
	return n
}
