package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/store"
)

func newCartFixture(t *testing.T) (*CartService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	svc := NewCartService(mem)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, mem
}

func addItem(t *testing.T, svc *CartService, orderID, product, partner string) string {
	t.Helper()
	id, err := svc.AddItem(context.Background(), model.AddItemInput{
		CartRef:     model.CartRef{TenantName: "market1", Customer: "bob", OrderID: orderID},
		ProductName: product,
		Partner:     partner,
		Price:       25,
	})
	require.NoError(t, err)
	return id
}

func TestGetOrCreateActiveOrderIsIdempotent(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	first, err := svc.GetOrCreateActiveOrder(ctx, "market1", "bob")
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_DRAFT, first.Status)
	assert.EqualValues(t, 0, first.ItemCount)

	second, err := svc.GetOrCreateActiveOrder(ctx, "market1", "bob")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, constants.ORDER_STATUS_DRAFT, second.Status)
}

func TestGetOrCreateActiveOrderRecreatesDanglingPointer(t *testing.T) {
	svc, mem := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, customerPath("market1", "bob"), store.Doc{
		"name":          "bob",
		"activeOrderId": "1700000000000", // order document never written
	}, false))

	order, err := svc.GetOrCreateActiveOrder(ctx, "market1", "bob")
	require.NoError(t, err)
	assert.NotEqual(t, "1700000000000", order.ID)
	assert.Equal(t, constants.ORDER_STATUS_DRAFT, order.Status)

	cust, err := mem.Get(ctx, customerPath("market1", "bob"))
	require.NoError(t, err)
	assert.Equal(t, order.ID, store.Str(cust, "activeOrderId"))
}

func TestGetOrCreateActiveOrderValidatesInput(t *testing.T) {
	svc, _ := newCartFixture(t)

	_, err := svc.GetOrCreateActiveOrder(context.Background(), "", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"nameofm", "customer"}, vErr.Fields)
}

func TestAddItemMissingFieldsListedTogether(t *testing.T) {
	svc, _ := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), model.AddItemInput{
		CartRef: model.CartRef{TenantName: "market1"},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"customer", "order_id", "product_name"}, vErr.Fields)
}

func TestAddItemUnknownOrder(t *testing.T) {
	svc, _ := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), model.AddItemInput{
		CartRef:     model.CartRef{TenantName: "market1", Customer: "bob", OrderID: "12345"},
		ProductName: "mango",
	})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "order", nfErr.Resource)
}

func TestDecreaseQuantityFloorsAtOne(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	order, err := svc.GetOrCreateActiveOrder(ctx, "market1", "bob")
	require.NoError(t, err)
	itemID := addItem(t, svc, order.ID, "mango", "shopA")

	ref := model.ItemRefInput{
		CartRef: model.CartRef{TenantName: "market1", Customer: "bob", OrderID: order.ID},
		ItemID:  itemID,
	}
	qty, err := svc.DecreaseQuantity(ctx, ref)
	require.NoError(t, err)
	assert.EqualValues(t, 1, qty)

	qty, err = svc.IncreaseQuantity(ctx, ref)
	require.NoError(t, err)
	assert.EqualValues(t, 2, qty)

	qty, err = svc.DecreaseQuantity(ctx, ref)
	require.NoError(t, err)
	assert.EqualValues(t, 1, qty)
}

func TestQuantityChangeOnUnknownItem(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	order, err := svc.GetOrCreateActiveOrder(ctx, "market1", "bob")
	require.NoError(t, err)

	_, err = svc.IncreaseQuantity(ctx, model.ItemRefInput{
		CartRef: model.CartRef{TenantName: "market1", Customer: "bob", OrderID: order.ID},
		ItemID:  "no-such-item",
	})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestDeleteItemMaintainsItemCount(t *testing.T) {
	svc, mem := newCartFixture(t)
	ctx := context.Background()

	order, err := svc.GetOrCreateActiveOrder(ctx, "market1", "bob")
	require.NoError(t, err)

	first := addItem(t, svc, order.ID, "mango", "shopA")
	addItem(t, svc, order.ID, "papaya", "shopA")
	addItem(t, svc, order.ID, "rice", "shopB")

	require.NoError(t, svc.DeleteItem(ctx, model.ItemRefInput{
		CartRef: model.CartRef{TenantName: "market1", Customer: "bob", OrderID: order.ID},
		ItemID:  first,
	}))

	doc, err := mem.Get(ctx, orderPath("market1", "bob", order.ID))
	require.NoError(t, err)
	assert.EqualValues(t, 2, store.Int(doc, "Preorder"))

	items, err := svc.ListItems(ctx, model.CartRef{TenantName: "market1", Customer: "bob", OrderID: order.ID})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestConfirmOrderFansOutPerPartner(t *testing.T) {
	svc, mem := newCartFixture(t)
	ctx := context.Background()

	order, err := svc.GetOrCreateActiveOrder(ctx, "market1", "bob")
	require.NoError(t, err)

	itemA1 := addItem(t, svc, order.ID, "mango", "shopA")
	itemA2 := addItem(t, svc, order.ID, "papaya", "shopA")
	itemB := addItem(t, svc, order.ID, "rice", "shopB")

	result, err := svc.ConfirmOrder(ctx, model.CartRef{TenantName: "market1", Customer: "bob", OrderID: order.ID})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result)

	doc, err := mem.Get(ctx, orderPath("market1", "bob", order.ID))
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_CONFIRMED, store.Str(doc, "status"))
	assert.EqualValues(t, 0, store.Int(doc, "Preorder"))

	cust, err := mem.Get(ctx, customerPath("market1", "bob"))
	require.NoError(t, err)
	assert.Equal(t, "", store.Str(cust, "activeOrderId"))

	notifA, err := mem.List(ctx, notificationsCollection("market1", "shopA"))
	require.NoError(t, err)
	require.Len(t, notifA, 1)
	assert.Equal(t, false, notifA[0].Data["read"])
	assert.ElementsMatch(t, []string{itemA1, itemA2}, notifA[0].Data["item_ids"])

	notifB, err := mem.List(ctx, notificationsCollection("market1", "shopB"))
	require.NoError(t, err)
	require.Len(t, notifB, 1)
	assert.ElementsMatch(t, []string{itemB}, notifB[0].Data["item_ids"])

	unread, err := svc.HasUnreadNotification(ctx, "market1", "shopA")
	require.NoError(t, err)
	require.NotNil(t, unread)
	assert.Equal(t, order.ID, unread.OrderID)
	assert.False(t, unread.Read)
}

// Confirming an empty order must not touch the order or the customer's
// active pointer; the legacy service mutated first and failed after.
func TestConfirmOrderEmptyLeavesStateUntouched(t *testing.T) {
	svc, mem := newCartFixture(t)
	ctx := context.Background()

	order, err := svc.GetOrCreateActiveOrder(ctx, "market1", "bob")
	require.NoError(t, err)

	result, err := svc.ConfirmOrder(ctx, model.CartRef{TenantName: "market1", Customer: "bob", OrderID: order.ID})
	assert.Equal(t, StatusNoItems, result)
	assert.ErrorIs(t, err, ErrNoItems)

	doc, err := mem.Get(ctx, orderPath("market1", "bob", order.ID))
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_DRAFT, store.Str(doc, "status"))

	cust, err := mem.Get(ctx, customerPath("market1", "bob"))
	require.NoError(t, err)
	assert.Equal(t, order.ID, store.Str(cust, "activeOrderId"))
}

func TestConfirmUnknownOrder(t *testing.T) {
	svc, _ := newCartFixture(t)

	result, err := svc.ConfirmOrder(context.Background(), model.CartRef{
		TenantName: "market1", Customer: "bob", OrderID: "12345",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, result)
}

func TestHasUnreadNotificationNone(t *testing.T) {
	svc, _ := newCartFixture(t)

	unread, err := svc.HasUnreadNotification(context.Background(), "market1", "shopA")
	require.NoError(t, err)
	assert.Nil(t, unread)
}
