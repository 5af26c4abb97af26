package service

import (
	"fmt"

	"ofm_manager/constants"
)

func tenantPath(tenant string) string {
	return fmt.Sprintf("%s/%s", constants.COLLECTION_TENANTS, tenant)
}

func memberCollection(tenant, role string) string {
	var col string
	switch role {
	case constants.ROLE_PARTNER:
		col = constants.COLLECTION_PARTNERS
	case constants.ROLE_DELIVERY:
		col = constants.COLLECTION_DELIVERIES
	default:
		col = constants.COLLECTION_CUSTOMERS
	}
	return fmt.Sprintf("%s/%s", tenantPath(tenant), col)
}

func customerPath(tenant, customer string) string {
	return fmt.Sprintf("%s/%s/%s", tenantPath(tenant), constants.COLLECTION_CUSTOMERS, customer)
}

func orderPath(tenant, customer, orderID string) string {
	return fmt.Sprintf("%s/%s/%s", customerPath(tenant, customer), constants.COLLECTION_ORDERS, orderID)
}

func itemsCollection(tenant, customer, orderID string) string {
	return fmt.Sprintf("%s/%s", orderPath(tenant, customer, orderID), constants.COLLECTION_ITEMS)
}

func itemPath(tenant, customer, orderID, itemID string) string {
	return fmt.Sprintf("%s/%s", itemsCollection(tenant, customer, orderID), itemID)
}

func partnerPath(tenant, partner string) string {
	return fmt.Sprintf("%s/%s/%s", tenantPath(tenant), constants.COLLECTION_PARTNERS, partner)
}

func notificationsCollection(tenant, partner string) string {
	return fmt.Sprintf("%s/%s", partnerPath(tenant, partner), constants.COLLECTION_NOTIFICATIONS)
}

func productPath(tenant, partner, mode, product string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", partnerPath(tenant, partner), constants.COLLECTION_MODES, mode, constants.COLLECTION_PRODUCTS, product)
}

func productsCollection(tenant, partner, mode string) string {
	return fmt.Sprintf("%s/%s/%s/%s", partnerPath(tenant, partner), constants.COLLECTION_MODES, mode, constants.COLLECTION_PRODUCTS)
}
