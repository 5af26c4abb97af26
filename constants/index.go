package constants

// Order lifecycle
const (
	ORDER_STATUS_DRAFT     = "draft"
	ORDER_STATUS_CONFIRMED = "orderconfirmed"
	ITEM_STATUS_DRAFT      = "draft"
)

// Firestore collections. Names match the data already written by the
// legacy service, do not rename.
const (
	COLLECTION_TENANTS       = "OFM_name"
	COLLECTION_ADMINS        = "registeradminOFM"
	COLLECTION_PARTNERS      = "partners"
	COLLECTION_CUSTOMERS     = "customers"
	COLLECTION_DELIVERIES    = "deliveries"
	COLLECTION_MODES         = "modes"
	COLLECTION_PRODUCTS      = "products"
	COLLECTION_ORDERS        = "orders"
	COLLECTION_ITEMS         = "items"
	COLLECTION_NOTIFICATIONS = "notifications"
)

// Member roles
const (
	ROLE_PARTNER  = "partner"
	ROLE_CUSTOMER = "customer"
	ROLE_DELIVERY = "delivery"
)

const DELIVERY_STATUS_AVAILABLE = "available"

// Response messages
const (
	ERROR_INTERNAL_ERROR  = "Internal server error"
	ERROR_PARSE_BODY      = "Cannot parse request body"
	ERROR_PARSE_LOCALS    = "Cannot read validated input"
	MISSING_FIELDS        = "Missing required fields"
	DUPLICATE_TENANT      = "Market name already exists"
	DUPLICATE_MEMBER      = "Name already exists"
	TENANT_NOT_FOUND      = "Market not found"
	ORDER_HAS_NO_ITEMS    = "Order has no items"
	CAN_NOT_HASH_PASSWORD = "Cannot hash password"
	ERROR_UPLOAD          = "Upload failed"
	ERROR_LIST_BUCKET     = "Cannot list storage"
)
