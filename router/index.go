package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"ofm_manager/constants"
	"ofm_manager/handler"
	"ofm_manager/middleware"
	"ofm_manager/validate"
)

// SetupRoutes wires the legacy route names onto the handlers. Route paths
// match the old service so existing clients keep working.
func SetupRoutes(app *fiber.App, h *handler.Handler) {
	app.Use(middleware.RequestID())
	app.Use(logger.New())

	// Tenant / admin
	app.Post("/register_admin_full", validate.RegisterAdminFull(), h.RegisterAdminFull)
	app.Post("/ofm_password", validate.OfmPassword(), h.OfmPassword)
	app.Post("/search_ofm", validate.SearchOfm(), h.SearchOfm)
	app.Get("/get_ofm", validate.RequireQuery("ofm"), h.GetOfm)

	// Members
	app.Post("/register_shop", validate.RegisterMember(), h.RegisterMember(constants.ROLE_PARTNER))
	app.Post("/register_customer", validate.RegisterMember(), h.RegisterMember(constants.ROLE_CUSTOMER))
	app.Post("/register_delivery", validate.RegisterMember(), h.RegisterMember(constants.ROLE_DELIVERY))
	app.Post("/shop_password", validate.MemberPassword(), h.MemberPassword(constants.ROLE_PARTNER))
	app.Post("/customer_password", validate.MemberPassword(), h.MemberPassword(constants.ROLE_CUSTOMER))
	app.Post("/delivery_password", validate.MemberPassword(), h.MemberPassword(constants.ROLE_DELIVERY))
	app.Get("/delivery_status", validate.RequireQuery("ofm", "name"), h.GetDeliveryStatus)
	app.Post("/set_delivery_status", validate.DeliveryStatus(), h.SetDeliveryStatus)

	// Storage-derived directory views
	app.Get("/get_shops", validate.RequireQuery("ofm"), h.GetShops)
	app.Get("/get_modes", validate.RequireQuery("ofm", "shop"), h.GetModes)
	app.Get("/get_images", validate.RequireQuery("ofm", "shop", "mode"), h.GetImages)
	app.Post("/upload_image", h.UploadImage)
	app.Get("/shop_qr", validate.RequireQuery("ofm", "shop"), h.ShopQR)

	// Products
	app.Post("/save_product", validate.SaveProduct(), h.SaveProduct)
	app.Get("/get_products", validate.RequireQuery("ofm", "shop", "mode"), h.GetProducts)

	// Preorder cart
	app.Post("/get_cart", validate.GetCart(), h.GetCart)
	app.Post("/add_item", validate.AddItem(), h.AddItem)
	app.Post("/increase_qty", validate.ItemRef(), h.IncreaseQty)
	app.Post("/decrease_qty", validate.ItemRef(), h.DecreaseQty)
	app.Post("/delete_item", validate.ItemRef(), h.DeleteItem)
	app.Post("/confirm_order", validate.ConfirmOrder(), h.ConfirmOrder)
	app.Get("/unread_notification", validate.RequireQuery("ofm", "shop"), h.UnreadNotification)
}
