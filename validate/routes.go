package validate

import (
	"github.com/gofiber/fiber/v2"

	"ofm_manager/model"
)

// Locals keys, shared with the handlers.
const (
	KeyRegisterAdmin  = "RegisterAdminInput"
	KeyAdminPassword  = "AdminPasswordInput"
	KeySearchTenant   = "SearchTenantInput"
	KeyRegisterMember = "RegisterMemberInput"
	KeyMemberPassword = "MemberPasswordInput"
	KeyDeliveryStatus = "DeliveryStatusInput"
	KeySaveProduct    = "SaveProductInput"
	KeyGetCart        = "GetCartInput"
	KeyAddItem        = "AddItemInput"
	KeyItemRef        = "ItemRefInput"
	KeyConfirmOrder   = "ConfirmOrderInput"
)

func RegisterAdminFull() fiber.Handler {
	return Body[model.RegisterAdminInput](KeyRegisterAdmin)
}

func OfmPassword() fiber.Handler {
	return Body[model.AdminPasswordInput](KeyAdminPassword)
}

func SearchOfm() fiber.Handler {
	return Body[model.SearchTenantInput](KeySearchTenant)
}

func RegisterMember() fiber.Handler {
	return Body[model.RegisterMemberInput](KeyRegisterMember)
}

func MemberPassword() fiber.Handler {
	return Body[model.MemberPasswordInput](KeyMemberPassword)
}

func DeliveryStatus() fiber.Handler {
	return Body[model.DeliveryStatusInput](KeyDeliveryStatus)
}

func SaveProduct() fiber.Handler {
	return Body[model.SaveProductInput](KeySaveProduct)
}

func GetCart() fiber.Handler {
	return Body[model.GetCartInput](KeyGetCart)
}

func AddItem() fiber.Handler {
	return Body[model.AddItemInput](KeyAddItem)
}

func ItemRef() fiber.Handler {
	return Body[model.ItemRefInput](KeyItemRef)
}

func ConfirmOrder() fiber.Handler {
	return Body[model.ConfirmOrderInput](KeyConfirmOrder)
}
