package handler

import (
	"github.com/gofiber/fiber/v2"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/service"
	"ofm_manager/utils"
	"ofm_manager/validate"
)

// RegisterAdminFull registers a market together with its admin credential
// and the market folder in the bucket.
func (h *Handler) RegisterAdminFull(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeyRegisterAdmin).(model.RegisterAdminInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	result, err := h.Tenants.Register(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	if result == service.StatusDuplicate {
		return utils.StatusResponse(c, fiber.StatusOK, string(result), fiber.Map{"message": constants.DUPLICATE_TENANT})
	}
	return status(c, result)
}

// OfmPassword checks an admin password. not_found and wrong_password are
// both HTTP 200 so the response code does not reveal which markets exist.
func (h *Handler) OfmPassword(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeyAdminPassword).(model.AdminPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	result, err := h.Tenants.CheckPassword(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return status(c, result)
}

// GetOfm returns a market's record.
func (h *Handler) GetOfm(c *fiber.Ctx) error {
	tenant, err := h.Tenants.Get(c.Context(), c.Query("ofm"))
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ofm": tenant})
}

// SearchOfm answers starts-with search over market names.
func (h *Handler) SearchOfm(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeySearchTenant).(model.SearchTenantInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	names, err := h.Tenants.Search(c.Context(), input.Term, 20)
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"results": names})
}
