package handler

import (
	"github.com/gofiber/fiber/v2"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/service"
	"ofm_manager/utils"
	"ofm_manager/validate"
)

// RegisterMember is the shared implementation behind the partner, customer
// and delivery registration routes.
func (h *Handler) RegisterMember(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals(validate.KeyRegisterMember).(model.RegisterMemberInput)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
		}

		result, err := h.Members.Register(c.Context(), role, input)
		if err != nil {
			return h.fail(c, err)
		}
		switch result {
		case service.StatusNotFound:
			return utils.StatusResponse(c, fiber.StatusOK, string(result), fiber.Map{"message": constants.TENANT_NOT_FOUND})
		case service.StatusDuplicate:
			return utils.StatusResponse(c, fiber.StatusOK, string(result), fiber.Map{"message": constants.DUPLICATE_MEMBER})
		}
		return status(c, result)
	}
}

// GetDeliveryStatus reads one delivery worker's availability.
func (h *Handler) GetDeliveryStatus(c *fiber.Ctx) error {
	member, err := h.Members.Get(c.Context(), constants.ROLE_DELIVERY, c.Query("ofm"), c.Query("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"delivery": member})
}

// SetDeliveryStatus updates one delivery worker's availability.
func (h *Handler) SetDeliveryStatus(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeyDeliveryStatus).(model.DeliveryStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	if err := h.Members.SetDeliveryStatus(c.Context(), input.TenantName, input.Name, input.Status); err != nil {
		return h.fail(c, err)
	}
	return status(c, service.StatusSuccess)
}

// MemberPassword is the shared password check for the three member roles.
func (h *Handler) MemberPassword(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals(validate.KeyMemberPassword).(model.MemberPasswordInput)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
		}

		result, err := h.Members.CheckPassword(c.Context(), role, input)
		if err != nil {
			return h.fail(c, err)
		}
		return status(c, result)
	}
}
