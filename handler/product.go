package handler

import (
	"github.com/gofiber/fiber/v2"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/service"
	"ofm_manager/utils"
	"ofm_manager/validate"
)

// SaveProduct upserts one product of a (market, shop, mode).
func (h *Handler) SaveProduct(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeySaveProduct).(model.SaveProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	result, err := h.Products.Save(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	if result == service.StatusNotFound {
		return utils.StatusResponse(c, fiber.StatusOK, string(result), fiber.Map{"message": constants.TENANT_NOT_FOUND})
	}
	return status(c, result)
}

// GetProducts lists the products of a (market, shop, mode).
func (h *Handler) GetProducts(c *fiber.Ctx) error {
	products, err := h.Products.List(c.Context(), c.Query("ofm"), c.Query("shop"), c.Query("mode"))
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"products": products})
}
