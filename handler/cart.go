package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/service"
	"ofm_manager/utils"
	"ofm_manager/validate"
)

// GetCart returns the customer's active draft order (creating one when
// needed) together with its items.
func (h *Handler) GetCart(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeyGetCart).(model.GetCartInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	order, err := h.Carts.GetOrCreateActiveOrder(c.Context(), input.TenantName, input.Customer)
	if err != nil {
		return h.fail(c, err)
	}
	items, err := h.Carts.ListItems(c.Context(), model.CartRef{
		TenantName: input.TenantName,
		Customer:   input.Customer,
		OrderID:    order.ID,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order": order,
		"items": items,
	})
}

// AddItem adds a product to the cart with quantity 1.
func (h *Handler) AddItem(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeyAddItem).(model.AddItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	itemID, err := h.Carts.AddItem(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"item_id": itemID})
}

// IncreaseQty bumps an item's quantity by one.
func (h *Handler) IncreaseQty(c *fiber.Ctx) error {
	return h.changeQty(c, h.Carts.IncreaseQuantity)
}

// DecreaseQty lowers an item's quantity by one, floored at 1.
func (h *Handler) DecreaseQty(c *fiber.Ctx) error {
	return h.changeQty(c, h.Carts.DecreaseQuantity)
}

func (h *Handler) changeQty(c *fiber.Ctx, op func(context.Context, model.ItemRefInput) (int64, error)) error {
	input, ok := c.Locals(validate.KeyItemRef).(model.ItemRefInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	quantity, err := op(c.Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"quantity": quantity})
}

// DeleteItem removes an item from the cart.
func (h *Handler) DeleteItem(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeyItemRef).(model.ItemRefInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	if err := h.Carts.DeleteItem(c.Context(), input); err != nil {
		return h.fail(c, err)
	}
	return status(c, service.StatusSuccess)
}

// ConfirmOrder checks out the cart and fans out per-partner notifications.
func (h *Handler) ConfirmOrder(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.KeyConfirmOrder).(model.ConfirmOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	result, err := h.Carts.ConfirmOrder(c.Context(), input.CartRef)
	if err != nil {
		return h.fail(c, err)
	}
	return status(c, result)
}

// UnreadNotification tells a partner whether fresh order items await them.
func (h *Handler) UnreadNotification(c *fiber.Ctx) error {
	tenant := c.Query("ofm")
	partner := c.Query("shop")

	notification, err := h.Carts.HasUnreadNotification(c.Context(), tenant, partner)
	if err != nil {
		return h.fail(c, err)
	}
	if notification == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"unread": false})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"unread":       true,
		"notification": notification,
	})
}
