package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ofm_manager/config"
	"ofm_manager/constants"
	"ofm_manager/service"
	"ofm_manager/utils"
)

// Handler carries every dependency the routes need; built once in main,
// no package-level state.
type Handler struct {
	Cfg      config.App
	Tenants  *service.TenantService
	Members  *service.MemberService
	Carts    *service.CartService
	Products *service.ProductService
	Browse   *service.BrowseService
}

func New(cfg config.App, tenants *service.TenantService, members *service.MemberService,
	carts *service.CartService, products *service.ProductService, browse *service.BrowseService) *Handler {
	return &Handler{
		Cfg:      cfg,
		Tenants:  tenants,
		Members:  members,
		Carts:    carts,
		Products: products,
		Browse:   browse,
	}
}

// fail maps a service error onto the wire. Validation problems are 400,
// absent resources and empty-order confirms stay 200 with a data status,
// anything else is a 500 without leaking upstream detail.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": constants.MISSING_FIELDS,
			"fields":  vErr.Fields,
		})
	}
	var nfErr *service.NotFoundError
	if errors.As(err, &nfErr) {
		return utils.StatusResponse(c, fiber.StatusOK, string(service.StatusNotFound), fiber.Map{"resource": nfErr.Resource})
	}
	var cErr *service.ConflictError
	if errors.As(err, &cErr) {
		return utils.StatusResponse(c, fiber.StatusOK, string(service.StatusDuplicate), nil)
	}
	if errors.Is(err, service.ErrNoItems) {
		return utils.StatusResponse(c, fiber.StatusOK, string(service.StatusNoItems), fiber.Map{"message": constants.ORDER_HAS_NO_ITEMS})
	}
	logrus.WithField("path", c.Path()).Errorf("request failed: %v", err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

// status writes a bare outcome status, the shape most legacy endpoints use.
func status(c *fiber.Ctx, s service.Status) error {
	return utils.StatusResponse(c, fiber.StatusOK, string(s), nil)
}
