package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"ofm_manager/utils"
)

// ShopQR renders a QR code PNG linking to a shop's storefront page.
func (h *Handler) ShopQR(c *fiber.Ctx) error {
	link := fmt.Sprintf("%s/%s/%s", h.Cfg.ShopBaseURL, c.Query("ofm"), c.Query("shop"))
	png, err := utils.GenerateQRCode(link, 256)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
