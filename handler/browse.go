package handler

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/utils"
)

// GetShops lists the shop folders of a market, derived from the bucket
// listing.
func (h *Handler) GetShops(c *fiber.Ctx) error {
	shops, err := h.Browse.Shops(c.Context(), c.Query("ofm"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"shops": shops})
}

// GetModes lists the mode folders of a shop.
func (h *Handler) GetModes(c *fiber.Ctx) error {
	modes, err := h.Browse.Modes(c.Context(), c.Query("ofm"), c.Query("shop"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"modes": modes})
}

// GetImages returns one page of image URLs. Paging slices the full
// filtered listing in memory, as the legacy service did.
func (h *Handler) GetImages(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", strconv.Itoa(h.Cfg.DefaultPageSize)))
	if pageSize < 1 {
		pageSize = h.Cfg.DefaultPageSize
	}

	result, err := h.Browse.Images(c.Context(), model.BrowseQuery{
		TenantName: c.Query("ofm"),
		Shop:       c.Query("shop"),
		Mode:       c.Query("mode"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// UploadImage stores one product photo and returns its public URL.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_FIELDS, err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_UPLOAD, err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPLOAD, err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	url, err := h.Browse.UploadImage(c.Context(),
		c.FormValue("ofm"), c.FormValue("shop"), c.FormValue("mode"),
		fileHeader.Filename, data, contentType)
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"url": url})
}
