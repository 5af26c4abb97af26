package utils

import "github.com/gofiber/fiber/v2"

// SuccessResponse wraps data in the common success envelope.
func SuccessResponse(c *fiber.Ctx, status int, data fiber.Map) error {
	body := fiber.Map{"status": "success"}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// StatusResponse reports a non-success outcome as data. Most legacy
// endpoints answer 200 for not_found/duplicate/wrong_password so the
// payload, not the HTTP status, carries the result.
func StatusResponse(c *fiber.Ctx, httpStatus int, status string, extra fiber.Map) error {
	body := fiber.Map{"status": status}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(httpStatus).JSON(body)
}

// ErrorResponse reports a failed request.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   errMsg,
	})
}
