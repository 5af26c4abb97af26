// Package validate holds the per-route input middleware: parse the body,
// run the validator, stash the typed input in Locals for the handler.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ofm_manager/constants"
	"ofm_manager/utils"
)

var validate = validator.New()

// Body parses and validates a JSON body of type T and stores it under key.
// A validation failure lists every failing field, not just the first.
func Body[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_BODY, err)
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": constants.MISSING_FIELDS,
				"fields":  failedFields(err),
			})
		}
		c.Locals(key, input)
		return c.Next()
	}
}

// RequireQuery checks that every named query param is present and
// non-empty.
func RequireQuery(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var missing []string
		for _, name := range names {
			if c.Query(name) == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": constants.MISSING_FIELDS,
				"fields":  missing,
			})
		}
		return c.Next()
	}
}

func failedFields(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields
}
