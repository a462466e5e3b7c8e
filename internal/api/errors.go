package api

import "github.com/gofiber/fiber/v2"

// notFound renders the directory's 404 body. Malformed identifiers get the
// same response as missing records.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not found."})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error."})
}
