package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ReceiveText accepts a posted form field "text" and logs it. It has no effect on
// any game. An empty value is accepted; only a missing field is rejected.
func ReceiveText(c *fiber.Ctx) error {
	if !hasFormField(c, "text") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}
	text := c.FormValue("text")
	log.Infow("received text", "text", text)
	return c.SendString("Text received successfully!")
}

func hasFormField(c *fiber.Ctx, key string) bool {
	if c.Request().PostArgs().Has(key) {
		return true
	}
	form, err := c.MultipartForm()
	if err != nil {
		return false
	}
	_, ok := form.Value[key]
	return ok
}
