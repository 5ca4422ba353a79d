// Package response builds the uniform JSON envelope every endpoint
// responds with, success or failure.
package response

import "github.com/gofiber/fiber/v2"

// Envelope is the single response shape of the API. Data holds any JSON
// value, or null when there is nothing to return.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// DefaultSuccessMessage is used when a success response gives no message.
const DefaultSuccessMessage = "Success"

// Success writes a success envelope with HTTP status 200.
func Success(c *fiber.Ctx, message string, data any) error {
	return SuccessWithStatus(c, message, data, fiber.StatusOK)
}

// SuccessWithStatus writes a success envelope with a caller-chosen status.
func SuccessWithStatus(c *fiber.Ctx, message string, data any, status int) error {
	if message == "" {
		message = DefaultSuccessMessage
	}

	return c.Status(status).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope with the given status.
func Error(c *fiber.Ctx, message string, data any, status int) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: message,
		Data:    data,
	})
}
