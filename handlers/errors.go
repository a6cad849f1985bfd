// Package handlers holds the pieces shared by every HTTP handler package.
package handlers

import (
	"errors"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the fiber error handler. Every handler returns its errors
// and this writes them as {"error": message, "code": code}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message, "code": fiberCode(fiberErr.Code)})
	}

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		configslog.Log.Error("Unhandled request error",
			zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
			"code":  apperrors.CodeInternal,
		})
	}

	status := apperrors.StatusOf(appErr)
	message := appErr.Message
	if appErr.Code == apperrors.CodeInternal {
		configslog.Log.Error("Request failed",
			zap.String("method", c.Method()), zap.String("path", c.Path()),
			zap.String("message", appErr.Message), zap.Error(appErr.Err))
		message = "Internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message, "code": appErr.Code})
}

func fiberCode(status int) apperrors.Code {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity:
		return apperrors.CodeValidation
	case fiber.StatusUnauthorized:
		return apperrors.CodeUnauthorized
	case fiber.StatusForbidden:
		return apperrors.CodeForbidden
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return apperrors.CodeNotFound
	case fiber.StatusConflict:
		return apperrors.CodeConflict
	}
	return apperrors.CodeInternal
}

// ParamID reads a positive numeric route parameter.
func ParamID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("invalid %s", name)
	}
	return uint(id), nil
}
