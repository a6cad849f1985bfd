// Package tenant resolves the organization email that scopes every row.
package tenant

import (
	"net/mail"
	"strings"

	"shopconsole.io/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// Fiber locals keys set by the auth middleware.
const (
	LocalsKey      = "orgMail"
	AdminLocalsKey = "adminID"
)

// Normalize trims and lower-cases an organization email and checks its shape.
func Normalize(orgMail string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(orgMail))
	if key == "" {
		return "", apperrors.Unauthorized("organization is not resolved")
	}
	addr, err := mail.ParseAddress(key)
	if err != nil || addr.Address != key {
		return "", apperrors.Validation("invalid organization email %q", orgMail)
	}
	return key, nil
}

// FromFiber returns the tenant resolved for the current request.
func FromFiber(c *fiber.Ctx) (string, error) {
	orgMail, ok := c.Locals(LocalsKey).(string)
	if !ok || orgMail == "" {
		return "", apperrors.Unauthorized("organization is not resolved")
	}
	return orgMail, nil
}

// AdminIDFromFiber returns the id of the admin who made the request.
func AdminIDFromFiber(c *fiber.Ctx) (uint, error) {
	adminID, ok := c.Locals(AdminLocalsKey).(uint)
	if !ok || adminID == 0 {
		return 0, apperrors.Unauthorized("not authenticated")
	}
	return adminID, nil
}
