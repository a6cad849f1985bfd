package middlewares

import (
	"strings"

	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/pkg/tokens"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware accepts "Authorization: Bearer <access token>" and stores
// the token's tenant and admin id in the request locals.
func AuthMiddleware(issuer *tokens.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return apperrors.Unauthorized("missing bearer token")
		}
		claims, err := issuer.Parse(strings.TrimSpace(token))
		if err != nil {
			return apperrors.Unauthorized("invalid or expired token")
		}
		orgMail, err := tenant.Normalize(claims.OrgMail)
		if err != nil {
			return apperrors.Unauthorized("invalid or expired token")
		}
		c.Locals(tenant.LocalsKey, orgMail)
		c.Locals(tenant.AdminLocalsKey, claims.AdminID)
		return c.Next()
	}
}
