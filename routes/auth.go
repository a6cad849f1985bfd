package routes

import (
	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(api fiber.Router, requireAuth fiber.Handler, deps Dependencies) {
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", deps.Auth.Signup)
	authGroup.Post("/login", deps.Auth.Login)
	authGroup.Post("/refresh", deps.Auth.Refresh)
	authGroup.Post("/logout", deps.Auth.Logout)
	authGroup.Get("/me", requireAuth, deps.Auth.Me)
}
