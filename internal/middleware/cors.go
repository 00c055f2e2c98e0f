package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS returns the cross-origin filter applied to every route. A single
// trusted browser origin may call the API with credentials using the
// five CRUD-relevant methods plus preflight. The configuration is built
// once at startup; there are no per-route overrides.
func CORS(allowOrigin string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	})
}
