package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gracechapel/church-backend/internal/config"
	"github.com/gracechapel/church-backend/internal/handlers"
	"github.com/gracechapel/church-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	prayerHandler *handlers.PrayerHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP. Defense in depth only;
	// the per-identity limits inside the services are authoritative.
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Member auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	// Prayer wall — public
	api.Get("/prayers", prayerHandler.Wall)
	api.Post("/prayers", middleware.OptionalMember(cfg), prayerHandler.Submit)
	api.Post("/prayers/report", prayerHandler.Report)

	// Member dashboard
	api.Get("/members/me/prayers", middleware.JWTProtected(cfg), prayerHandler.MyPrayers)
}
