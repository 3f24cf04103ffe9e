package dashboard

import (
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetDashboardStatsAPI)
	api.Get("/stats", GetDashboardStatsAPI)
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}
