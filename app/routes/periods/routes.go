package periods

import (
	"github.com/sinholic/epesantren/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPeriodsRoutes(app *fiber.App) {
	api := app.Group("/api/periods")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPeriodsAPI)
	api.Post("/", CreatePeriodAPI)
	api.Get("/:id", GetPeriodAPI)
	api.Put("/:id", UpdatePeriodAPI)
	api.Delete("/:id", DeletePeriodAPI)
}
