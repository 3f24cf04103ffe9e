package settings

import (
	"github.com/sinholic/epesantren/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSettingsAPI)
	api.Post("/", UpsertSettingAPI)
	api.Get("/:name", GetSettingAPI)
	api.Put("/:id", UpdateSettingAPI)
	api.Delete("/:id", DeleteSettingAPI)
}
