package majors

import (
	"github.com/sinholic/epesantren/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMajorsRoutes(app *fiber.App) {
	api := app.Group("/api/majors")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetMajorsAPI)
	api.Post("/", CreateMajorAPI)
	api.Get("/:id", GetMajorAPI)
	api.Put("/:id", UpdateMajorAPI)
	api.Delete("/:id", DeleteMajorAPI)
}
