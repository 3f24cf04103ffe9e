package classes

import (
	"github.com/sinholic/epesantren/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetClassesAPI)
	api.Post("/", CreateClassAPI)
	api.Get("/:id", GetClassAPI)
	api.Put("/:id", UpdateClassAPI)
	api.Delete("/:id", DeleteClassAPI)
}
