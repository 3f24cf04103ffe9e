package pos

import (
	"github.com/sinholic/epesantren/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPosRoutes(app *fiber.App) {
	api := app.Group("/api/pos")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPosListAPI)
	api.Post("/", CreatePosAPI)
	api.Get("/:id", GetPosAPI)
	api.Put("/:id", UpdatePosAPI)
	api.Delete("/:id", DeletePosAPI)
}
