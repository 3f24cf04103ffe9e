package users

import (
	"github.com/sinholic/epesantren/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetUsersAPI)
	api.Post("/", CreateUserAPI)
	api.Get("/:id", GetUserAPI)
	api.Put("/:id", UpdateUserAPI)
	api.Delete("/:id", DeleteUserAPI)
}
