package payments

import (
	"github.com/sinholic/epesantren/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPaymentsAPI)
	api.Post("/", CreatePaymentAPI)
	api.Get("/months", GetMonthsAPI)

	api.Get("/bulan", GetBulanListAPI)
	api.Post("/bulan", CreateBulanAPI)
	api.Get("/bulan/:id", GetBulanAPI)
	api.Put("/bulan/:id", UpdateBulanAPI)
	api.Delete("/bulan/:id", DeleteBulanAPI)

	api.Get("/bebas", GetBebasListAPI)
	api.Post("/bebas", CreateBebasAPI)
	api.Get("/bebas/:id", GetBebasAPI)
	api.Put("/bebas/:id", UpdateBebasAPI)
	api.Delete("/bebas/:id", DeleteBebasAPI)

	api.Get("/:id", GetPaymentAPI)
}
