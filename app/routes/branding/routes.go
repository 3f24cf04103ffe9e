package branding

import (
	appbranding "github.com/sinholic/epesantren/app/branding"
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"

	"github.com/gofiber/fiber/v2"
)

var resolver *appbranding.Resolver

// SetupBrandingRoutes registers the public branding endpoint. It requires no
// authentication and always answers 200: tenant lookup failures fall back to
// the default branding.
func SetupBrandingRoutes(app *fiber.App) {
	resolver = &appbranding.Resolver{
		Store:   database.SchoolStore{DB: config.GetDB()},
		AppName: config.GetAppName(),
	}

	app.Get("/api/public/branding", GetBrandingAPI)
}

func GetBrandingAPI(c *fiber.Ctx) error {
	b := resolver.Resolve(c.Hostname())

	c.Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	return c.JSON(b)
}
