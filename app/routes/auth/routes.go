package auth

import (
	"database/sql"
	"log"
	"strings"

	appauth "github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/branding"
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"

	"github.com/gofiber/fiber/v2"
)

var (
	tokens   *appauth.TokenCodec
	resolver *branding.Resolver
)

func SetupAuthRoutes(app *fiber.App) {
	codec, err := appauth.NewTokenCodec(config.GetJWTSecret())
	if err != nil {
		// No tokens can be issued or verified without a secret; refuse
		// to serve rather than fall back to an insecure default.
		log.Fatal("JWT_SECRET is required: ", err)
	}
	tokens = codec
	resolver = &branding.Resolver{
		Store:   database.SchoolStore{DB: config.GetDB()},
		AppName: config.GetAppName(),
	}

	app.Get("/auth/login", ShowLoginPage)

	api := app.Group("/api")

	// Public login routes
	api.Post("/login", UnifiedLoginAPI)
	api.Post("/auth/login", LoginAPI)
	api.Post("/auth/logout", LogoutAPI)
	api.Post("/student/auth/login", StudentLoginAPI)
	api.Post("/teacher/auth/login", TeacherLoginAPI)
	api.Post("/ppdb/auth/login", PPDBLoginAPI)

	// Session-backed routes
	api.Get("/auth/me", AuthMiddleware, MeAPI)
	api.Get("/profile", AuthMiddleware, GetProfileAPI)
	api.Put("/profile", AuthMiddleware, UpdateProfileAPI)
	api.Put("/profile/password", AuthMiddleware, ChangePasswordAPI)
	api.Get("/student/auth/me", StudentMeAPI)
	api.Get("/teacher/auth/me", TeacherMeAPI)
	api.Get("/ppdb/auth/me", PPDBMeAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	b := resolver.Resolve(c.Hostname())

	hover := ""
	if b.PrimaryColor != nil {
		if h, ok := branding.HoverColor(*b.PrimaryColor); ok {
			hover = h
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title":    "Login - " + b.AppName,
		"Branding": b,
		"Hover":    hover,
	})
}

// tokenFromRequest reads a bearer token from the named cookie or the
// Authorization header.
func tokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if token := c.Cookies(cookieName); token != "" {
		return token
	}
	if header := c.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleware validates the admin session token and loads the live user.
// The token only proves identity; role and deleted status always come from
// the database, so a deleted user loses access before the token expires.
func AuthMiddleware(c *fiber.Ctx) error {
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	token := tokenFromRequest(c, "auth_token")
	if token == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := tokens.Verify(token, appauth.VariantAdmin)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err == sql.ErrNoRows {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	c.Locals("user", user)
	c.Locals("user_id", user.UserID)
	return c.Next()
}

// RequireRole restricts a route to the given role ids.
func RequireRole(allowedRoles ...int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		if user != nil && user.UserRoleRoleID != nil {
			for _, role := range allowedRoles {
				if *user.UserRoleRoleID == role {
					return c.Next()
				}
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
