package auth

import (
	"errors"
	"time"

	appauth "github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

func setSessionCookie(c *fiber.Ctx, name, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Expires:  time.Now().Add(appauth.TokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
}

// loginFailure maps verifier errors onto responses: invalid credentials is
// 401 with one fixed body, everything else is a server-side failure.
func loginFailure(c *fiber.Ctx, err error) error {
	if errors.Is(err, appauth.ErrInvalidCredentials) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Database error"})
}

func adminVerifier() *appauth.Verifier {
	return &appauth.Verifier{
		Store:   database.UserStore{DB: config.GetDB()},
		Variant: appauth.VariantAdmin,
	}
}

// LoginAPI authenticates an admin user by username.
func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	principal, err := adminVerifier().Authenticate(req.Username, req.Password)
	if err != nil {
		return loginFailure(c, err)
	}

	token, err := tokens.Issue(principal, appauth.VariantAdmin)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setSessionCookie(c, "auth_token", token)

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"userId":   principal.ID,
			"username": principal.LoginKey,
			"fullName": principal.DisplayName,
			"roleId":   principal.RoleID,
		},
		"token": token,
	})
}

// UnifiedLoginAPI tries the admin, student and teacher verifiers in order
// against one credential pair and reports which role matched.
func UnifiedLoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	attempts := []struct {
		verifier *appauth.Verifier
		cookie   string
		role     string
		redirect string
	}{
		{adminVerifier(), "auth_token", "admin", "/manage/dashboard"},
		{studentVerifier(), "student_token", "student", "/student/dashboard"},
		{teacherVerifier(), "teacher_token", "teacher", "/teacher/dashboard"},
	}

	for _, attempt := range attempts {
		principal, err := attempt.verifier.Authenticate(req.Username, req.Password)
		if errors.Is(err, appauth.ErrInvalidCredentials) {
			continue
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}

		token, err := tokens.Issue(principal, attempt.verifier.Variant)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}
		setSessionCookie(c, attempt.cookie, token)

		return c.JSON(fiber.Map{
			"success":  true,
			"role":     attempt.role,
			"redirect": attempt.redirect,
			"user": fiber.Map{
				"id":       principal.ID,
				"loginKey": principal.LoginKey,
				"fullName": principal.DisplayName,
			},
			"token": token,
		})
	}

	return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
}

func LogoutAPI(c *fiber.Ctx) error {
	clearSessionCookie(c, "auth_token")
	clearSessionCookie(c, "student_token")
	clearSessionCookie(c, "teacher_token")
	clearSessionCookie(c, "ppdb_token")
	return c.JSON(fiber.Map{"success": true})
}

// MeAPI returns the live admin profile for the session.
func MeAPI(c *fiber.Ctx) error {
	user := currentUser(c)

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.RoleName
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"userId":   user.UserID,
			"username": user.Username,
			"email":    user.UserEmail,
			"fullName": user.UserFullName,
			"image":    user.UserImage,
			"roleId":   user.UserRoleRoleID,
			"roleName": roleName,
		},
	})
}

func GetProfileAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"user": currentUser(c)})
}

func UpdateProfileAPI(c *fiber.Ctx) error {
	type ProfileRequest struct {
		UserFullName    *string `json:"user_full_name"`
		UserDescription *string `json:"user_description"`
		UserEmail       *string `json:"user_email"`
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user := currentUser(c)
	if req.UserFullName != nil {
		user.UserFullName = req.UserFullName
	}
	if req.UserDescription != nil {
		user.UserDescription = req.UserDescription
	}
	if req.UserEmail != nil {
		username := ""
		if user.Username != nil {
			username = *user.Username
		}
		exists, err := database.UserExists(config.GetDB(), *req.UserEmail, username, user.UserID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if exists {
			return c.Status(400).JSON(fiber.Map{"error": "Email already exists"})
		}
		user.UserEmail = req.UserEmail
	}

	if err := database.UpdateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(fiber.Map{"user": user})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "New password must be at least 8 characters"})
	}

	user := currentUser(c)
	if !appauth.VerifyPassword(req.CurrentPassword, user.UserPassword) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashedPassword, err := appauth.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := database.UpdateUserPassword(config.GetDB(), user.UserID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}
