package users

import (
	"database/sql"
	"regexp"

	appauth "github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

func validUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30 && usernamePattern.MatchString(username)
}

func GetUsersAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	search := c.Query("search")

	users, total, err := database.ListUsers(config.GetDB(), search, limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + limit - 1) / limit,
		},
	})
}

func GetUserAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	user, err := database.GetUserByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}
	return c.JSON(fiber.Map{"user": user})
}

func CreateUserAPI(c *fiber.Ctx) error {
	var req struct {
		Username        string  `json:"username"`
		UserEmail       string  `json:"user_email"`
		Password        string  `json:"password"`
		UserFullName    *string `json:"user_full_name"`
		UserDescription *string `json:"user_description"`
		UserRoleRoleID  *int    `json:"user_role_role_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	username := database.NormalizeUsername(req.Username)
	if !validUsername(username) {
		return c.Status(400).JSON(fiber.Map{"error": "Username must be 3-30 characters: lowercase letters, digits, underscore or dash"})
	}
	if req.UserEmail == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email is required"})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}

	exists, err := database.UserExists(config.GetDB(), req.UserEmail, username, 0)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "Email or username already in use"})
	}

	hashedPassword, err := appauth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Username:        &username,
		UserEmail:       &req.UserEmail,
		UserPassword:    hashedPassword,
		UserFullName:    req.UserFullName,
		UserDescription: req.UserDescription,
		UserRoleRoleID:  req.UserRoleRoleID,
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}
	return c.Status(201).JSON(fiber.Map{"user": user})
}

func UpdateUserAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req struct {
		UserEmail       *string `json:"user_email"`
		UserFullName    *string `json:"user_full_name"`
		UserDescription *string `json:"user_description"`
		UserRoleRoleID  *int    `json:"user_role_role_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	if req.UserEmail != nil && (user.UserEmail == nil || *req.UserEmail != *user.UserEmail) {
		username := ""
		if user.Username != nil {
			username = *user.Username
		}
		exists, err := database.UserExists(config.GetDB(), *req.UserEmail, username, id)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
		}
		if exists {
			return c.Status(409).JSON(fiber.Map{"error": "Email already in use"})
		}
		user.UserEmail = req.UserEmail
	}
	if req.UserFullName != nil {
		user.UserFullName = req.UserFullName
	}
	if req.UserDescription != nil {
		user.UserDescription = req.UserDescription
	}
	if req.UserRoleRoleID != nil {
		user.UserRoleRoleID = req.UserRoleRoleID
	}

	if err := database.UpdateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}
	return c.JSON(fiber.Map{"user": user})
}

// DeleteUserAPI soft-deletes. Deleting yourself is refused.
func DeleteUserAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	if current, ok := c.Locals("user_id").(int); ok && current == id {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot delete your own account"})
	}

	if err := database.SoftDeleteUser(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	return c.JSON(fiber.Map{"success": true})
}
