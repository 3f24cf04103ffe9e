package classes

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{"classes": classes})
}

func GetClassAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}

	class, err := database.GetClassByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}
	return c.JSON(fiber.Map{"class": class})
}

func CreateClassAPI(c *fiber.Ctx) error {
	var req struct {
		ClassName string `json:"class_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ClassName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}

	class := &models.Class{ClassName: req.ClassName}
	if err := database.CreateClass(config.GetDB(), class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}
	return c.Status(201).JSON(fiber.Map{"class": class})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}

	var req struct {
		ClassName string `json:"class_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ClassName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}

	class, err := database.GetClassByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	class.ClassName = req.ClassName
	if err := database.UpdateClass(config.GetDB(), class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}
	return c.JSON(fiber.Map{"class": class})
}

// DeleteClassAPI refuses when active students still reference the class.
func DeleteClassAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}

	count, err := database.CountStudentsInClass(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}
	if count > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Class still has active students"})
	}

	if err := database.DeleteClass(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}
	return c.JSON(fiber.Map{"success": true})
}
