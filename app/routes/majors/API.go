package majors

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetMajorsAPI(c *fiber.Ctx) error {
	majors, err := database.GetAllMajors(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch majors"})
	}
	return c.JSON(fiber.Map{"majors": majors})
}

func GetMajorAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid major ID"})
	}

	major, err := database.GetMajorByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Major not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch major"})
	}
	return c.JSON(fiber.Map{"major": major})
}

func CreateMajorAPI(c *fiber.Ctx) error {
	var req struct {
		MajorsName string `json:"majors_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.MajorsName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Major name is required"})
	}

	major := &models.Major{MajorsName: req.MajorsName}
	if err := database.CreateMajor(config.GetDB(), major); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create major"})
	}
	return c.Status(201).JSON(fiber.Map{"major": major})
}

func UpdateMajorAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid major ID"})
	}

	var req struct {
		MajorsName string `json:"majors_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.MajorsName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Major name is required"})
	}

	major, err := database.GetMajorByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Major not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch major"})
	}

	major.MajorsName = req.MajorsName
	if err := database.UpdateMajor(config.GetDB(), major); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update major"})
	}
	return c.JSON(fiber.Map{"major": major})
}

func DeleteMajorAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid major ID"})
	}

	if err := database.DeleteMajor(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete major"})
	}
	return c.JSON(fiber.Map{"success": true})
}
