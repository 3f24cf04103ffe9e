package pos

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetPosListAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	search := c.Query("search")

	posList, total, err := database.ListPos(config.GetDB(), search, limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment posts"})
	}

	return c.JSON(fiber.Map{
		"pos": posList,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + limit - 1) / limit,
		},
	})
}

func GetPosAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pos ID"})
	}

	pos, err := database.GetPosByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Payment post not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment post"})
	}
	return c.JSON(fiber.Map{"pos": pos})
}

func CreatePosAPI(c *fiber.Ctx) error {
	var req struct {
		PosName        string  `json:"pos_name"`
		PosDescription *string `json:"pos_description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.PosName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Pos name is required"})
	}

	pos := &models.Pos{PosName: req.PosName, PosDescription: req.PosDescription}
	if err := database.CreatePos(config.GetDB(), pos); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment post"})
	}
	return c.Status(201).JSON(fiber.Map{"pos": pos})
}

func UpdatePosAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pos ID"})
	}

	var req struct {
		PosName        *string `json:"pos_name"`
		PosDescription *string `json:"pos_description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	pos, err := database.GetPosByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Payment post not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment post"})
	}

	if req.PosName != nil {
		pos.PosName = *req.PosName
	}
	if req.PosDescription != nil {
		pos.PosDescription = req.PosDescription
	}

	if err := database.UpdatePos(config.GetDB(), pos); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment post"})
	}
	return c.JSON(fiber.Map{"pos": pos})
}

func DeletePosAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pos ID"})
	}

	if err := database.DeletePos(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete payment post"})
	}
	return c.JSON(fiber.Map{"success": true})
}
