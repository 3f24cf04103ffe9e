package periods

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetPeriodsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	periods, total, err := database.ListPeriods(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch periods"})
	}

	return c.JSON(fiber.Map{
		"periods": periods,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + limit - 1) / limit,
		},
	})
}

func GetPeriodAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period ID"})
	}

	period, err := database.GetPeriodByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Period not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch period"})
	}
	return c.JSON(fiber.Map{"period": period})
}

func CreatePeriodAPI(c *fiber.Ctx) error {
	var req struct {
		PeriodStart  int  `json:"period_start"`
		PeriodEnd    int  `json:"period_end"`
		PeriodStatus bool `json:"period_status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.PeriodStart == 0 || req.PeriodEnd == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Period start and end are required"})
	}
	if req.PeriodEnd < req.PeriodStart {
		return c.Status(400).JSON(fiber.Map{"error": "Period end must not precede start"})
	}

	period := &models.Period{
		PeriodStart:  req.PeriodStart,
		PeriodEnd:    req.PeriodEnd,
		PeriodStatus: req.PeriodStatus,
	}
	if err := database.CreatePeriod(config.GetDB(), period); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create period"})
	}
	return c.Status(201).JSON(fiber.Map{"period": period})
}

func UpdatePeriodAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period ID"})
	}

	var req struct {
		PeriodStart  *int  `json:"period_start"`
		PeriodEnd    *int  `json:"period_end"`
		PeriodStatus *bool `json:"period_status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	period, err := database.GetPeriodByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Period not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch period"})
	}

	if req.PeriodStart != nil {
		period.PeriodStart = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		period.PeriodEnd = *req.PeriodEnd
	}
	if req.PeriodStatus != nil {
		period.PeriodStatus = *req.PeriodStatus
	}
	if period.PeriodEnd < period.PeriodStart {
		return c.Status(400).JSON(fiber.Map{"error": "Period end must not precede start"})
	}

	if err := database.UpdatePeriod(config.GetDB(), period); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update period"})
	}
	return c.JSON(fiber.Map{"period": period})
}

// DeletePeriodAPI refuses when payments still reference the period.
func DeletePeriodAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid period ID"})
	}

	deleted, err := database.DeletePeriod(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete period"})
	}
	if !deleted {
		return c.Status(400).JSON(fiber.Map{"error": "Period still has payments"})
	}
	return c.JSON(fiber.Map{"success": true})
}
