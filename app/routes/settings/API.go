package settings

import (
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.GetAllSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return c.JSON(fiber.Map{"settings": settings})
}

func GetSettingAPI(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Setting name is required"})
	}

	setting, err := database.GetSettingByName(config.GetDB(), name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch setting"})
	}
	if setting == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Setting not found"})
	}
	return c.JSON(fiber.Map{"setting": setting})
}

// UpsertSettingAPI writes a setting by name, creating it on first write.
func UpsertSettingAPI(c *fiber.Ctx) error {
	var req struct {
		SettingName  string  `json:"setting_name"`
		SettingValue *string `json:"setting_value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.SettingName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Setting name is required"})
	}

	setting := &models.Setting{SettingName: req.SettingName, SettingValue: req.SettingValue}
	created, err := database.UpsertSetting(config.GetDB(), setting)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save setting"})
	}

	status := 200
	if created {
		status = 201
	}
	return c.Status(status).JSON(fiber.Map{"setting": setting})
}

func UpdateSettingAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid setting ID"})
	}

	var req struct {
		SettingName  string  `json:"setting_name"`
		SettingValue *string `json:"setting_value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.SettingName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Setting name is required"})
	}

	setting := &models.Setting{SettingID: id, SettingName: req.SettingName, SettingValue: req.SettingValue}
	if err := database.UpdateSetting(config.GetDB(), setting); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update setting"})
	}
	return c.JSON(fiber.Map{"setting": setting})
}

func DeleteSettingAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid setting ID"})
	}

	if err := database.DeleteSetting(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete setting"})
	}
	return c.JSON(fiber.Map{"success": true})
}
