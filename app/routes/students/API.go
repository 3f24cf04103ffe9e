package students

import (
	"database/sql"

	appauth "github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
)

// Students created without an explicit password get this one until they
// first change it.
const defaultStudentPassword = "password123"

func GetStudentsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	students, total, err := database.ListStudents(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + limit - 1) / limit,
		},
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	student, err := database.GetStudentByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		StudentNIS      *string `json:"student_nis"`
		StudentNISN     *string `json:"student_nisn"`
		StudentPassword string  `json:"student_password"`
		StudentFullName *string `json:"student_full_name"`
		StudentGender   *string `json:"student_gender"`
		ClassClassID    *int    `json:"class_class_id"`
		MajorsMajorsID  *int    `json:"majors_majors_id"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.StudentNIS == nil || *req.StudentNIS == "" {
		return c.Status(400).JSON(fiber.Map{"error": "NIS is required"})
	}

	password := req.StudentPassword
	if password == "" {
		password = defaultStudentPassword
	}
	hashedPassword, err := appauth.HashPassword(password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	student := &models.Student{
		StudentNIS:      req.StudentNIS,
		StudentNISN:     req.StudentNISN,
		StudentFullName: req.StudentFullName,
		StudentGender:   req.StudentGender,
		ClassClassID:    req.ClassClassID,
		MajorsMajorsID:  req.MajorsMajorsID,
		StudentStatus:   true,
	}

	if err := database.CreateStudent(config.GetDB(), student, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	type UpdateRequest struct {
		StudentNIS      *string `json:"student_nis"`
		StudentNISN     *string `json:"student_nisn"`
		StudentFullName *string `json:"student_full_name"`
		StudentGender   *string `json:"student_gender"`
		ClassClassID    *int    `json:"class_class_id"`
		MajorsMajorsID  *int    `json:"majors_majors_id"`
		StudentStatus   *bool   `json:"student_status"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	student, err := database.GetStudentByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	if req.StudentNIS != nil {
		student.StudentNIS = req.StudentNIS
	}
	if req.StudentNISN != nil {
		student.StudentNISN = req.StudentNISN
	}
	if req.StudentFullName != nil {
		student.StudentFullName = req.StudentFullName
	}
	if req.StudentGender != nil {
		student.StudentGender = req.StudentGender
	}
	if req.ClassClassID != nil {
		student.ClassClassID = req.ClassClassID
	}
	if req.MajorsMajorsID != nil {
		student.MajorsMajorsID = req.MajorsMajorsID
	}
	if req.StudentStatus != nil {
		student.StudentStatus = *req.StudentStatus
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"student": student})
}

// DeleteStudentAPI soft-deletes: the record stays, the status flag flips.
func DeleteStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	if err := database.SoftDeleteStudent(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"success": true})
}
