package auth

import (
	"database/sql"

	appauth "github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"

	"github.com/gofiber/fiber/v2"
)

// Portal logins for the non-admin principal variants. Each variant has its
// own cookie and token type; a student token is never accepted by the
// teacher or admin endpoints.

func studentVerifier() *appauth.Verifier {
	return &appauth.Verifier{
		Store:   database.StudentStore{DB: config.GetDB()},
		Variant: appauth.VariantStudent,
	}
}

func teacherVerifier() *appauth.Verifier {
	return &appauth.Verifier{
		Store:   database.EmployeeStore{DB: config.GetDB()},
		Variant: appauth.VariantTeacher,
	}
}

func ppdbVerifier() *appauth.Verifier {
	return &appauth.Verifier{
		Store:   database.PPDBStore{DB: config.GetDB()},
		Variant: appauth.VariantPPDB,
	}
}

func StudentLoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		NIS      string `json:"nis"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.NIS == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "NIS and password are required"})
	}

	principal, err := studentVerifier().Authenticate(req.NIS, req.Password)
	if err != nil {
		return loginFailure(c, err)
	}

	token, err := tokens.Issue(principal, appauth.VariantStudent)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setSessionCookie(c, "student_token", token)

	return c.JSON(fiber.Map{
		"success": true,
		"student": fiber.Map{
			"studentId": principal.ID,
			"nis":       principal.LoginKey,
			"fullName":  principal.DisplayName,
		},
		"token": token,
	})
}

func StudentMeAPI(c *fiber.Ctx) error {
	token := tokenFromRequest(c, "student_token")
	if token == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	claims, err := tokens.Verify(token, appauth.VariantStudent)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	student, err := database.GetStudentByID(config.GetDB(), claims.UserID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !student.StudentStatus {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	return c.JSON(fiber.Map{"student": student})
}

func TeacherLoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		NIP      string `json:"nip"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.NIP == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "NIP and password are required"})
	}

	principal, err := teacherVerifier().Authenticate(req.NIP, req.Password)
	if err != nil {
		return loginFailure(c, err)
	}

	token, err := tokens.Issue(principal, appauth.VariantTeacher)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setSessionCookie(c, "teacher_token", token)

	return c.JSON(fiber.Map{
		"success": true,
		"teacher": fiber.Map{
			"employeeId": principal.ID,
			"nip":        principal.LoginKey,
			"fullName":   principal.DisplayName,
		},
		"token": token,
	})
}

func TeacherMeAPI(c *fiber.Ctx) error {
	token := tokenFromRequest(c, "teacher_token")
	if token == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	claims, err := tokens.Verify(token, appauth.VariantTeacher)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	teacher, err := database.GetEmployeeByID(config.GetDB(), claims.UserID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if teacher.EmployeeStatus != 1 {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	return c.JSON(fiber.Map{"teacher": teacher})
}

func PPDBLoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		NISN     string `json:"nisn"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.NISN == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "NISN and password are required"})
	}

	principal, err := ppdbVerifier().Authenticate(req.NISN, req.Password)
	if err != nil {
		return loginFailure(c, err)
	}

	token, err := tokens.Issue(principal, appauth.VariantPPDB)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setSessionCookie(c, "ppdb_token", token)

	return c.JSON(fiber.Map{
		"success": true,
		"participant": fiber.Map{
			"participantId": principal.ID,
			"nisn":          principal.LoginKey,
			"namaPeserta":   principal.DisplayName,
		},
		"token": token,
	})
}

func PPDBMeAPI(c *fiber.Ctx) error {
	token := tokenFromRequest(c, "ppdb_token")
	if token == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	claims, err := tokens.Verify(token, appauth.VariantPPDB)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	participant, err := database.GetPPDBParticipantByID(config.GetDB(), claims.UserID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Participant not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"participant": participant})
}
