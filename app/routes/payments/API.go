package payments

import (
	"database/sql"
	"strings"
	"time"

	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetPaymentsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	payments, total, err := database.ListPayments(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + limit - 1) / limit,
		},
	})
}

func GetPaymentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	payment, err := database.GetPaymentByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	return c.JSON(fiber.Map{"payment": payment})
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	var req struct {
		PaymentType    *string `json:"payment_type"`
		PeriodPeriodID *int    `json:"period_period_id"`
		PosPosID       *int    `json:"pos_pos_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.PaymentType == nil || *req.PaymentType == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Payment type is required"})
	}

	payment := &models.Payment{
		PaymentType:    req.PaymentType,
		PeriodPeriodID: req.PeriodPeriodID,
		PosPosID:       req.PosPosID,
	}
	if err := database.CreatePayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}
	return c.Status(201).JSON(fiber.Map{"payment": payment})
}

func GetMonthsAPI(c *fiber.Ctx) error {
	months, err := database.GetAllMonths(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch months"})
	}
	return c.JSON(fiber.Map{"months": months})
}

// newReceiptNumber makes a short unique number for paid installments.
func newReceiptNumber() string {
	return "PAY-" + strings.ToUpper(uuid.New().String()[:8])
}

func operatorID(c *fiber.Ctx) *int {
	if id, ok := c.Locals("user_id").(int); ok {
		return &id
	}
	return nil
}

func GetBulanListAPI(c *fiber.Ctx) error {
	studentID := c.QueryInt("student_id", 0)
	paymentID := c.QueryInt("payment_id", 0)

	bulanList, err := database.ListBulan(config.GetDB(), studentID, paymentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly payments"})
	}
	return c.JSON(fiber.Map{"bulan": bulanList})
}

func GetBulanAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid bulan ID"})
	}

	bulan, err := database.GetBulanByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Monthly payment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly payment"})
	}
	return c.JSON(fiber.Map{"bulan": bulan})
}

func CreateBulanAPI(c *fiber.Ctx) error {
	var req struct {
		StudentStudentID int      `json:"student_student_id"`
		PaymentPaymentID int      `json:"payment_payment_id"`
		MonthMonthID     *int     `json:"month_month_id"`
		BulanBill        *float64 `json:"bulan_bill"`
		BulanStatus      bool     `json:"bulan_status"`
		BulanNumberPay   *string  `json:"bulan_number_pay"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.StudentStudentID == 0 || req.PaymentPaymentID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Student and payment are required"})
	}

	bulan := &models.Bulan{
		StudentStudentID: req.StudentStudentID,
		PaymentPaymentID: req.PaymentPaymentID,
		MonthMonthID:     req.MonthMonthID,
		BulanBill:        req.BulanBill,
		BulanStatus:      req.BulanStatus,
		BulanNumberPay:   req.BulanNumberPay,
		UserUserID:       operatorID(c),
	}
	if bulan.BulanStatus {
		now := time.Now()
		bulan.BulanDatePay = &now
		if bulan.BulanNumberPay == nil || *bulan.BulanNumberPay == "" {
			number := newReceiptNumber()
			bulan.BulanNumberPay = &number
		}
	}

	if err := database.CreateBulan(config.GetDB(), bulan); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create monthly payment"})
	}
	return c.Status(201).JSON(fiber.Map{"bulan": bulan})
}

func UpdateBulanAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid bulan ID"})
	}

	var req struct {
		BulanBill      *float64 `json:"bulan_bill"`
		BulanStatus    *bool    `json:"bulan_status"`
		BulanNumberPay *string  `json:"bulan_number_pay"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	bulan, err := database.GetBulanByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Monthly payment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly payment"})
	}

	if req.BulanBill != nil {
		bulan.BulanBill = req.BulanBill
	}
	if req.BulanNumberPay != nil {
		bulan.BulanNumberPay = req.BulanNumberPay
	}
	if req.BulanStatus != nil && *req.BulanStatus != bulan.BulanStatus {
		bulan.BulanStatus = *req.BulanStatus
		if bulan.BulanStatus {
			now := time.Now()
			bulan.BulanDatePay = &now
			bulan.UserUserID = operatorID(c)
			if bulan.BulanNumberPay == nil || *bulan.BulanNumberPay == "" {
				number := newReceiptNumber()
				bulan.BulanNumberPay = &number
			}
		} else {
			bulan.BulanDatePay = nil
			bulan.BulanNumberPay = nil
		}
	}

	if err := database.UpdateBulan(config.GetDB(), bulan); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update monthly payment"})
	}
	return c.JSON(fiber.Map{"bulan": bulan})
}

func DeleteBulanAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid bulan ID"})
	}

	if err := database.DeleteBulan(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete monthly payment"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetBebasListAPI(c *fiber.Ctx) error {
	studentID := c.QueryInt("student_id", 0)
	paymentID := c.QueryInt("payment_id", 0)

	bebasList, err := database.ListBebas(config.GetDB(), studentID, paymentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch free payments"})
	}
	return c.JSON(fiber.Map{"bebas": bebasList})
}

func GetBebasAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid bebas ID"})
	}

	bebas, err := database.GetBebasByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Free payment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch free payment"})
	}
	return c.JSON(fiber.Map{"bebas": bebas})
}

func CreateBebasAPI(c *fiber.Ctx) error {
	var req struct {
		StudentStudentID int      `json:"student_student_id"`
		PaymentPaymentID int      `json:"payment_payment_id"`
		BebasBill        *float64 `json:"bebas_bill"`
		BebasTotalPay    float64  `json:"bebas_total_pay"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.StudentStudentID == 0 || req.PaymentPaymentID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Student and payment are required"})
	}

	bebas := &models.Bebas{
		StudentStudentID: req.StudentStudentID,
		PaymentPaymentID: req.PaymentPaymentID,
		BebasBill:        req.BebasBill,
		BebasTotalPay:    req.BebasTotalPay,
	}
	if err := database.CreateBebas(config.GetDB(), bebas); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create free payment"})
	}
	return c.Status(201).JSON(fiber.Map{"bebas": bebas})
}

func UpdateBebasAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid bebas ID"})
	}

	var req struct {
		BebasBill     *float64 `json:"bebas_bill"`
		BebasTotalPay *float64 `json:"bebas_total_pay"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	bebas, err := database.GetBebasByID(config.GetDB(), id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Free payment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch free payment"})
	}

	if req.BebasBill != nil {
		bebas.BebasBill = req.BebasBill
	}
	if req.BebasTotalPay != nil {
		bebas.BebasTotalPay = *req.BebasTotalPay
	}

	if err := database.UpdateBebas(config.GetDB(), bebas); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update free payment"})
	}
	return c.JSON(fiber.Map{"bebas": bebas})
}

func DeleteBebasAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid bebas ID"})
	}

	if err := database.DeleteBebas(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete free payment"})
	}
	return c.JSON(fiber.Map{"success": true})
}
