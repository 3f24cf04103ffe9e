package models

import "time"

// Pos is a payment post (SPP, building fund, uniforms, ...).
type Pos struct {
	PosID          int     `json:"pos_id"`
	PosName        string  `json:"pos_name"`
	PosDescription *string `json:"pos_description"`
}

type Payment struct {
	PaymentID      int     `json:"payment_id"`
	PaymentType    *string `json:"payment_type"`
	PeriodPeriodID *int    `json:"period_period_id"`
	PosPosID       *int    `json:"pos_pos_id"`
	Period         *Period `json:"period,omitempty"`
	Pos            *Pos    `json:"pos,omitempty"`
}

type Month struct {
	MonthID   int    `json:"month_id"`
	MonthName string `json:"month_name"`
}

// Bulan is a monthly installment against a payment for one student.
type Bulan struct {
	BulanID          int        `json:"bulan_id"`
	StudentStudentID int        `json:"student_student_id"`
	PaymentPaymentID int        `json:"payment_payment_id"`
	MonthMonthID     *int       `json:"month_month_id"`
	BulanBill        *float64   `json:"bulan_bill"`
	BulanStatus      bool       `json:"bulan_status"`
	BulanNumberPay   *string    `json:"bulan_number_pay"`
	BulanDatePay     *time.Time `json:"bulan_date_pay"`
	BulanInputDate   *time.Time `json:"bulan_input_date,omitempty"`
	UserUserID       *int       `json:"user_user_id"`
	Student          *Student   `json:"student,omitempty"`
	Payment          *Payment   `json:"payment,omitempty"`
	Month            *Month     `json:"month,omitempty"`
}

// Bebas is a free-amount payment (paid down over time) for one student.
type Bebas struct {
	BebasID          int      `json:"bebas_id"`
	StudentStudentID int      `json:"student_student_id"`
	PaymentPaymentID int      `json:"payment_payment_id"`
	BebasBill        *float64 `json:"bebas_bill"`
	BebasTotalPay    float64  `json:"bebas_total_pay"`
	Student          *Student `json:"student,omitempty"`
	Payment          *Payment `json:"payment,omitempty"`
}
