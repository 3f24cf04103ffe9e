package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/models"
)

func ListPayments(db *sql.DB, limit, offset int) ([]*models.Payment, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM payment`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT p.payment_id, p.payment_type, p.period_period_id, p.pos_pos_id,
			  pe.period_start, pe.period_end, pe.period_status, po.pos_name, po.pos_description
			  FROM payment p
			  LEFT JOIN period pe ON pe.period_id = p.period_period_id
			  LEFT JOIN pos po ON po.pos_id = p.pos_pos_id
			  ORDER BY p.payment_id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, payment)
	}
	return payments, total, rows.Err()
}

func scanPayment(scan func(dest ...interface{}) error) (*models.Payment, error) {
	payment := &models.Payment{}
	var periodStart, periodEnd sql.NullInt64
	var periodStatus sql.NullBool
	var posName, posDescription sql.NullString

	err := scan(
		&payment.PaymentID, &payment.PaymentType, &payment.PeriodPeriodID, &payment.PosPosID,
		&periodStart, &periodEnd, &periodStatus, &posName, &posDescription,
	)
	if err != nil {
		return nil, err
	}

	if payment.PeriodPeriodID != nil && periodStart.Valid {
		payment.Period = &models.Period{
			PeriodID:     *payment.PeriodPeriodID,
			PeriodStart:  int(periodStart.Int64),
			PeriodEnd:    int(periodEnd.Int64),
			PeriodStatus: periodStatus.Bool,
		}
	}
	if payment.PosPosID != nil && posName.Valid {
		pos := &models.Pos{PosID: *payment.PosPosID, PosName: posName.String}
		if posDescription.Valid {
			pos.PosDescription = &posDescription.String
		}
		payment.Pos = pos
	}
	return payment, nil
}

func GetPaymentByID(db *sql.DB, paymentID int) (*models.Payment, error) {
	query := `SELECT p.payment_id, p.payment_type, p.period_period_id, p.pos_pos_id,
			  pe.period_start, pe.period_end, pe.period_status, po.pos_name, po.pos_description
			  FROM payment p
			  LEFT JOIN period pe ON pe.period_id = p.period_period_id
			  LEFT JOIN pos po ON po.pos_id = p.pos_pos_id
			  WHERE p.payment_id = $1`
	return scanPayment(db.QueryRow(query, paymentID).Scan)
}

func CreatePayment(db *sql.DB, payment *models.Payment) error {
	return db.QueryRow(
		`INSERT INTO payment (payment_type, period_period_id, pos_pos_id) VALUES ($1, $2, $3) RETURNING payment_id`,
		payment.PaymentType, payment.PeriodPeriodID, payment.PosPosID,
	).Scan(&payment.PaymentID)
}

func GetAllMonths(db *sql.DB) ([]*models.Month, error) {
	rows, err := db.Query(`SELECT month_id, month_name FROM month ORDER BY month_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []*models.Month
	for rows.Next() {
		month := &models.Month{}
		if err := rows.Scan(&month.MonthID, &month.MonthName); err != nil {
			return nil, err
		}
		months = append(months, month)
	}
	return months, rows.Err()
}

const bulanColumns = `b.bulan_id, b.student_student_id, b.payment_payment_id, b.month_month_id,
	b.bulan_bill, b.bulan_status, b.bulan_number_pay, b.bulan_date_pay, b.bulan_input_date,
	b.user_user_id, s.student_nis, s.student_full_name, m.month_name`

const bulanJoins = `FROM bulan b
	LEFT JOIN student s ON s.student_id = b.student_student_id
	LEFT JOIN month m ON m.month_id = b.month_month_id`

func scanBulan(scan func(dest ...interface{}) error) (*models.Bulan, error) {
	bulan := &models.Bulan{}
	var nis, fullName, monthName sql.NullString

	err := scan(
		&bulan.BulanID, &bulan.StudentStudentID, &bulan.PaymentPaymentID, &bulan.MonthMonthID,
		&bulan.BulanBill, &bulan.BulanStatus, &bulan.BulanNumberPay, &bulan.BulanDatePay,
		&bulan.BulanInputDate, &bulan.UserUserID, &nis, &fullName, &monthName,
	)
	if err != nil {
		return nil, err
	}

	if nis.Valid || fullName.Valid {
		bulan.Student = &models.Student{StudentID: bulan.StudentStudentID}
		if nis.Valid {
			bulan.Student.StudentNIS = &nis.String
		}
		if fullName.Valid {
			bulan.Student.StudentFullName = &fullName.String
		}
	}
	if bulan.MonthMonthID != nil && monthName.Valid {
		bulan.Month = &models.Month{MonthID: *bulan.MonthMonthID, MonthName: monthName.String}
	}
	return bulan, nil
}

// ListBulan returns monthly payments, optionally filtered by student and
// payment (0 means no filter), newest first.
func ListBulan(db *sql.DB, studentID, paymentID int) ([]*models.Bulan, error) {
	where := `WHERE ($1 = 0 OR b.student_student_id = $1) AND ($2 = 0 OR b.payment_payment_id = $2)`
	query := `SELECT ` + bulanColumns + ` ` + bulanJoins + ` ` + where + ` ORDER BY b.bulan_id DESC`

	rows, err := db.Query(query, studentID, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Bulan
	for rows.Next() {
		bulan, err := scanBulan(rows.Scan)
		if err != nil {
			return nil, err
		}
		payments = append(payments, bulan)
	}
	return payments, rows.Err()
}

func GetBulanByID(db *sql.DB, bulanID int) (*models.Bulan, error) {
	query := `SELECT ` + bulanColumns + ` ` + bulanJoins + ` WHERE b.bulan_id = $1`
	return scanBulan(db.QueryRow(query, bulanID).Scan)
}

func CreateBulan(db *sql.DB, bulan *models.Bulan) error {
	query := `INSERT INTO bulan (student_student_id, payment_payment_id, month_month_id, bulan_bill,
			  bulan_status, bulan_number_pay, bulan_date_pay, bulan_input_date, user_user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8)
			  RETURNING bulan_id, bulan_input_date`

	return db.QueryRow(query,
		bulan.StudentStudentID, bulan.PaymentPaymentID, bulan.MonthMonthID, bulan.BulanBill,
		bulan.BulanStatus, bulan.BulanNumberPay, bulan.BulanDatePay, bulan.UserUserID,
	).Scan(&bulan.BulanID, &bulan.BulanInputDate)
}

func UpdateBulan(db *sql.DB, bulan *models.Bulan) error {
	query := `UPDATE bulan
			  SET bulan_bill = $1, bulan_status = $2, bulan_number_pay = $3, bulan_date_pay = $4, user_user_id = $5
			  WHERE bulan_id = $6`
	_, err := db.Exec(query,
		bulan.BulanBill, bulan.BulanStatus, bulan.BulanNumberPay, bulan.BulanDatePay,
		bulan.UserUserID, bulan.BulanID,
	)
	return err
}

func DeleteBulan(db *sql.DB, bulanID int) error {
	_, err := db.Exec(`DELETE FROM bulan WHERE bulan_id = $1`, bulanID)
	return err
}

const bebasColumns = `bb.bebas_id, bb.student_student_id, bb.payment_payment_id, bb.bebas_bill,
	bb.bebas_total_pay, s.student_nis, s.student_full_name`

const bebasJoins = `FROM bebas bb
	LEFT JOIN student s ON s.student_id = bb.student_student_id`

func scanBebas(scan func(dest ...interface{}) error) (*models.Bebas, error) {
	bebas := &models.Bebas{}
	var nis, fullName sql.NullString

	err := scan(
		&bebas.BebasID, &bebas.StudentStudentID, &bebas.PaymentPaymentID,
		&bebas.BebasBill, &bebas.BebasTotalPay, &nis, &fullName,
	)
	if err != nil {
		return nil, err
	}

	if nis.Valid || fullName.Valid {
		bebas.Student = &models.Student{StudentID: bebas.StudentStudentID}
		if nis.Valid {
			bebas.Student.StudentNIS = &nis.String
		}
		if fullName.Valid {
			bebas.Student.StudentFullName = &fullName.String
		}
	}
	return bebas, nil
}

func ListBebas(db *sql.DB, studentID, paymentID int) ([]*models.Bebas, error) {
	where := `WHERE ($1 = 0 OR bb.student_student_id = $1) AND ($2 = 0 OR bb.payment_payment_id = $2)`
	query := `SELECT ` + bebasColumns + ` ` + bebasJoins + ` ` + where + ` ORDER BY bb.bebas_id DESC`

	rows, err := db.Query(query, studentID, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Bebas
	for rows.Next() {
		bebas, err := scanBebas(rows.Scan)
		if err != nil {
			return nil, err
		}
		payments = append(payments, bebas)
	}
	return payments, rows.Err()
}

func GetBebasByID(db *sql.DB, bebasID int) (*models.Bebas, error) {
	query := `SELECT ` + bebasColumns + ` ` + bebasJoins + ` WHERE bb.bebas_id = $1`
	return scanBebas(db.QueryRow(query, bebasID).Scan)
}

func CreateBebas(db *sql.DB, bebas *models.Bebas) error {
	return db.QueryRow(
		`INSERT INTO bebas (student_student_id, payment_payment_id, bebas_bill, bebas_total_pay)
		 VALUES ($1, $2, $3, $4) RETURNING bebas_id`,
		bebas.StudentStudentID, bebas.PaymentPaymentID, bebas.BebasBill, bebas.BebasTotalPay,
	).Scan(&bebas.BebasID)
}

func UpdateBebas(db *sql.DB, bebas *models.Bebas) error {
	_, err := db.Exec(
		`UPDATE bebas SET bebas_bill = $1, bebas_total_pay = $2 WHERE bebas_id = $3`,
		bebas.BebasBill, bebas.BebasTotalPay, bebas.BebasID,
	)
	return err
}

func DeleteBebas(db *sql.DB, bebasID int) error {
	_, err := db.Exec(`DELETE FROM bebas WHERE bebas_id = $1`, bebasID)
	return err
}
