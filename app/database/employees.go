package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/models"
)

// EmployeeStore adapts teaching staff to the credential verifier; the login
// key is the NIP. The legacy employee table stored the hash under either
// password or employee_password depending on deployment age, so the drift
// is resolved here with COALESCE and the rest of the application only ever
// sees one shape.
type EmployeeStore struct {
	DB *sql.DB
}

func (s EmployeeStore) FindByLoginKey(key string) (*auth.Record, error) {
	record := &auth.Record{}
	var nip, fullName sql.NullString

	query := `SELECT employee_id, nip, employee_full_name, COALESCE(password, employee_password)
			  FROM employee
			  WHERE nip = $1 AND employee_status = 1`

	err := s.DB.QueryRow(query, key).Scan(&record.ID, &nip, &fullName, &record.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	record.LoginKey = nip.String
	record.DisplayName = fullName.String
	return record, nil
}

func (s EmployeeStore) UpdatePasswordHash(id int, hash string) error {
	query := `UPDATE employee SET password = $1 WHERE employee_id = $2`
	_, err := s.DB.Exec(query, hash, id)
	return err
}

func GetEmployeeByID(db *sql.DB, employeeID int) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `SELECT employee_id, nip, employee_full_name, employee_status
			  FROM employee WHERE employee_id = $1`

	err := db.QueryRow(query, employeeID).Scan(
		&employee.EmployeeID, &employee.NIP, &employee.EmployeeFullName, &employee.EmployeeStatus,
	)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func CountActiveTeachers(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM employee WHERE employee_status = 1`).Scan(&count)
	return count, err
}
