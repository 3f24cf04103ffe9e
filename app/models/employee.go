package models

// Employee is the teaching staff record. The underlying table predates this
// application and has drifted between deployments (password vs
// employee_password columns); the database layer normalizes it to this shape.
type Employee struct {
	EmployeeID       int     `json:"employee_id"`
	NIP              *string `json:"nip"`
	EmployeeFullName *string `json:"employee_full_name"`
	EmployeePassword *string `json:"-"`
	EmployeeStatus   int     `json:"employee_status"`
}
