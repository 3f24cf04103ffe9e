package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/models"
)

// StudentStore adapts students to the credential verifier; the login key is
// the NIS.
type StudentStore struct {
	DB *sql.DB
}

func (s StudentStore) FindByLoginKey(key string) (*auth.Record, error) {
	record := &auth.Record{}
	var nis, fullName sql.NullString

	query := `SELECT student_id, student_nis, student_full_name, student_password
			  FROM student
			  WHERE student_nis = $1 AND student_status = true`

	err := s.DB.QueryRow(query, key).Scan(&record.ID, &nis, &fullName, &record.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	record.LoginKey = nis.String
	record.DisplayName = fullName.String
	return record, nil
}

func (s StudentStore) UpdatePasswordHash(id int, hash string) error {
	query := `UPDATE student SET student_password = $1 WHERE student_id = $2`
	_, err := s.DB.Exec(query, hash, id)
	return err
}

const studentColumns = `s.student_id, s.student_nis, s.student_nisn, s.student_full_name,
	s.student_gender, s.student_img, s.student_status, s.class_class_id, s.majors_majors_id,
	c.class_name, m.majors_name`

const studentJoins = `FROM student s
	LEFT JOIN class c ON c.class_id = s.class_class_id
	LEFT JOIN majors m ON m.majors_id = s.majors_majors_id`

func scanStudent(scan func(dest ...interface{}) error) (*models.Student, error) {
	student := &models.Student{}
	var className, majorName sql.NullString

	err := scan(
		&student.StudentID, &student.StudentNIS, &student.StudentNISN, &student.StudentFullName,
		&student.StudentGender, &student.StudentImg, &student.StudentStatus,
		&student.ClassClassID, &student.MajorsMajorsID, &className, &majorName,
	)
	if err != nil {
		return nil, err
	}

	if student.ClassClassID != nil && className.Valid {
		student.Class = &models.Class{ClassID: *student.ClassClassID, ClassName: className.String}
	}
	if student.MajorsMajorsID != nil && majorName.Valid {
		student.Major = &models.Major{MajorsID: *student.MajorsMajorsID, MajorsName: majorName.String}
	}
	return student, nil
}

// ListStudents returns active students newest first with the total count.
func ListStudents(db *sql.DB, limit, offset int) ([]*models.Student, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM student WHERE student_status = true`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns + ` ` + studentJoins + `
			  WHERE s.student_status = true
			  ORDER BY s.student_id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}
	return students, total, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID int) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` ` + studentJoins + ` WHERE s.student_id = $1`
	return scanStudent(db.QueryRow(query, studentID).Scan)
}

func CreateStudent(db *sql.DB, student *models.Student, hashedPassword string) error {
	query := `INSERT INTO student (student_nis, student_nisn, student_password, student_full_name, student_gender, class_class_id, majors_majors_id, student_status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, true)
			  RETURNING student_id`

	return db.QueryRow(query,
		student.StudentNIS, student.StudentNISN, hashedPassword, student.StudentFullName,
		student.StudentGender, student.ClassClassID, student.MajorsMajorsID,
	).Scan(&student.StudentID)
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE student
			  SET student_nis = $1, student_nisn = $2, student_full_name = $3, student_gender = $4,
			      class_class_id = $5, majors_majors_id = $6, student_status = $7
			  WHERE student_id = $8`
	_, err := db.Exec(query,
		student.StudentNIS, student.StudentNISN, student.StudentFullName, student.StudentGender,
		student.ClassClassID, student.MajorsMajorsID, student.StudentStatus, student.StudentID,
	)
	return err
}

// SoftDeleteStudent marks a student inactive; rows are never removed.
func SoftDeleteStudent(db *sql.DB, studentID int) error {
	query := `UPDATE student SET student_status = false WHERE student_id = $1`
	_, err := db.Exec(query, studentID)
	return err
}
