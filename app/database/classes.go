package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/models"
)

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	rows, err := db.Query(`SELECT class_id, class_name FROM class ORDER BY class_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ClassID, &class.ClassName); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, classID int) (*models.Class, error) {
	class := &models.Class{}
	err := db.QueryRow(`SELECT class_id, class_name FROM class WHERE class_id = $1`, classID).
		Scan(&class.ClassID, &class.ClassName)
	if err != nil {
		return nil, err
	}
	return class, nil
}

func CreateClass(db *sql.DB, class *models.Class) error {
	return db.QueryRow(`INSERT INTO class (class_name) VALUES ($1) RETURNING class_id`, class.ClassName).
		Scan(&class.ClassID)
}

func UpdateClass(db *sql.DB, class *models.Class) error {
	_, err := db.Exec(`UPDATE class SET class_name = $1 WHERE class_id = $2`, class.ClassName, class.ClassID)
	return err
}

func DeleteClass(db *sql.DB, classID int) error {
	_, err := db.Exec(`DELETE FROM class WHERE class_id = $1`, classID)
	return err
}

// CountStudentsInClass guards class deletion.
func CountStudentsInClass(db *sql.DB, classID int) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM student WHERE class_class_id = $1 AND student_status = true`, classID).
		Scan(&count)
	return count, err
}
