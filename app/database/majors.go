package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/models"
)

func GetAllMajors(db *sql.DB) ([]*models.Major, error) {
	rows, err := db.Query(`SELECT majors_id, majors_name FROM majors ORDER BY majors_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var majors []*models.Major
	for rows.Next() {
		major := &models.Major{}
		if err := rows.Scan(&major.MajorsID, &major.MajorsName); err != nil {
			return nil, err
		}
		majors = append(majors, major)
	}
	return majors, rows.Err()
}

func GetMajorByID(db *sql.DB, majorID int) (*models.Major, error) {
	major := &models.Major{}
	err := db.QueryRow(`SELECT majors_id, majors_name FROM majors WHERE majors_id = $1`, majorID).
		Scan(&major.MajorsID, &major.MajorsName)
	if err != nil {
		return nil, err
	}
	return major, nil
}

func CreateMajor(db *sql.DB, major *models.Major) error {
	return db.QueryRow(`INSERT INTO majors (majors_name) VALUES ($1) RETURNING majors_id`, major.MajorsName).
		Scan(&major.MajorsID)
}

func UpdateMajor(db *sql.DB, major *models.Major) error {
	_, err := db.Exec(`UPDATE majors SET majors_name = $1 WHERE majors_id = $2`, major.MajorsName, major.MajorsID)
	return err
}

func DeleteMajor(db *sql.DB, majorID int) error {
	_, err := db.Exec(`DELETE FROM majors WHERE majors_id = $1`, majorID)
	return err
}
