package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/models"
)

func ListPos(db *sql.DB, search string, limit, offset int) ([]*models.Pos, int, error) {
	where := ``
	args := []interface{}{}
	if search != "" {
		where = `WHERE pos_name ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM pos `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT pos_id, pos_name, pos_description FROM pos ` + where + `
			  ORDER BY pos_id DESC
			  LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posList []*models.Pos
	for rows.Next() {
		pos := &models.Pos{}
		if err := rows.Scan(&pos.PosID, &pos.PosName, &pos.PosDescription); err != nil {
			return nil, 0, err
		}
		posList = append(posList, pos)
	}
	return posList, total, rows.Err()
}

func GetPosByID(db *sql.DB, posID int) (*models.Pos, error) {
	pos := &models.Pos{}
	err := db.QueryRow(`SELECT pos_id, pos_name, pos_description FROM pos WHERE pos_id = $1`, posID).
		Scan(&pos.PosID, &pos.PosName, &pos.PosDescription)
	if err != nil {
		return nil, err
	}
	return pos, nil
}

func CreatePos(db *sql.DB, pos *models.Pos) error {
	return db.QueryRow(
		`INSERT INTO pos (pos_name, pos_description) VALUES ($1, $2) RETURNING pos_id`,
		pos.PosName, pos.PosDescription,
	).Scan(&pos.PosID)
}

func UpdatePos(db *sql.DB, pos *models.Pos) error {
	_, err := db.Exec(
		`UPDATE pos SET pos_name = $1, pos_description = $2 WHERE pos_id = $3`,
		pos.PosName, pos.PosDescription, pos.PosID,
	)
	return err
}

func DeletePos(db *sql.DB, posID int) error {
	_, err := db.Exec(`DELETE FROM pos WHERE pos_id = $1`, posID)
	return err
}
