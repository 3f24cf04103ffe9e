package database

import (
	"database/sql"
	"log"

	"github.com/sinholic/epesantren/app/models"
)

func ListPeriods(db *sql.DB, limit, offset int) ([]*models.Period, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM period`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT period_id, period_start, period_end, period_status
			  FROM period ORDER BY period_id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var periods []*models.Period
	for rows.Next() {
		period := &models.Period{}
		if err := rows.Scan(&period.PeriodID, &period.PeriodStart, &period.PeriodEnd, &period.PeriodStatus); err != nil {
			return nil, 0, err
		}
		periods = append(periods, period)
	}
	return periods, total, rows.Err()
}

func GetPeriodByID(db *sql.DB, periodID int) (*models.Period, error) {
	period := &models.Period{}
	err := db.QueryRow(`SELECT period_id, period_start, period_end, period_status FROM period WHERE period_id = $1`, periodID).
		Scan(&period.PeriodID, &period.PeriodStart, &period.PeriodEnd, &period.PeriodStatus)
	if err != nil {
		return nil, err
	}
	return period, nil
}

// CreatePeriod inserts a period. When the new period is active every other
// period is deactivated first: at most one period is active at a time.
func CreatePeriod(db *sql.DB, period *models.Period) error {
	if period.PeriodStatus {
		if _, err := db.Exec(`UPDATE period SET period_status = false WHERE period_status = true`); err != nil {
			return err
		}
	}
	return db.QueryRow(
		`INSERT INTO period (period_start, period_end, period_status) VALUES ($1, $2, $3) RETURNING period_id`,
		period.PeriodStart, period.PeriodEnd, period.PeriodStatus,
	).Scan(&period.PeriodID)
}

func UpdatePeriod(db *sql.DB, period *models.Period) error {
	if period.PeriodStatus {
		if _, err := db.Exec(`UPDATE period SET period_status = false WHERE period_status = true AND period_id <> $1`, period.PeriodID); err != nil {
			return err
		}
	}
	_, err := db.Exec(
		`UPDATE period SET period_start = $1, period_end = $2, period_status = $3 WHERE period_id = $4`,
		period.PeriodStart, period.PeriodEnd, period.PeriodStatus, period.PeriodID,
	)
	return err
}

// DeletePeriod removes a period unless payments still reference it.
func DeletePeriod(db *sql.DB, periodID int) (bool, error) {
	var payments int
	if err := db.QueryRow(`SELECT COUNT(*) FROM payment WHERE period_period_id = $1`, periodID).Scan(&payments); err != nil {
		return false, err
	}
	if payments > 0 {
		return false, nil
	}
	_, err := db.Exec(`DELETE FROM period WHERE period_id = $1`, periodID)
	return err == nil, err
}

// AutoActivateCurrentPeriod flips the active flag to the period whose year
// range contains the given year. No-op when none matches or it is already
// active.
func AutoActivateCurrentPeriod(db *sql.DB, year int) error {
	var periodID int
	err := db.QueryRow(
		`SELECT period_id FROM period WHERE period_start <= $1 AND period_end >= $1 ORDER BY period_start DESC LIMIT 1`,
		year,
	).Scan(&periodID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	var active bool
	if err := db.QueryRow(`SELECT period_status FROM period WHERE period_id = $1`, periodID).Scan(&active); err != nil {
		return err
	}
	if active {
		return nil
	}

	if _, err := db.Exec(`UPDATE period SET period_status = false WHERE period_status = true`); err != nil {
		return err
	}
	if _, err := db.Exec(`UPDATE period SET period_status = true WHERE period_id = $1`, periodID); err != nil {
		return err
	}
	log.Printf("Activated period %d for year %d", periodID, year)
	return nil
}
