package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/models"
)

func GetAllSettings(db *sql.DB) ([]*models.Setting, error) {
	rows, err := db.Query(`SELECT setting_id, setting_name, setting_value, setting_last_update FROM setting ORDER BY setting_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		setting := &models.Setting{}
		if err := rows.Scan(&setting.SettingID, &setting.SettingName, &setting.SettingValue, &setting.SettingLastUpdate); err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

func GetSettingByName(db *sql.DB, name string) (*models.Setting, error) {
	setting := &models.Setting{}
	err := db.QueryRow(
		`SELECT setting_id, setting_name, setting_value, setting_last_update FROM setting WHERE setting_name = $1`,
		name,
	).Scan(&setting.SettingID, &setting.SettingName, &setting.SettingValue, &setting.SettingLastUpdate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return setting, nil
}

// UpsertSetting writes a name-keyed setting, creating it on first write.
// Returns true when a new row was created.
func UpsertSetting(db *sql.DB, setting *models.Setting) (bool, error) {
	existing, err := GetSettingByName(db, setting.SettingName)
	if err != nil {
		return false, err
	}

	if existing != nil {
		setting.SettingID = existing.SettingID
		_, err := db.Exec(
			`UPDATE setting SET setting_value = $1, setting_last_update = NOW() WHERE setting_id = $2`,
			setting.SettingValue, existing.SettingID,
		)
		return false, err
	}

	err = db.QueryRow(
		`INSERT INTO setting (setting_name, setting_value, setting_last_update) VALUES ($1, $2, NOW()) RETURNING setting_id`,
		setting.SettingName, setting.SettingValue,
	).Scan(&setting.SettingID)
	return true, err
}

func UpdateSetting(db *sql.DB, setting *models.Setting) error {
	_, err := db.Exec(
		`UPDATE setting SET setting_name = $1, setting_value = $2, setting_last_update = NOW() WHERE setting_id = $3`,
		setting.SettingName, setting.SettingValue, setting.SettingID,
	)
	return err
}

func DeleteSetting(db *sql.DB, settingID int) error {
	_, err := db.Exec(`DELETE FROM setting WHERE setting_id = $1`, settingID)
	return err
}
