package models

import "time"

type Setting struct {
	SettingID         int        `json:"setting_id"`
	SettingName       string     `json:"setting_name"`
	SettingValue      *string    `json:"setting_value"`
	SettingLastUpdate *time.Time `json:"setting_last_update,omitempty"`
}
