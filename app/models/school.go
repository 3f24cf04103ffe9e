package models

import "time"

// School is a tenant: one hosted school keyed by its domain.
type School struct {
	SchoolID     int        `json:"school_id"`
	SchoolName   string     `json:"school_name"`
	Domain       string     `json:"domain"`
	LogoURL      *string    `json:"logo_url"`
	PrimaryColor *string    `json:"primary_color"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
