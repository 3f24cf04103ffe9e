package models

import "time"

type Role struct {
	RoleID   int    `json:"role_id"`
	RoleName string `json:"role_name"`
}

type User struct {
	UserID          int        `json:"user_id"`
	Username        *string    `json:"username"`
	UserEmail       *string    `json:"user_email"`
	UserPassword    string     `json:"-"`
	UserFullName    *string    `json:"user_full_name"`
	UserDescription *string    `json:"user_description,omitempty"`
	UserImage       *string    `json:"user_image,omitempty"`
	UserRoleRoleID  *int       `json:"user_role_role_id"`
	UserIsDeleted   bool       `json:"user_is_deleted"`
	UserInputDate   *time.Time `json:"user_input_date,omitempty"`
	UserLastUpdate  *time.Time `json:"user_last_update,omitempty"`
	Role            *Role      `json:"role,omitempty"`
}
