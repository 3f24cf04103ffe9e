package database

import (
	"database/sql"
	"strings"
	"time"

	"github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/models"
)

// NormalizeUsername applies the account-creation normalization for admin
// usernames. Lookups use the stored value verbatim.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// UserStore adapts admin users to the credential verifier.
type UserStore struct {
	DB *sql.DB
}

func (s UserStore) FindByLoginKey(key string) (*auth.Record, error) {
	record := &auth.Record{}
	var username, fullName, roleName sql.NullString
	var roleID sql.NullInt64

	query := `SELECT u.user_id, u.username, u.user_full_name, u.user_password, u.user_role_role_id, r.role_name
			  FROM users u
			  LEFT JOIN roles r ON r.role_id = u.user_role_role_id
			  WHERE u.username = $1 AND u.user_is_deleted = false`

	err := s.DB.QueryRow(query, key).Scan(
		&record.ID, &username, &fullName, &record.PasswordHash, &roleID, &roleName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	record.LoginKey = username.String
	record.DisplayName = fullName.String
	if roleID.Valid {
		id := int(roleID.Int64)
		record.RoleID = &id
	}
	if roleName.Valid {
		record.RoleType = &roleName.String
	}
	return record, nil
}

func (s UserStore) UpdatePasswordHash(id int, hash string) error {
	return UpdateUserPassword(s.DB, id, hash)
}

func UpdateUserPassword(db *sql.DB, userID int, hashedPassword string) error {
	query := `UPDATE users SET user_password = $1, user_last_update = NOW() WHERE user_id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func GetUserByID(db *sql.DB, userID int) (*models.User, error) {
	user := &models.User{}
	var roleName sql.NullString

	query := `SELECT u.user_id, u.username, u.user_email, u.user_password, u.user_full_name,
			  u.user_description, u.user_image, u.user_role_role_id, u.user_is_deleted,
			  u.user_input_date, u.user_last_update, r.role_name
			  FROM users u
			  LEFT JOIN roles r ON r.role_id = u.user_role_role_id
			  WHERE u.user_id = $1 AND u.user_is_deleted = false`

	err := db.QueryRow(query, userID).Scan(
		&user.UserID, &user.Username, &user.UserEmail, &user.UserPassword, &user.UserFullName,
		&user.UserDescription, &user.UserImage, &user.UserRoleRoleID, &user.UserIsDeleted,
		&user.UserInputDate, &user.UserLastUpdate, &roleName,
	)
	if err != nil {
		return nil, err
	}

	if user.UserRoleRoleID != nil && roleName.Valid {
		user.Role = &models.Role{RoleID: *user.UserRoleRoleID, RoleName: roleName.String}
	}
	return user, nil
}

// ListUsers returns non-deleted users filtered by an optional search term
// over full name and email, newest first, with the total match count.
func ListUsers(db *sql.DB, search string, limit, offset int) ([]*models.User, int, error) {
	where := `WHERE u.user_is_deleted = false`
	args := []interface{}{}
	if search != "" {
		where += ` AND (u.user_full_name ILIKE '%' || $1 || '%' OR u.user_email ILIKE '%' || $1 || '%')`
		args = append(args, search)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM users u ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT u.user_id, u.username, u.user_email, u.user_full_name, u.user_description,
			  u.user_image, u.user_role_role_id, u.user_is_deleted, u.user_input_date,
			  u.user_last_update, r.role_name
			  FROM users u
			  LEFT JOIN roles r ON r.role_id = u.user_role_role_id ` + where + `
			  ORDER BY u.user_id DESC
			  LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		var roleName sql.NullString
		if err := rows.Scan(
			&user.UserID, &user.Username, &user.UserEmail, &user.UserFullName, &user.UserDescription,
			&user.UserImage, &user.UserRoleRoleID, &user.UserIsDeleted, &user.UserInputDate,
			&user.UserLastUpdate, &roleName,
		); err != nil {
			return nil, 0, err
		}
		if user.UserRoleRoleID != nil && roleName.Valid {
			user.Role = &models.Role{RoleID: *user.UserRoleRoleID, RoleName: roleName.String}
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}

// UserExists reports whether a non-deleted user already claims the email or
// username. excludeID skips one user (0 to check all).
func UserExists(db *sql.DB, email, username string, excludeID int) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users
			  WHERE (user_email = $1 OR username = $2) AND user_is_deleted = false AND user_id <> $3`
	err := db.QueryRow(query, email, username, excludeID).Scan(&count)
	return count > 0, err
}

func CreateUser(db *sql.DB, user *models.User) error {
	now := time.Now()
	user.UserInputDate = &now

	query := `INSERT INTO users (username, user_email, user_password, user_full_name, user_description, user_role_role_id, user_is_deleted, user_input_date)
			  VALUES ($1, $2, $3, $4, $5, $6, false, $7)
			  RETURNING user_id`

	return db.QueryRow(query,
		user.Username, user.UserEmail, user.UserPassword, user.UserFullName,
		user.UserDescription, user.UserRoleRoleID, now,
	).Scan(&user.UserID)
}

func UpdateUser(db *sql.DB, user *models.User) error {
	query := `UPDATE users
			  SET user_email = $1, user_full_name = $2, user_description = $3,
			      user_role_role_id = $4, user_last_update = NOW()
			  WHERE user_id = $5 AND user_is_deleted = false`
	_, err := db.Exec(query,
		user.UserEmail, user.UserFullName, user.UserDescription, user.UserRoleRoleID, user.UserID,
	)
	return err
}

func SoftDeleteUser(db *sql.DB, userID int) error {
	query := `UPDATE users SET user_is_deleted = true, user_last_update = NOW() WHERE user_id = $1`
	_, err := db.Exec(query, userID)
	return err
}
