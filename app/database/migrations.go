package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. Add branding columns to school if not exists
	if err := addSchoolBrandingColumns(db); err != nil {
		return err
	}

	// 2. Enforce lowercase-unique admin usernames
	if err := addUsernameIndex(db); err != nil {
		return err
	}

	// 3. Add receipt number column to bulan if not exists
	if err := addBulanNumberPayColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addSchoolBrandingColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'school' AND column_name = 'logo_url'
			) THEN
				ALTER TABLE school ADD COLUMN logo_url VARCHAR(500);
			END IF;
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'school' AND column_name = 'primary_color'
			) THEN
				ALTER TABLE school ADD COLUMN primary_color VARCHAR(20);
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	return err
}

func addUsernameIndex(db *sql.DB) error {
	// Usernames are lowercased at creation time; the index keeps legacy
	// rows from colliding case-insensitively.
	query := `CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_idx
			  ON users (LOWER(username)) WHERE user_is_deleted = false`
	_, err := db.Exec(query)
	return err
}

func addBulanNumberPayColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'bulan' AND column_name = 'bulan_number_pay'
			) THEN
				ALTER TABLE bulan ADD COLUMN bulan_number_pay VARCHAR(50);
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	return err
}
