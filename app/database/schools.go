package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/models"
)

// SchoolStore resolves tenants by domain for the branding resolver.
type SchoolStore struct {
	DB *sql.DB
}

func (s SchoolStore) FindByDomain(domain string) (*models.School, error) {
	school := &models.School{}

	query := `SELECT school_id, school_name, domain, logo_url, primary_color
			  FROM school
			  WHERE domain = $1 AND deleted_at IS NULL`

	err := s.DB.QueryRow(query, domain).Scan(
		&school.SchoolID, &school.SchoolName, &school.Domain,
		&school.LogoURL, &school.PrimaryColor,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return school, nil
}
