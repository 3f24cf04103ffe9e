package database

import (
	"database/sql"

	"github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/models"
)

// PPDBStore adapts admission applicants to the credential verifier; the
// login key is the NISN.
type PPDBStore struct {
	DB *sql.DB
}

func (s PPDBStore) FindByLoginKey(key string) (*auth.Record, error) {
	record := &auth.Record{}
	var nisn, name sql.NullString

	query := `SELECT id, nisn, nama_peserta, password
			  FROM ppdb_participant
			  WHERE nisn = $1`

	err := s.DB.QueryRow(query, key).Scan(&record.ID, &nisn, &name, &record.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	record.LoginKey = nisn.String
	record.DisplayName = name.String
	return record, nil
}

func (s PPDBStore) UpdatePasswordHash(id int, hash string) error {
	query := `UPDATE ppdb_participant SET password = $1 WHERE id = $2`
	_, err := s.DB.Exec(query, hash, id)
	return err
}

func GetPPDBParticipantByID(db *sql.DB, participantID int) (*models.PPDBParticipant, error) {
	participant := &models.PPDBParticipant{}
	query := `SELECT id, nisn, nama_peserta, no_pendaftaran, status, ppdb_status
			  FROM ppdb_participant WHERE id = $1`

	err := db.QueryRow(query, participantID).Scan(
		&participant.ID, &participant.NISN, &participant.NamaPeserta,
		&participant.NoPendaftaran, &participant.Status, &participant.PPDBStatus,
	)
	if err != nil {
		return nil, err
	}
	return participant, nil
}
