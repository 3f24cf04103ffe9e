package models

// PPDBParticipant is a new-student admission (PPDB) applicant.
type PPDBParticipant struct {
	ID            int     `json:"id"`
	NISN          *string `json:"nisn"`
	NamaPeserta   *string `json:"nama_peserta"`
	NoPendaftaran *string `json:"no_pendaftaran"`
	Password      *string `json:"-"`
	Status        *string `json:"status,omitempty"`
	PPDBStatus    *string `json:"ppdb_status,omitempty"`
}
