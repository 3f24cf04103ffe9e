package models

type Student struct {
	StudentID       int     `json:"student_id"`
	StudentNIS      *string `json:"student_nis"`
	StudentNISN     *string `json:"student_nisn"`
	StudentPassword *string `json:"-"`
	StudentFullName *string `json:"student_full_name"`
	StudentGender   *string `json:"student_gender"`
	StudentImg      *string `json:"student_img,omitempty"`
	StudentStatus   bool    `json:"student_status"`
	ClassClassID    *int    `json:"class_class_id"`
	MajorsMajorsID  *int    `json:"majors_majors_id"`
	Class           *Class  `json:"class,omitempty"`
	Major           *Major  `json:"major,omitempty"`
}
