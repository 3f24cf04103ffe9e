package models

type Class struct {
	ClassID   int    `json:"class_id"`
	ClassName string `json:"class_name"`
}

type Major struct {
	MajorsID   int    `json:"majors_id"`
	MajorsName string `json:"majors_name"`
}
