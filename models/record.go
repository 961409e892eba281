package models

import "time"

type MedicalRecord struct {
	RecordID       string    `json:"RecordId"`
	PatientID      string    `json:"PatientId"`
	ProfessionalID string    `json:"ProfessionalId"`
	RecordDate     time.Time `json:"RecordDate"`
	Notes          string    `json:"Notes"`
}
