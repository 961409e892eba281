package models

import "time"

type Appointment struct {
	AppointmentID    string    `json:"AppointmentId"`
	AppointmentStart time.Time `json:"AppointmentStart"`
	AppointmentEnd   time.Time `json:"AppointmentEnd"`
	Title            string    `json:"Title"`
	Status           string    `json:"Status"`
	ProfessionalID   string    `json:"ProfessionalId"`
	PatientID        string    `json:"PatientId"`
	ServiceID        *string   `json:"ServiceId,omitempty"`
}

// AppointmentDetail is the joined view returned by the appointments
// listing: one appointment plus the names shown in the dashboard table.
type AppointmentDetail struct {
	AppointmentID         string    `json:"appointment_id"`
	AppointmentStart      time.Time `json:"appointment_start"`
	AppointmentEnd        time.Time `json:"appointment_end"`
	Status                string    `json:"status"`
	ProfessionalFirstName string    `json:"professional_first_name"`
	ProfessionalLastName  string    `json:"professional_last_name"`
	Specialty             string    `json:"specialty"`
	PatientFirstName      string    `json:"patient_first_name"`
	PatientLastName       string    `json:"patient_last_name"`
	PatientID             string    `json:"patient_id"`
	ProfessionalID        string    `json:"professional_id"`
}
