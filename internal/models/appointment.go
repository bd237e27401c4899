package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_doctor_start,priority:1" json:"doctor_id"`

	StartTime   time.Time `gorm:"not null;uniqueIndex:idx_appointments_doctor_start,priority:2" json:"start_time"`
	EndTime     time.Time `gorm:"not null;index" json:"end_time"`
	DurationMin int       `gorm:"not null" json:"duration"`

	AppointmentType string `gorm:"size:50" json:"appointment_type"`
	PatientName     string `gorm:"size:100;not null" json:"patient_name"`
	Notes           string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
