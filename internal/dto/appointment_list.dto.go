package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID              uuid.UUID `json:"id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMin     int       `json:"duration"`
	AppointmentType string    `json:"appointment_type"`
	PatientName     string    `json:"patient_name"`
}
