package models

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100" json:"specialization"`

	// HH:MM wall-clock times in the service's fixed offset.
	WorkingHoursStart string `gorm:"size:5;not null" json:"working_hours_start"`
	WorkingHoursEnd   string `gorm:"size:5;not null" json:"working_hours_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
