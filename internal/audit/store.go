package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// Store writes audit events to the audit_logs table and lists them back.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var (
	_ Sink   = (*Store)(nil)
	_ Reader = (*Store)(nil)
)

func (s *Store) Write(ctx context.Context, ev Event) error {
	entry := toLog(ev)
	return s.db.WithContext(ctx).Create(&entry).Error
}

func (s *Store) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	q := s.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.DoctorID != nil {
		q = q.Where("doctor_id = ?", *f.DoctorID)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func toLog(ev Event) models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: ev.OccurredAt,
	}
	if ev.DoctorID != uuid.Nil {
		id := ev.DoctorID
		entry.DoctorID = &id
	}
	return entry
}
