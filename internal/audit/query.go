package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// Filter narrows an audit listing. Zero values match everything.
type Filter struct {
	DoctorID *uuid.UUID
	Action   string
	Entity   string
	From     time.Time
	To       time.Time

	Page  int
	Limit int
}

// Normalize clamps paging to page >= 1 and 1 <= limit <= 200 (default 50).
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
}

func (f Filter) offset() int {
	return (f.Page - 1) * f.Limit
}

func (f Filter) match(l models.AuditLog) bool {
	if f.DoctorID != nil && (l.DoctorID == nil || *l.DoctorID != *f.DoctorID) {
		return false
	}
	if f.Action != "" && l.Action != f.Action {
		return false
	}
	if f.Entity != "" && l.Entity != f.Entity {
		return false
	}
	if !f.From.IsZero() && l.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !l.CreatedAt.Before(f.To) {
		return false
	}
	return true
}

// Reader lists stored audit entries, newest first, with the total number of
// matches before paging.
type Reader interface {
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}
