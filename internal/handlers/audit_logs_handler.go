package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader audit.Reader
	loc    *time.Location
}

func NewAuditLogsHandler(reader audit.Reader, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}
	f.Normalize()

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if raw := c.Query("doctor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidRequest, "invalid doctor_id")
			return
		}
		f.DoctorID = &id
	}

	from, ok, err := dayQuery(c, "from", h.loc)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "invalid from")
		return
	}
	if ok {
		f.From = from
	}

	to, ok, err := dayQuery(c, "to", h.loc)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "invalid to")
		return
	}
	if ok {
		f.To = to.AddDate(0, 0, 1)
	}

	// --------------------------------------------------
	// Listing
	// --------------------------------------------------

	logs, total, err := h.reader.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "failed to list audit logs")
		return
	}

	c.JSON(200, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
