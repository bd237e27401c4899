package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
	"github.com/Harika-001-tech/prenatal-app/internal/httpresp"
	ucAppointment "github.com/Harika-001-tech/prenatal-app/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	book         *ucAppointment.BookAppointment
	get          *ucAppointment.GetAppointment
	reschedule   *ucAppointment.RescheduleAppointment
	cancel       *ucAppointment.CancelAppointment
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	book *ucAppointment.BookAppointment,
	get *ucAppointment.GetAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	cancel *ucAppointment.CancelAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		book:         book,
		get:          get,
		reschedule:   reschedule,
		cancel:       cancel,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" binding:"required"`
	Start           string    `json:"start" binding:"required"`
	Duration        int       `json:"duration"`
	AppointmentType string    `json:"appointment_type"`
	PatientName     string    `json:"patient_name" binding:"required"`
	Notes           string    `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Start    string `json:"start" binding:"required"`
	Duration int    `json:"duration"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	doctorID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "date is required")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), doctorID, date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.SlotAt(s.UTC()))
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, err.Error())
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		DoctorID:        req.DoctorID,
		Start:           req.Start,
		DurationMin:     req.Duration,
		AppointmentType: req.AppointmentType,
		PatientName:     req.PatientName,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, err.Error())
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: id,
		Start:         req.Start,
		DurationMin:   req.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	doctorID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "date is required")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), doctorID, date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	doctorID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "year and month are required")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), doctorID, year, month)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}
