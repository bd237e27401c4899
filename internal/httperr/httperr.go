package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest         = "invalid_request"
	CodeInvalidDateFormat      = "invalid_date_format"
	CodeInvalidDate            = "invalid_date"
	CodeInvalidWorkingHours    = "invalid_working_hours"
	CodeInvalidDuration        = "invalid_duration"
	CodeDoctorNotFound         = "doctor_not_found"
	CodeDoctorAlreadyExists    = "doctor_already_exists"
	CodeAppointmentNotFound    = "appointment_not_found"
	CodeSlotUnavailable        = "slot_unavailable"
	CodeSlotAlreadyBooked      = "slot_already_booked"
	CodePersistenceTimeout     = "persistence_timeout"
	CodePersistenceUnavailable = "persistence_unavailable"
)

type HTTPError struct {
	Code      string `json:"error_code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

var statusByCode = map[string]int{
	CodeInvalidRequest:         http.StatusBadRequest,
	CodeInvalidDateFormat:      http.StatusBadRequest,
	CodeInvalidDate:            http.StatusBadRequest,
	CodeInvalidDuration:        http.StatusBadRequest,
	CodeInvalidWorkingHours:    http.StatusUnprocessableEntity,
	CodeDoctorNotFound:         http.StatusNotFound,
	CodeDoctorAlreadyExists:    http.StatusConflict,
	CodeAppointmentNotFound:    http.StatusNotFound,
	CodeSlotUnavailable:        http.StatusUnprocessableEntity,
	CodeSlotAlreadyBooked:      http.StatusConflict,
	CodePersistenceTimeout:     http.StatusGatewayTimeout,
	CodePersistenceUnavailable: http.StatusServiceUnavailable,
}

// StatusFor maps a business code to its HTTP status. Unknown codes are internal errors.
func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:      code,
		Message:   message,
		Retryable: retryable[code],
	})
}

// Respond writes err using its business code; anything else becomes a 500.
func Respond(c *gin.Context, err error) {
	code := CodeOf(err)
	if code == "" {
		Internal(c, "internal_error", "unexpected error")
		return
	}
	Write(c, StatusFor(code), code, err.Error())
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
