package appointment

import "github.com/Harika-001-tech/prenatal-app/internal/httperr"

// Admission and availability outcomes. Callers match them with errors.Is; the
// returned errors usually wrap one of these with detail.
var (
	ErrInvalidDateFormat      = httperr.ErrBusiness(httperr.CodeInvalidDateFormat)
	ErrInvalidDate            = httperr.ErrBusiness(httperr.CodeInvalidDate)
	ErrInvalidWorkingHours    = httperr.ErrBusiness(httperr.CodeInvalidWorkingHours)
	ErrInvalidDuration        = httperr.ErrBusiness(httperr.CodeInvalidDuration)
	ErrDoctorNotFound         = httperr.ErrBusiness(httperr.CodeDoctorNotFound)
	ErrDoctorAlreadyExists    = httperr.ErrBusiness(httperr.CodeDoctorAlreadyExists)
	ErrAppointmentNotFound    = httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	ErrSlotUnavailable        = httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	ErrSlotAlreadyBooked      = httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
	ErrPersistenceTimeout     = httperr.ErrBusiness(httperr.CodePersistenceTimeout)
	ErrPersistenceUnavailable = httperr.ErrBusiness(httperr.CodePersistenceUnavailable)
)
