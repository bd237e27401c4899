package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	"github.com/Harika-001-tech/prenatal-app/internal/config"
	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
	"github.com/Harika-001-tech/prenatal-app/internal/infra/repository"
	"github.com/Harika-001-tech/prenatal-app/internal/lock"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
	"github.com/Harika-001-tech/prenatal-app/internal/timezone"
)

type server struct {
	t      *testing.T
	engine *gin.Engine
	events *audit.Dispatcher
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	memLog := audit.NewMemoryLog()
	events := audit.NewDispatcher(zerolog.Nop(), memLog)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:      &config.Config{LockTimeout: time.Second},
		Location:    timezone.Fixed(0),
		Log:         zerolog.Nop(),
		Repo:        repository.NewMemoryRepository(),
		Locker:      lock.NewKeyedMutex(),
		Audit:       events,
		AuditReader: memLog,
	})

	return &server{t: t, engine: r, events: events}
}

func (s *server) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type slotList struct {
	Data []struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	} `json:"data"`
	Total int `json:"total"`
}

func (s *server) createDoctor(start, end string) models.Doctor {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/doctors", gin.H{
		"name":                "Dr. Menon",
		"specialization":      "obstetrics",
		"working_hours_start": start,
		"working_hours_end":   end,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Doctor](s.t, w)
}

func TestBookingFlow(t *testing.T) {
	s := newServer(t)
	doctor := s.createDoctor("09:00", "10:00")
	availability := "/api/doctors/" + doctor.ID.String() + "/availability?date=2024-05-01"

	w := s.do(http.MethodGet, availability, nil)
	require.Equal(t, http.StatusOK, w.Code)
	slots := decode[slotList](t, w)
	require.Equal(t, 2, slots.Total)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), slots.Data[0].Start)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), slots.Data[0].End)

	book := gin.H{
		"doctor_id":        doctor.ID,
		"start":            "2024-05-01T09:00:00.000Z",
		"appointment_type": "checkup",
		"patient_name":     "Kavya",
	}

	w = s.do(http.MethodPost, "/api/appointments", book)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Appointment](t, w)
	assert.Equal(t, 30, created.DurationMin)

	w = s.do(http.MethodPost, "/api/appointments", book)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, httperr.CodeSlotAlreadyBooked, decode[httperr.HTTPError](t, w).Code)

	book["start"] = "2024-05-01T09:45:00.000Z"
	w = s.do(http.MethodPost, "/api/appointments", book)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, httperr.CodeSlotUnavailable, decode[httperr.HTTPError](t, w).Code)

	book["start"] = "not a date"
	w = s.do(http.MethodPost, "/api/appointments", book)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, httperr.CodeInvalidDateFormat, decode[httperr.HTTPError](t, w).Code)

	w = s.do(http.MethodGet, availability, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[slotList](t, w).Total)

	// move to 09:30, then cancel
	w = s.do(http.MethodPatch, "/api/appointments/"+created.ID.String(), gin.H{"start": "2024-05-01T09:30:00.000Z"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), decode[models.Appointment](t, w).StartTime)

	w = s.do(http.MethodGet, "/api/doctors/"+doctor.ID.String()+"/appointments?date=2024-05-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kavya")

	w = s.do(http.MethodDelete, "/api/appointments/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/api/appointments/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/appointments/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, availability, nil)
	assert.Equal(t, 2, decode[slotList](t, w).Total)

	require.NoError(t, s.events.Close(context.Background()))

	w = s.do(http.MethodGet, "/api/audit-logs?doctor_id="+doctor.ID.String()+"&action=appointment_conflict", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["total"])
}

func TestRequestValidation(t *testing.T) {
	s := newServer(t)
	doctor := s.createDoctor("09:00", "12:00")

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"doctor with inverted hours", http.MethodPost, "/api/doctors", gin.H{"name": "x", "working_hours_start": "12:00", "working_hours_end": "09:00"}, http.StatusUnprocessableEntity, httperr.CodeInvalidWorkingHours},
		{"doctor missing fields", http.MethodPost, "/api/doctors", gin.H{"name": "x"}, http.StatusBadRequest, httperr.CodeInvalidRequest},
		{"unknown doctor", http.MethodGet, "/api/doctors/4b1e6c1e-1a8e-4f0c-9d7a-2f4d1f0e9a11", nil, http.StatusNotFound, httperr.CodeDoctorNotFound},
		{"malformed doctor id", http.MethodGet, "/api/doctors/42/availability?date=2024-05-01", nil, http.StatusBadRequest, httperr.CodeInvalidRequest},
		{"missing date", http.MethodGet, "/api/doctors/" + doctor.ID.String() + "/availability", nil, http.StatusBadRequest, httperr.CodeInvalidDate},
		{"bad date", http.MethodGet, "/api/doctors/" + doctor.ID.String() + "/availability?date=2024-02-30", nil, http.StatusBadRequest, httperr.CodeInvalidDate},
		{"negative duration", http.MethodPost, "/api/appointments", gin.H{"doctor_id": doctor.ID, "start": "2024-05-01T09:00:00.000Z", "duration": -5, "patient_name": "x"}, http.StatusBadRequest, httperr.CodeInvalidDuration},
		{"reschedule unknown", http.MethodPatch, "/api/appointments/4b1e6c1e-1a8e-4f0c-9d7a-2f4d1f0e9a11", gin.H{"start": "2024-05-01T09:00:00.000Z"}, http.StatusNotFound, httperr.CodeAppointmentNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Equal(t, tc.code, decode[httperr.HTTPError](t, w).Code)
		})
	}
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/ready", nil).Code)
}
