package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/models"
	"medibook/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSendsIdempotencyKey(t *testing.T) {
	var gotKey string
	var gotBody models.CreateAppointmentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/appointments", r.URL.Path)
		gotKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Appointment{ID: gotBody.AppointmentID, Status: models.StatusPending})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	req := models.CreateAppointmentRequest{
		AppointmentID:   "APT-1717754400000-deadbeef",
		ClinicID:        "C1",
		DoctorID:        "D1",
		PatientID:       "P1",
		ConsultationFee: "150.00",
		Status:          int(models.StatusPending),
	}

	appt, err := client.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, req.AppointmentID, gotKey)
	assert.Equal(t, req.AppointmentID, appt.ID)
	assert.Equal(t, "C1", gotBody.ClinicID)
}

func TestRescheduleMapsConflictToVersionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/appointments/APT-1/reschedule", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.Reschedule(context.Background(), models.RescheduleRequest{
		AppointmentID: "APT-1",
		Date:          "2024-06-11",
		Time:          "14:30",
		Version:       3,
	})

	assert.True(t, errors.Is(err, booking.ErrVersionConflict))
}

func TestGetMapsMissingToNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Get(context.Background(), "missing")

	assert.True(t, errors.Is(err, booking.ErrNotFound))
}

func TestListFiltersByQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "P1", r.URL.Query().Get("patient_id"))
		assert.Equal(t, "C1", r.URL.Query().Get("clinic_id"))
		json.NewEncoder(w).Encode([]models.Appointment{{ID: "APT-1"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	appointments, err := client.List(context.Background(), models.AppointmentFilter{PatientID: "P1", ClinicID: "C1"})

	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "APT-1", appointments[0].ID)
}

func TestServerErrorIncludesBodySnippet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database offline", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.UpdateStatus(context.Background(), "APT-1", models.StatusCancelled, "no longer needed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "database offline")
}
