package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByClinicNormalizesSpecialties(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/clinics/C1/doctors", r.URL.Path)
		w.Write([]byte(`[
			{"id":"D1","name":"Dr. Rivera","specialties":["Dermatology"],"consultation_fee":150},
			{"id":"D2","name":"Dr. Osei","specialties":"Cardiology","consultation_fee":200}
		]`))
	}))
	defer server.Close()

	doctors, err := NewClient(server.URL, time.Second).ListByClinic(context.Background(), "C1")

	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, models.SpecialtyList{"Dermatology"}, doctors[0].Specialties)
	assert.Equal(t, models.SpecialtyList{"Cardiology"}, doctors[1].Specialties)
}

func TestListByClinicSurfacesServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "directory offline", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).ListByClinic(context.Background(), "C1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
