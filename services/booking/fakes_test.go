package booking

import (
	"context"
	"sync"

	"medibook/models"
)

// fakeStore is an in-memory AppointmentStore recording calls for assertions.
type fakeStore struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment

	createCalls     int
	lastCreate      models.CreateAppointmentRequest
	lastReschedule  models.RescheduleRequest
	createErr       error
	listErr         error
	rescheduleErr   error
	updateStatusErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeStore) put(appt *models.Appointment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments[appt.ID] = appt
}

func (f *fakeStore) Create(_ context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.lastCreate = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt := &models.Appointment{
		ID:              req.AppointmentID,
		ClinicID:        req.ClinicID,
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentDate: req.AppointmentDate,
		Status:          models.AppointmentStatus(req.Status),
		ConsultationFee: req.ConsultationFee,
		Discount:        req.Discount,
		Type:            req.Type,
		PaymentMethod:   req.PaymentMethod,
		Remarks:         req.Remarks,
	}
	f.appointments[appt.ID] = appt
	return appt, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id string, status models.AppointmentStatus, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	if appt, ok := f.appointments[id]; ok {
		appt.Status = status
		appt.CancellationReason = reason
	}
	return nil
}

func (f *fakeStore) Reschedule(_ context.Context, req models.RescheduleRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastReschedule = req
	if f.rescheduleErr != nil {
		return f.rescheduleErr
	}
	if appt, ok := f.appointments[req.AppointmentID]; ok {
		appt.AppointmentDate = req.Date
		appt.Status = models.AppointmentStatus(req.Status)
		appt.Version++
	}
	return nil
}

func (f *fakeStore) List(_ context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Appointment
	for _, appt := range f.appointments {
		if filter.PatientID != "" && appt.PatientID != filter.PatientID {
			continue
		}
		out = append(out, *appt)
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if appt, ok := f.appointments[id]; ok {
		copied := *appt
		return &copied, nil
	}
	return nil, ErrNotFound
}

// fakeDirectory serves a fixed roster.
type fakeDirectory struct {
	doctors []models.DoctorSummary
	err     error
}

func (f *fakeDirectory) ListByClinic(context.Context, string) ([]models.DoctorSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doctors, nil
}
