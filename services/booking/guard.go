package booking

import (
	"context"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// DuplicateBookingGuard is the advisory precondition that a patient should
// hold at most one Pending appointment per clinic. It is deliberately
// fail-open: the store is the authority, and a listing outage must not block
// booking outright.
type DuplicateBookingGuard struct {
	Store AppointmentStore
}

// CheckExisting returns true iff the patient already has a Pending appointment
// at the given clinic. Fetch failures are logged and reported as false.
func (g *DuplicateBookingGuard) CheckExisting(ctx context.Context, patientID, clinicID string) bool {
	appointments, err := g.Store.List(ctx, models.AppointmentFilter{PatientID: patientID})
	if err != nil {
		utils.GetLogger().Warn("duplicate-booking check failed, allowing submit",
			zap.String("patientID", patientID), zap.String("clinicID", clinicID), zap.Error(err))
		return false
	}
	for _, appt := range appointments {
		if appt.ClinicID == clinicID && appt.Status == models.StatusPending {
			return true
		}
	}
	return false
}
