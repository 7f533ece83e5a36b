package models

// WizardStep identifies one step of the guided booking flow.
type WizardStep string

const (
	StepSpecialty WizardStep = "specialty"
	StepDate      WizardStep = "date"
	StepDoctor    WizardStep = "doctor"
	StepTime      WizardStep = "time"
	StepDetails   WizardStep = "details"
	StepConfirm   WizardStep = "confirm"
)

// CanonicalLayout is the full six-step booking flow.
var CanonicalLayout = []WizardStep{
	StepSpecialty, StepDate, StepDoctor, StepTime, StepDetails, StepConfirm,
}

// CompactLayout is the reduced four-step variant used for quick rebooking.
// It runs on the same machine and the same validation gates.
var CompactLayout = []WizardStep{
	StepDate, StepTime, StepConfirm, StepDetails,
}

// AppointmentDraft is the in-progress, unsaved booking form state. It is
// mutated across wizard steps and either discarded with the session or
// converted into a CreateAppointmentRequest on submit.
type AppointmentDraft struct {
	SpecialtyFilter string `json:"specialtyFilter,omitempty"`
	AppointmentType string `json:"appointmentType,omitempty"`
	Date            string `json:"date,omitempty"` // "2006-01-02"
	Time            string `json:"time,omitempty"` // "15:04"
	DoctorID        string `json:"doctorId,omitempty"`
	Notes           string `json:"notes,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
}

// Submittable reports whether the draft carries everything a create call
// needs: doctor, date, time, and appointment type.
func (d AppointmentDraft) Submittable() bool {
	return d.DoctorID != "" && d.Date != "" && d.Time != "" && d.AppointmentType != ""
}

// WizardState holds one booking session between steps. It is JSON-marshalled
// into the session cache and threaded through controller operations as an
// explicit value, never shared mutable state.
type WizardState struct {
	SessionID string       `json:"sessionId"`
	ClinicID  string       `json:"clinicId"`
	PatientID string       `json:"patientId"`
	Layout    []WizardStep `json:"layout"`
	StepIndex int          `json:"stepIndex"`

	Draft AppointmentDraft `json:"draft"`

	// Doctors is the roster fetched from the directory when clinic context was
	// set; FilteredDoctors is the subset matching the specialty filter.
	Doctors         []DoctorSummary `json:"doctors,omitempty"`
	FilteredDoctors []DoctorSummary `json:"filteredDoctors,omitempty"`

	// DoctorSnapshot is retained at selection time so the confirmation step can
	// show fee and specialty even if the roster has since changed.
	DoctorSnapshot *DoctorSummary `json:"doctorSnapshot,omitempty"`

	// DirectoryDegraded marks that the roster fetch failed. Navigation through
	// steps that need no directory data stays possible.
	DirectoryDegraded bool `json:"directoryDegraded,omitempty"`
}

// CurrentStep returns the step the session is on.
func (w *WizardState) CurrentStep() WizardStep {
	if len(w.Layout) == 0 {
		return StepConfirm
	}
	idx := w.StepIndex
	if idx < 0 {
		idx = 0
	}
	if idx >= len(w.Layout) {
		idx = len(w.Layout) - 1
	}
	return w.Layout[idx]
}

// StepComplete reports whether the required field for the given step is set.
// Confirm has no field of its own; it gates on overall submittability.
func (w *WizardState) StepComplete(step WizardStep) bool {
	switch step {
	case StepSpecialty:
		return w.Draft.SpecialtyFilter != ""
	case StepDate:
		return w.Draft.Date != ""
	case StepDoctor:
		return w.Draft.DoctorID != ""
	case StepTime:
		return w.Draft.Time != ""
	case StepDetails:
		// Notes and payment method are optional; details never blocks.
		return true
	case StepConfirm:
		return w.Draft.Submittable()
	default:
		return false
	}
}
