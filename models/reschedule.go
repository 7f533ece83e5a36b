package models

// RescheduleSession holds context between slot selection and the reschedule
// commit. Original is the appointment snapshot taken at session start; Version
// is the aggregate version observed then, carried into the commit to detect
// concurrent modification.
type RescheduleSession struct {
	SessionID string      `json:"sessionId"`
	Original  Appointment `json:"original"`
	Version   int64       `json:"version"`
	NewDate   string      `json:"newDate,omitempty"`
	NewTime   string      `json:"newTime,omitempty"`
}

// ReschedulePreview composes the confirmation view before commit.
type ReschedulePreview struct {
	Original        Appointment       `json:"original"`
	NewDate         string            `json:"newDate"`
	NewTime         string            `json:"newTime"`
	ResultingStatus AppointmentStatus `json:"resultingStatus"`
	StatusLabel     string            `json:"statusLabel"`
}
