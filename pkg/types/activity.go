package types

import "time"

// ActivityType represents the kind of event shown in the activity feed
type ActivityType string

const (
	ActivityAppointment ActivityType = "appointment"
	ActivityAdmission   ActivityType = "admission"
	ActivityPayment     ActivityType = "payment"
	ActivityLab         ActivityType = "lab"
	ActivityPatient     ActivityType = "patient"
	ActivityTriage      ActivityType = "triage"
	ActivityScheduling  ActivityType = "scheduling"
)

// ActivityEvent represents an ephemeral activity feed item. Department
// and DoctorID are optional metadata; an empty department marks a
// hospital-wide event.
type ActivityEvent struct {
	ID         string       `json:"id"`
	Type       ActivityType `json:"type"`
	Department string       `json:"department,omitempty"`
	DoctorID   string       `json:"doctor_id,omitempty"`
	Message    string       `json:"message"`
	Timestamp  time.Time    `json:"timestamp"`
}
