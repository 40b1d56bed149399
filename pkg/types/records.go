package types

import "time"

// PatientStatus represents patient status values
type PatientStatus string

const (
	PatientActive     PatientStatus = "active"
	PatientAdmitted   PatientStatus = "admitted"
	PatientDischarged PatientStatus = "discharged"
	PatientDeceased   PatientStatus = "deceased"
)

// Patient represents patient demographic information. The treating
// doctor is not stored on the record; ownership lives in the
// authorization layer's assignment relation.
type Patient struct {
	ID                string        `json:"id"`
	MRN               string        `json:"mrn"` // Medical Record Number
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	DateOfBirth       time.Time     `json:"date_of_birth"`
	Gender            string        `json:"gender"`
	Phone             string        `json:"phone"`
	Allergies         []string      `json:"allergies"`
	ChronicConditions []string      `json:"chronic_conditions"`
	Status            PatientStatus `json:"status"`
	RegistrationDate  time.Time     `json:"registration_date"`
}

// EMRRecord represents a clinical encounter document. Like Patient,
// the authoring doctor is tracked in the assignment relation, not on
// the record itself.
type EMRRecord struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	VisitDate time.Time `json:"visit_date"`
	Diagnosis string    `json:"diagnosis"`
	Treatment string    `json:"treatment"`
	Notes     string    `json:"notes"`
}

// AppointmentStatus represents appointment status values
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a scheduled appointment. DoctorID is carried
// inline; the seeder mirrors it into the assignment relation so that
// every filter works off the same ownership source.
type Appointment struct {
	ID         string            `json:"id"`
	PatientID  string            `json:"patient_id"`
	DoctorID   string            `json:"doctor_id"`
	Department string            `json:"department"`
	Date       time.Time         `json:"date"`
	Status     AppointmentStatus `json:"status"`
	Type       string            `json:"type"`
	Notes      string            `json:"notes,omitempty"`
}

// LabOrder represents a lab test ordered by a doctor
type LabOrder struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	TestName  string    `json:"test_name"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	OrderedAt time.Time `json:"ordered_at"`
}

// LabResult represents a reported lab test result
type LabResult struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	PatientID  string    `json:"patient_id"`
	DoctorID   string    `json:"doctor_id"`
	TestName   string    `json:"test_name"`
	Value      string    `json:"value"`
	Unit       string    `json:"unit"`
	RefRange   string    `json:"reference_range"`
	Flag       string    `json:"flag,omitempty"`
	ReportedAt time.Time `json:"reported_at"`
}

// Inpatient represents an admitted patient with a ward and bed
type Inpatient struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	AttendingID string    `json:"attending_id"`
	Ward        string    `json:"ward"`
	Bed         string    `json:"bed"`
	AdmittedAt  time.Time `json:"admitted_at"`
	Status      string    `json:"status"`
}

// Consultation represents a completed consultation encounter
type Consultation struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	DoctorID   string    `json:"doctor_id"`
	Department string    `json:"department"`
	Date       time.Time `json:"date"`
	Reason     string    `json:"reason"`
	Notes      string    `json:"notes,omitempty"`
}

// RadiologyStudy represents an imaging study and its impression
type RadiologyStudy struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	Modality    string    `json:"modality"`
	BodyPart    string    `json:"body_part"`
	Impression  string    `json:"impression"`
	PerformedAt time.Time `json:"performed_at"`
}

// BillingRecord represents an invoice issued to a patient
type BillingRecord struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	IssuedAt  time.Time `json:"issued_at"`
}

// EmergencyCase represents a patient in the emergency department
type EmergencyCase struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Severity  string    `json:"severity"`
	Complaint string    `json:"complaint"`
	ArrivedAt time.Time `json:"arrived_at"`
	Status    string    `json:"status"`
}
