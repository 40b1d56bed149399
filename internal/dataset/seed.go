package dataset

import (
	"time"

	"github.com/caresuite/hms-portal/internal/authz"
	"github.com/caresuite/hms-portal/pkg/types"
)

// Dataset holds every seeded collection the portal serves. All fields
// are populated once by Seed and treated as read-only afterwards; the
// filters hand out views over these slices, never copies.
type Dataset struct {
	Patients         []types.Patient
	EMRRecords       []types.EMRRecord
	Appointments     []types.Appointment
	LabOrders        []types.LabOrder
	Inpatients       []types.Inpatient
	Consultations    []types.Consultation
	LabResults       []types.LabResult
	RadiologyStudies []types.RadiologyStudy
	BillingRecords   []types.BillingRecord
	EmergencyCases   []types.EmergencyCase
	Activities       []types.ActivityEvent
	Doctors          []types.DoctorAvailability

	// GlobalSummary is the administrator dashboard, served verbatim.
	GlobalSummary types.DashboardStats

	PatientVisits          []types.ChartPoint
	Revenue                []types.ChartPoint
	DepartmentDistribution []types.ChartPoint

	// Assignment tables. PatientDoctorAssignments maps patient id to
	// the single primary doctor; PatientDepartments carries the
	// ordered department set for patients seen by multiple
	// specialties.
	PatientDoctorAssignments map[string]string
	PatientDepartments       map[string][]string
	EMRDoctorAssignments     map[string]string
	EMRDepartments           map[string]string
}

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// Seed builds the fixture dataset. Callers inject the result into the
// authorization engine and dashboard service so tests can substitute
// their own fixtures.
func Seed() *Dataset {
	d := &Dataset{
		Patients: []types.Patient{
			{ID: "p-001", MRN: "MRN-10234", FirstName: "Alice", LastName: "Morgan", DateOfBirth: date(1958, time.June, 12, 0, 0), Gender: "female", Phone: "+1-555-0101", Allergies: []string{"penicillin"}, ChronicConditions: []string{"hypertension", "atrial fibrillation"}, Status: types.PatientActive, RegistrationDate: date(2023, time.January, 9, 0, 0)},
			{ID: "p-002", MRN: "MRN-10241", FirstName: "Bruno", LastName: "Silva", DateOfBirth: date(1979, time.March, 3, 0, 0), Gender: "male", Phone: "+1-555-0102", Allergies: nil, ChronicConditions: []string{"type 2 diabetes"}, Status: types.PatientActive, RegistrationDate: date(2023, time.April, 22, 0, 0)},
			{ID: "p-003", MRN: "MRN-10267", FirstName: "Chen", LastName: "Wei", DateOfBirth: date(1964, time.November, 28, 0, 0), Gender: "male", Phone: "+1-555-0103", Allergies: []string{"aspirin", "latex"}, ChronicConditions: []string{"coronary artery disease", "migraine"}, Status: types.PatientAdmitted, RegistrationDate: date(2022, time.September, 14, 0, 0)},
			{ID: "p-004", MRN: "MRN-10290", FirstName: "Dalia", LastName: "Hassan", DateOfBirth: date(2016, time.February, 19, 0, 0), Gender: "female", Phone: "+1-555-0104", Allergies: []string{"peanuts"}, ChronicConditions: []string{"asthma"}, Status: types.PatientActive, RegistrationDate: date(2024, time.May, 2, 0, 0)},
			{ID: "p-005", MRN: "MRN-10311", FirstName: "Erik", LastName: "Lindqvist", DateOfBirth: date(1990, time.July, 7, 0, 0), Gender: "male", Phone: "+1-555-0105", Allergies: nil, ChronicConditions: nil, Status: types.PatientAdmitted, RegistrationDate: date(2024, time.November, 30, 0, 0)},
			{ID: "p-006", MRN: "MRN-10329", FirstName: "Fatima", LastName: "Diallo", DateOfBirth: date(1947, time.December, 1, 0, 0), Gender: "female", Phone: "+1-555-0106", Allergies: []string{"sulfa drugs"}, ChronicConditions: []string{"osteoarthritis", "hypothyroidism"}, Status: types.PatientActive, RegistrationDate: date(2021, time.August, 17, 0, 0)},
			{ID: "p-007", MRN: "MRN-10345", FirstName: "Goran", LastName: "Novak", DateOfBirth: date(1971, time.October, 23, 0, 0), Gender: "male", Phone: "+1-555-0107", Allergies: nil, ChronicConditions: []string{"epilepsy"}, Status: types.PatientActive, RegistrationDate: date(2023, time.June, 6, 0, 0)},
			// p-008 deliberately has no doctor assignment and no
			// department mapping.
			{ID: "p-008", MRN: "MRN-10360", FirstName: "Hana", LastName: "Kim", DateOfBirth: date(1999, time.April, 15, 0, 0), Gender: "female", Phone: "+1-555-0108", Allergies: nil, ChronicConditions: nil, Status: types.PatientActive, RegistrationDate: date(2025, time.January, 20, 0, 0)},
		},

		EMRRecords: []types.EMRRecord{
			{ID: "e-001", PatientID: "p-001", VisitDate: date(2025, time.February, 11, 10, 0), Diagnosis: "Paroxysmal atrial fibrillation", Treatment: "Rate control, anticoagulation", Notes: "Holter monitoring scheduled"},
			{ID: "e-002", PatientID: "p-002", VisitDate: date(2025, time.February, 18, 14, 30), Diagnosis: "Type 2 diabetes, suboptimal control", Treatment: "Metformin dose increase", Notes: "HbA1c 8.1%"},
			{ID: "e-003", PatientID: "p-003", VisitDate: date(2025, time.March, 2, 9, 15), Diagnosis: "Unstable angina", Treatment: "Admitted for catheterization", Notes: ""},
			{ID: "e-004", PatientID: "p-004", VisitDate: date(2025, time.March, 4, 11, 0), Diagnosis: "Asthma exacerbation", Treatment: "Nebulized salbutamol, short steroid course", Notes: "Triggered by viral URTI"},
			{ID: "e-005", PatientID: "p-007", VisitDate: date(2025, time.March, 6, 16, 45), Diagnosis: "Breakthrough seizure", Treatment: "Levetiracetam level check", Notes: "Medication adherence reviewed"},
			// e-006 has no author assignment; visible to
			// administrators only.
			{ID: "e-006", PatientID: "p-008", VisitDate: date(2025, time.March, 8, 8, 30), Diagnosis: "New patient intake", Treatment: "", Notes: "Imported from referral, author pending"},
		},

		Appointments: []types.Appointment{
			{ID: "a-001", PatientID: "p-001", DoctorID: "d-001", Department: "Cardiology", Date: date(2025, time.March, 10, 9, 30), Status: types.AppointmentConfirmed, Type: "follow_up"},
			{ID: "a-002", PatientID: "p-002", DoctorID: "d-002", Department: "General Medicine", Date: date(2025, time.March, 10, 10, 0), Status: types.AppointmentScheduled, Type: "consultation"},
			{ID: "a-003", PatientID: "p-003", DoctorID: "d-001", Department: "Cardiology", Date: date(2025, time.March, 10, 11, 30), Status: types.AppointmentConfirmed, Type: "procedure", Notes: "Pre-cath assessment"},
			{ID: "a-004", PatientID: "p-004", DoctorID: "d-003", Department: "Pediatrics", Date: date(2025, time.March, 11, 9, 0), Status: types.AppointmentScheduled, Type: "follow_up"},
			{ID: "a-005", PatientID: "p-006", DoctorID: "d-004", Department: "Orthopedics", Date: date(2025, time.March, 13, 14, 0), Status: types.AppointmentScheduled, Type: "consultation"},
			{ID: "a-006", PatientID: "p-007", DoctorID: "d-005", Department: "Neurology", Date: date(2025, time.March, 12, 15, 30), Status: types.AppointmentCancelled, Type: "follow_up"},
		},

		LabOrders: []types.LabOrder{
			{ID: "lo-001", PatientID: "p-001", DoctorID: "d-001", TestName: "INR", Priority: "routine", Status: "pending", OrderedAt: date(2025, time.March, 9, 8, 0)},
			{ID: "lo-002", PatientID: "p-002", DoctorID: "d-002", TestName: "HbA1c", Priority: "routine", Status: "collected", OrderedAt: date(2025, time.March, 8, 9, 30)},
			{ID: "lo-003", PatientID: "p-003", DoctorID: "d-001", TestName: "Troponin I", Priority: "stat", Status: "reported", OrderedAt: date(2025, time.March, 2, 9, 40)},
			{ID: "lo-004", PatientID: "p-007", DoctorID: "d-005", TestName: "Levetiracetam level", Priority: "urgent", Status: "pending", OrderedAt: date(2025, time.March, 6, 17, 0)},
		},

		Inpatients: []types.Inpatient{
			{ID: "ip-001", PatientID: "p-003", AttendingID: "d-001", Ward: "CCU", Bed: "CCU-04", AdmittedAt: date(2025, time.March, 2, 12, 0), Status: "stable"},
			{ID: "ip-002", PatientID: "p-005", AttendingID: "d-004", Ward: "Orthopedics", Bed: "OR-12", AdmittedAt: date(2025, time.March, 7, 18, 20), Status: "post-op"},
		},

		Consultations: []types.Consultation{
			{ID: "c-001", PatientID: "p-001", DoctorID: "d-001", Department: "Cardiology", Date: date(2025, time.February, 11, 10, 0), Reason: "Palpitations"},
			{ID: "c-002", PatientID: "p-002", DoctorID: "d-002", Department: "General Medicine", Date: date(2025, time.February, 18, 14, 30), Reason: "Diabetes review"},
			{ID: "c-003", PatientID: "p-006", DoctorID: "d-004", Department: "Orthopedics", Date: date(2025, time.February, 25, 11, 15), Reason: "Knee pain"},
		},

		LabResults: []types.LabResult{
			{ID: "lr-001", OrderID: "lo-003", PatientID: "p-003", DoctorID: "d-001", TestName: "Troponin I", Value: "1.8", Unit: "ng/mL", RefRange: "< 0.04", Flag: "high", ReportedAt: date(2025, time.March, 2, 11, 5)},
			{ID: "lr-002", OrderID: "lo-002", PatientID: "p-002", DoctorID: "d-002", TestName: "HbA1c", Value: "8.1", Unit: "%", RefRange: "4.0-5.6", Flag: "high", ReportedAt: date(2025, time.March, 9, 13, 0)},
		},

		RadiologyStudies: []types.RadiologyStudy{
			{ID: "r-001", PatientID: "p-003", DoctorID: "d-001", Modality: "XA", BodyPart: "Coronary arteries", Impression: "90% proximal LAD stenosis", PerformedAt: date(2025, time.March, 3, 10, 30)},
			{ID: "r-002", PatientID: "p-006", DoctorID: "d-004", Modality: "XR", BodyPart: "Right knee", Impression: "Moderate medial compartment narrowing", PerformedAt: date(2025, time.February, 25, 12, 0)},
		},

		BillingRecords: []types.BillingRecord{
			{ID: "b-001", PatientID: "p-001", DoctorID: "d-001", Amount: 320.00, Currency: "USD", Status: "paid", IssuedAt: date(2025, time.February, 12, 0, 0)},
			{ID: "b-002", PatientID: "p-003", DoctorID: "d-001", Amount: 8450.00, Currency: "USD", Status: "pending", IssuedAt: date(2025, time.March, 4, 0, 0)},
			{ID: "b-003", PatientID: "p-006", DoctorID: "d-004", Amount: 190.00, Currency: "USD", Status: "paid", IssuedAt: date(2025, time.February, 26, 0, 0)},
		},

		EmergencyCases: []types.EmergencyCase{
			{ID: "em-001", PatientID: "p-005", Severity: "urgent", Complaint: "Open tibia fracture", ArrivedAt: date(2025, time.March, 7, 17, 40), Status: "admitted"},
			{ID: "em-002", PatientID: "p-008", Severity: "semi-urgent", Complaint: "Laceration, left forearm", ArrivedAt: date(2025, time.March, 9, 22, 10), Status: "waiting"},
		},

		Activities: []types.ActivityEvent{
			{ID: "act-001", Type: types.ActivityAppointment, Department: "Cardiology", DoctorID: "d-001", Message: "Appointment confirmed for Alice Morgan", Timestamp: date(2025, time.March, 9, 9, 0)},
			{ID: "act-002", Type: types.ActivityAdmission, Message: "Erik Lindqvist admitted from ED", Timestamp: date(2025, time.March, 7, 18, 25)},
			{ID: "act-003", Type: types.ActivityPayment, Department: "Cardiology", Message: "Invoice b-001 settled", Timestamp: date(2025, time.March, 8, 12, 0)},
			{ID: "act-004", Type: types.ActivityLab, Department: "General Medicine", Message: "HbA1c result reported for Bruno Silva", Timestamp: date(2025, time.March, 9, 13, 5)},
			{ID: "act-005", Type: types.ActivityTriage, Message: "Hana Kim triaged, semi-urgent", Timestamp: date(2025, time.March, 9, 22, 15)},
			{ID: "act-006", Type: types.ActivityPatient, Department: "Neurology", DoctorID: "d-005", Message: "Care plan updated for Goran Novak", Timestamp: date(2025, time.March, 9, 16, 30)},
		},

		Doctors: []types.DoctorAvailability{
			{DoctorID: "d-001", Name: "Dr. Sarah Chen", Department: "Cardiology", AvailableDays: []string{"Monday", "Wednesday", "Friday"}, TimeSlots: []string{"09:00", "09:30", "10:00", "11:00", "11:30"}},
			{DoctorID: "d-002", Name: "Dr. James Okafor", Department: "General Medicine", AvailableDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, TimeSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00"}},
			{DoctorID: "d-003", Name: "Dr. Priya Nair", Department: "Pediatrics", AvailableDays: []string{"Tuesday", "Thursday", "Saturday"}, TimeSlots: []string{"09:00", "09:30", "10:30", "11:30"}},
			{DoctorID: "d-004", Name: "Dr. Omar Haddad", Department: "Orthopedics", AvailableDays: []string{"Monday", "Tuesday", "Thursday"}, TimeSlots: []string{"10:00", "11:00", "14:00", "14:30"}},
			{DoctorID: "d-005", Name: "Dr. Elena Petrova", Department: "Neurology", AvailableDays: []string{"Wednesday", "Friday"}, TimeSlots: []string{"13:00", "13:30", "14:30", "15:30"}},
		},

		GlobalSummary: types.DashboardStats{
			TotalPatients:     8,
			TotalAppointments: 6,
			TodayAppointments: 3,
			AdmittedPatients:  2,
			AvailableDoctors:  3,
			PendingEMRs:       14,
			LabOrders:         21,
			MonthlyRevenue:    48250,
		},

		PatientVisits: []types.ChartPoint{
			{Label: "Jan", Value: 410}, {Label: "Feb", Value: 385},
			{Label: "Mar", Value: 442}, {Label: "Apr", Value: 398},
			{Label: "May", Value: 455}, {Label: "Jun", Value: 430},
		},
		Revenue: []types.ChartPoint{
			{Label: "Jan", Value: 44200}, {Label: "Feb", Value: 41800},
			{Label: "Mar", Value: 48250}, {Label: "Apr", Value: 45100},
			{Label: "May", Value: 50300}, {Label: "Jun", Value: 47600},
		},
		DepartmentDistribution: []types.ChartPoint{
			{Label: "General Medicine", Value: 38}, {Label: "Cardiology", Value: 24},
			{Label: "Pediatrics", Value: 17}, {Label: "Orthopedics", Value: 12},
			{Label: "Neurology", Value: 9},
		},

		PatientDoctorAssignments: map[string]string{
			"p-001": "d-001",
			"p-002": "d-002",
			"p-003": "d-001",
			"p-004": "d-003",
			"p-005": "d-004",
			"p-006": "d-004",
			"p-007": "d-005",
		},
		PatientDepartments: map[string][]string{
			"p-001": {"Cardiology"},
			"p-002": {"General Medicine"},
			"p-003": {"Cardiology", "Neurology"},
			"p-004": {"Pediatrics"},
			"p-005": {"Orthopedics", "General Medicine"},
			"p-006": {"Orthopedics"},
			"p-007": {"Neurology"},
		},
		EMRDoctorAssignments: map[string]string{
			"e-001": "d-001",
			"e-002": "d-002",
			"e-003": "d-001",
			"e-004": "d-003",
			"e-005": "d-005",
		},
		EMRDepartments: map[string]string{
			"e-001": "Cardiology",
			"e-002": "General Medicine",
			"e-003": "Cardiology",
			"e-004": "Pediatrics",
			"e-005": "Neurology",
		},
	}

	return d
}

// Ownership builds the authorization relation from the assignment
// tables plus the doctor ids carried inline on the remaining record
// types, so every filter consults a single source of truth.
func (d *Dataset) Ownership() *authz.Ownership {
	rel := authz.NewOwnership()

	for patientID, doctorID := range d.PatientDoctorAssignments {
		rel.Assign(authz.KindPatient, patientID, doctorID)
	}
	for patientID, departments := range d.PatientDepartments {
		rel.SetPatientDepartments(patientID, departments...)
	}
	for emrID, doctorID := range d.EMRDoctorAssignments {
		rel.Assign(authz.KindEMR, emrID, doctorID)
	}
	for emrID, department := range d.EMRDepartments {
		rel.SetEMRDepartment(emrID, department)
	}

	for _, a := range d.Appointments {
		rel.Assign(authz.KindAppointment, a.ID, a.DoctorID)
	}
	for _, o := range d.LabOrders {
		rel.Assign(authz.KindLabOrder, o.ID, o.DoctorID)
	}
	for _, i := range d.Inpatients {
		rel.Assign(authz.KindInpatient, i.ID, i.AttendingID)
	}
	for _, c := range d.Consultations {
		rel.Assign(authz.KindConsultation, c.ID, c.DoctorID)
	}
	for _, r := range d.LabResults {
		rel.Assign(authz.KindLabResult, r.ID, r.DoctorID)
	}
	for _, s := range d.RadiologyStudies {
		rel.Assign(authz.KindRadiology, s.ID, s.DoctorID)
	}
	for _, b := range d.BillingRecords {
		rel.Assign(authz.KindBilling, b.ID, b.DoctorID)
	}
	// Emergency cases carry no doctor; they stay unowned and are
	// visible hospital-wide to nurses and administrators only.

	return rel
}
