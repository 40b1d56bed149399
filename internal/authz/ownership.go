package authz

import "github.com/caresuite/hms-portal/pkg/types"

// EntityKind identifies the record type an ownership entry refers to
type EntityKind string

const (
	KindPatient      EntityKind = "patient"
	KindEMR          EntityKind = "emr"
	KindAppointment  EntityKind = "appointment"
	KindLabOrder     EntityKind = "lab_order"
	KindInpatient    EntityKind = "inpatient"
	KindConsultation EntityKind = "consultation"
	KindLabResult    EntityKind = "lab_result"
	KindRadiology    EntityKind = "radiology"
	KindBilling      EntityKind = "billing"
	KindEmergency    EntityKind = "emergency"
)

// DefaultDepartment is returned for patients and EMR records with no
// department mapping. An unmapped lookup is a policy default, not an
// error.
const DefaultDepartment = "General Medicine"

type entityKey struct {
	kind EntityKind
	id   string
}

// Ownership is the single source of truth for who owns what. Every
// record type, whether the source record carries a doctor id inline or
// not, is registered here so the filters work off one relation.
//
// Reads are safe for concurrent use once seeding is complete; the
// relation is not mutated afterwards.
type Ownership struct {
	owners             map[entityKey]string
	patientDepartments map[string][]string
	emrDepartments     map[string]string
}

// NewOwnership creates an empty ownership relation
func NewOwnership() *Ownership {
	return &Ownership{
		owners:             make(map[entityKey]string),
		patientDepartments: make(map[string][]string),
		emrDepartments:     make(map[string]string),
	}
}

// Assign records the owning doctor for a record. A patient has at most
// one primary doctor; assigning again replaces the previous owner.
func (o *Ownership) Assign(kind EntityKind, id, doctorID string) {
	if id == "" || doctorID == "" {
		return
	}
	o.owners[entityKey{kind: kind, id: id}] = doctorID
}

// SetPatientDepartments records the ordered department set for a
// patient. The first entry is the primary department.
func (o *Ownership) SetPatientDepartments(patientID string, departments ...string) {
	if patientID == "" || len(departments) == 0 {
		return
	}
	o.patientDepartments[patientID] = departments
}

// SetEMRDepartment records the department an EMR record belongs to
func (o *Ownership) SetEMRDepartment(emrID, department string) {
	if emrID == "" || department == "" {
		return
	}
	o.emrDepartments[emrID] = department
}

// OwnerOf returns the owning doctor for a record. The second return is
// false when the record is unowned.
func (o *Ownership) OwnerOf(kind EntityKind, id string) (string, bool) {
	doctorID, ok := o.owners[entityKey{kind: kind, id: id}]
	return doctorID, ok
}

// DoctorForPatient returns the patient's primary doctor, if any
func (o *Ownership) DoctorForPatient(patientID string) (string, bool) {
	return o.OwnerOf(KindPatient, patientID)
}

// DoctorForEMR returns the doctor who authored the EMR record, if any
func (o *Ownership) DoctorForEMR(emrID string) (string, bool) {
	return o.OwnerOf(KindEMR, emrID)
}

// DepartmentForPatient returns the patient's primary department,
// falling back to DefaultDepartment when unmapped.
func (o *Ownership) DepartmentForPatient(patientID string) string {
	if departments, ok := o.patientDepartments[patientID]; ok && len(departments) > 0 {
		return departments[0]
	}
	return DefaultDepartment
}

// DepartmentsForPatient returns every department the patient is seen
// by. Unmapped patients get the default department as a single-element
// set.
func (o *Ownership) DepartmentsForPatient(patientID string) []string {
	if departments, ok := o.patientDepartments[patientID]; ok && len(departments) > 0 {
		return departments
	}
	return []string{DefaultDepartment}
}

// DepartmentForEMR returns the department an EMR record belongs to,
// with the same default-fallback policy as patients.
func (o *Ownership) DepartmentForEMR(emrID string) string {
	if department, ok := o.emrDepartments[emrID]; ok {
		return department
	}
	return DefaultDepartment
}

// IsPatientAssignedTo reports whether the doctor is the patient's
// primary doctor. Unassigned patients match no doctor.
func (o *Ownership) IsPatientAssignedTo(patientID, doctorID string) bool {
	owner, ok := o.DoctorForPatient(patientID)
	return ok && owner == doctorID
}

// IsPatientInDepartment reports whether the patient is seen by the
// given department
func (o *Ownership) IsPatientInDepartment(patientID, department string) bool {
	for _, d := range o.DepartmentsForPatient(patientID) {
		if d == department {
			return true
		}
	}
	return false
}

// IsEMRCreatedBy reports whether the doctor authored the EMR record
func (o *Ownership) IsEMRCreatedBy(emrID, doctorID string) bool {
	owner, ok := o.DoctorForEMR(emrID)
	return ok && owner == doctorID
}

// IsEMRInDepartment reports whether the EMR record belongs to the
// given department
func (o *Ownership) IsEMRInDepartment(emrID, department string) bool {
	return o.DepartmentForEMR(emrID) == department
}

// ownedBy is the generic doctor-scope predicate used by the filters
func (o *Ownership) ownedBy(kind EntityKind, id string, user *types.User) bool {
	owner, ok := o.OwnerOf(kind, id)
	return ok && owner == user.ID
}
