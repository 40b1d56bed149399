package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/hms-portal/internal/authz"
	"github.com/caresuite/hms-portal/pkg/types"
)

func TestSeed_AssignmentsReferenceKnownRecords(t *testing.T) {
	d := Seed()

	patientIDs := make(map[string]bool)
	for _, p := range d.Patients {
		patientIDs[p.ID] = true
	}
	doctorIDs := make(map[string]bool)
	for _, doc := range d.Doctors {
		doctorIDs[doc.DoctorID] = true
	}
	emrIDs := make(map[string]bool)
	for _, e := range d.EMRRecords {
		emrIDs[e.ID] = true
	}

	for patientID, doctorID := range d.PatientDoctorAssignments {
		assert.True(t, patientIDs[patientID], "assignment references unknown patient %s", patientID)
		assert.True(t, doctorIDs[doctorID], "assignment references unknown doctor %s", doctorID)
	}
	for emrID, doctorID := range d.EMRDoctorAssignments {
		assert.True(t, emrIDs[emrID], "assignment references unknown EMR %s", emrID)
		assert.True(t, doctorIDs[doctorID], "assignment references unknown doctor %s", doctorID)
	}
	for _, a := range d.Appointments {
		assert.True(t, doctorIDs[a.DoctorID], "appointment %s references unknown doctor", a.ID)
		assert.True(t, patientIDs[a.PatientID], "appointment %s references unknown patient", a.ID)
	}
}

func TestSeed_ContainsUnassignedRecords(t *testing.T) {
	d := Seed()

	// An unassigned patient and EMR record must exist so the
	// doctor-exclusion path stays exercised end to end.
	_, assigned := d.PatientDoctorAssignments["p-008"]
	assert.False(t, assigned)
	_, authored := d.EMRDoctorAssignments["e-006"]
	assert.False(t, authored)
}

func TestSeed_SinglePaymentActivity(t *testing.T) {
	d := Seed()

	payments := 0
	for _, event := range d.Activities {
		if event.Type == types.ActivityPayment {
			payments++
		}
	}
	assert.Equal(t, 1, payments)
	assert.Len(t, d.Activities, 6)
}

func TestOwnership_MirrorsInlineDoctorIDs(t *testing.T) {
	d := Seed()
	rel := d.Ownership()

	for _, a := range d.Appointments {
		owner, ok := rel.OwnerOf(authz.KindAppointment, a.ID)
		require.True(t, ok, "appointment %s missing from ownership relation", a.ID)
		assert.Equal(t, a.DoctorID, owner)
	}
	for _, b := range d.BillingRecords {
		owner, ok := rel.OwnerOf(authz.KindBilling, b.ID)
		require.True(t, ok)
		assert.Equal(t, b.DoctorID, owner)
	}
	for _, c := range d.EmergencyCases {
		_, ok := rel.OwnerOf(authz.KindEmergency, c.ID)
		assert.False(t, ok, "emergency cases are unowned")
	}
}

func TestOwnership_PatientDepartments(t *testing.T) {
	rel := Seed().Ownership()

	assert.Equal(t, []string{"Cardiology", "Neurology"}, rel.DepartmentsForPatient("p-003"))
	assert.Equal(t, authz.DefaultDepartment, rel.DepartmentForPatient("p-008"))
}
