package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRelation() *Ownership {
	rel := NewOwnership()
	rel.Assign(KindPatient, "p1", "d1")
	rel.Assign(KindPatient, "p2", "d2")
	rel.Assign(KindPatient, "p3", "d1")
	rel.SetPatientDepartments("p1", "Cardiology")
	rel.SetPatientDepartments("p3", "Cardiology", "Neurology")
	rel.Assign(KindEMR, "e1", "d1")
	rel.Assign(KindEMR, "e2", "d2")
	rel.SetEMRDepartment("e1", "Cardiology")
	return rel
}

func TestDepartmentForPatient_Default(t *testing.T) {
	rel := newTestRelation()

	assert.Equal(t, DefaultDepartment, rel.DepartmentForPatient("nonexistent-id"))
	assert.Equal(t, "Cardiology", rel.DepartmentForPatient("p1"))
}

func TestDepartmentsForPatient(t *testing.T) {
	rel := newTestRelation()

	assert.Equal(t, []string{"Cardiology", "Neurology"}, rel.DepartmentsForPatient("p3"))
	assert.Equal(t, []string{"Cardiology"}, rel.DepartmentsForPatient("p1"))
	assert.Equal(t, []string{DefaultDepartment}, rel.DepartmentsForPatient("p2"))
}

func TestDepartmentForPatient_MultiDepartmentPrimary(t *testing.T) {
	rel := newTestRelation()

	// Primary department is the first entry of the multi-department set.
	assert.Equal(t, "Cardiology", rel.DepartmentForPatient("p3"))
}

func TestDepartmentForEMR_Default(t *testing.T) {
	rel := newTestRelation()

	assert.Equal(t, "Cardiology", rel.DepartmentForEMR("e1"))
	assert.Equal(t, DefaultDepartment, rel.DepartmentForEMR("e2"))
	assert.Equal(t, DefaultDepartment, rel.DepartmentForEMR("missing"))
}

func TestOwnershipPredicates(t *testing.T) {
	rel := newTestRelation()

	assert.True(t, rel.IsPatientAssignedTo("p1", "d1"))
	assert.False(t, rel.IsPatientAssignedTo("p1", "d2"))
	assert.False(t, rel.IsPatientAssignedTo("unassigned", "d1"))

	assert.True(t, rel.IsPatientInDepartment("p3", "Neurology"))
	assert.False(t, rel.IsPatientInDepartment("p1", "Neurology"))
	assert.True(t, rel.IsPatientInDepartment("p2", DefaultDepartment))

	assert.True(t, rel.IsEMRCreatedBy("e1", "d1"))
	assert.False(t, rel.IsEMRCreatedBy("e1", "d2"))
	assert.False(t, rel.IsEMRCreatedBy("missing", "d1"))

	assert.True(t, rel.IsEMRInDepartment("e1", "Cardiology"))
	assert.True(t, rel.IsEMRInDepartment("e2", DefaultDepartment))
}

func TestOwnerOf(t *testing.T) {
	rel := newTestRelation()

	owner, ok := rel.OwnerOf(KindPatient, "p2")
	assert.True(t, ok)
	assert.Equal(t, "d2", owner)

	_, ok = rel.OwnerOf(KindPatient, "p9")
	assert.False(t, ok)

	_, ok = rel.OwnerOf(KindAppointment, "p1")
	assert.False(t, ok, "ownership is keyed by entity kind")
}

func TestAssign_IgnoresEmptyKeys(t *testing.T) {
	rel := NewOwnership()
	rel.Assign(KindPatient, "", "d1")
	rel.Assign(KindPatient, "p1", "")

	_, ok := rel.OwnerOf(KindPatient, "p1")
	assert.False(t, ok)
	_, ok = rel.OwnerOf(KindPatient, "")
	assert.False(t, ok)
}
