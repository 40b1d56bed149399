package authz

import (
	"github.com/caresuite/hms-portal/pkg/logger"
	"github.com/caresuite/hms-portal/pkg/monitoring"
	"github.com/caresuite/hms-portal/pkg/types"
)

// Engine evaluates role-based visibility over domain collections.
//
// Every filter shares one decision structure: a nil user sees nothing,
// an administrator sees the whole collection (same slice, callers must
// treat it as read-only), a doctor sees records they own via the
// ownership relation, and an auxiliary nurse sees either everything
// (triage-relevant entities) or nothing (clinical detail). Unknown
// roles see nothing. Filters never mutate their input and never return
// an error; malformed input degrades to an empty result so no caller
// path can widen visibility by accident.
type Engine struct {
	rel    *Ownership
	logger *logger.Logger
}

// NewEngine creates a filter engine over the given ownership relation
func NewEngine(rel *Ownership, log *logger.Logger) *Engine {
	return &Engine{rel: rel, logger: log}
}

// nurseVisibility classifies how much of an entity type an auxiliary
// nurse may see.
type nurseVisibility int

const (
	nurseNone nurseVisibility = iota
	nurseAll
)

func (e *Engine) record(user *types.User, kind EntityKind, shown, total int) {
	role := "none"
	if user != nil {
		role = string(user.Role)
	}
	decision := "filtered"
	switch {
	case shown == 0 && total > 0:
		decision = "denied"
	case shown == total:
		decision = "full"
	}
	monitoring.RecordAuthzDecision(role, string(kind), decision)
}

// filterOwned implements the shared decision structure. The keep
// predicate is only consulted on the doctor path.
func filterOwned[T any](e *Engine, user *types.User, kind EntityKind, collection []T, nurse nurseVisibility, ownedBy func(item T, user *types.User) bool) []T {
	if user == nil {
		e.record(user, kind, 0, len(collection))
		return []T{}
	}

	switch user.Role {
	case types.RoleAdministrator:
		e.record(user, kind, len(collection), len(collection))
		return collection

	case types.RoleDoctor:
		filtered := make([]T, 0, len(collection))
		for _, item := range collection {
			if ownedBy(item, user) {
				filtered = append(filtered, item)
			}
		}
		e.record(user, kind, len(filtered), len(collection))
		return filtered

	case types.RoleAuxiliaryNurse:
		if nurse == nurseAll {
			e.record(user, kind, len(collection), len(collection))
			return collection
		}
		e.record(user, kind, 0, len(collection))
		return []T{}

	default:
		// Fail closed for any role added without a filter update.
		e.record(user, kind, 0, len(collection))
		return []T{}
	}
}

// FilterPatients returns the patients visible to the user. Nurses get
// hospital-wide visibility for triage.
func (e *Engine) FilterPatients(user *types.User, patients []types.Patient) []types.Patient {
	return filterOwned(e, user, KindPatient, patients, nurseAll, func(p types.Patient, u *types.User) bool {
		return e.rel.ownedBy(KindPatient, p.ID, u)
	})
}

// FilterEMRs returns the EMR records visible to the user. Doctors see
// only records they authored; unassigned records are excluded for
// doctors and visible to administrators.
func (e *Engine) FilterEMRs(user *types.User, records []types.EMRRecord) []types.EMRRecord {
	return filterOwned(e, user, KindEMR, records, nurseNone, func(r types.EMRRecord, u *types.User) bool {
		return e.rel.ownedBy(KindEMR, r.ID, u)
	})
}

// FilterAppointments returns the appointments visible to the user.
// Nurses see the full schedule: the triage and scheduling workflow
// requires hospital-wide appointment visibility.
func (e *Engine) FilterAppointments(user *types.User, appointments []types.Appointment) []types.Appointment {
	return filterOwned(e, user, KindAppointment, appointments, nurseAll, func(a types.Appointment, u *types.User) bool {
		return e.rel.ownedBy(KindAppointment, a.ID, u)
	})
}

// FilterLabOrders returns the lab orders visible to the user
func (e *Engine) FilterLabOrders(user *types.User, orders []types.LabOrder) []types.LabOrder {
	return filterOwned(e, user, KindLabOrder, orders, nurseNone, func(o types.LabOrder, u *types.User) bool {
		return e.rel.ownedBy(KindLabOrder, o.ID, u)
	})
}

// FilterInpatients returns the admitted patients visible to the user
func (e *Engine) FilterInpatients(user *types.User, inpatients []types.Inpatient) []types.Inpatient {
	return filterOwned(e, user, KindInpatient, inpatients, nurseNone, func(i types.Inpatient, u *types.User) bool {
		return e.rel.ownedBy(KindInpatient, i.ID, u)
	})
}

// FilterConsultations returns the consultations visible to the user.
// Auxiliary nurses have no clinical-detail access.
func (e *Engine) FilterConsultations(user *types.User, consultations []types.Consultation) []types.Consultation {
	return filterOwned(e, user, KindConsultation, consultations, nurseNone, func(c types.Consultation, u *types.User) bool {
		return e.rel.ownedBy(KindConsultation, c.ID, u)
	})
}

// FilterLabResults returns the lab results visible to the user
func (e *Engine) FilterLabResults(user *types.User, results []types.LabResult) []types.LabResult {
	return filterOwned(e, user, KindLabResult, results, nurseNone, func(r types.LabResult, u *types.User) bool {
		return e.rel.ownedBy(KindLabResult, r.ID, u)
	})
}

// FilterRadiology returns the imaging studies visible to the user
func (e *Engine) FilterRadiology(user *types.User, studies []types.RadiologyStudy) []types.RadiologyStudy {
	return filterOwned(e, user, KindRadiology, studies, nurseNone, func(s types.RadiologyStudy, u *types.User) bool {
		return e.rel.ownedBy(KindRadiology, s.ID, u)
	})
}

// FilterBilling returns the billing records visible to the user.
// Financial data is denied to nurses, consistent with the activity
// feed's payment rule.
func (e *Engine) FilterBilling(user *types.User, records []types.BillingRecord) []types.BillingRecord {
	return filterOwned(e, user, KindBilling, records, nurseNone, func(b types.BillingRecord, u *types.User) bool {
		return e.rel.ownedBy(KindBilling, b.ID, u)
	})
}

// FilterEmergency returns the emergency cases visible to the user.
// Nurses see every case; triage is their primary workflow.
func (e *Engine) FilterEmergency(user *types.User, cases []types.EmergencyCase) []types.EmergencyCase {
	return filterOwned(e, user, KindEmergency, cases, nurseAll, func(c types.EmergencyCase, u *types.User) bool {
		return e.rel.ownedBy(KindEmergency, c.ID, u)
	})
}

// CanViewPatient reports whether the user may view a single patient
// record. Mirrors FilterPatients for one id.
func (e *Engine) CanViewPatient(user *types.User, patientID string) bool {
	granted := e.canViewPatient(user, patientID)
	role := "none"
	userID := ""
	if user != nil {
		role = string(user.Role)
		userID = user.ID
	}
	monitoring.RecordPHIAccess(role, "patient", granted)
	if !granted && e.logger != nil {
		e.logger.Security("patient_view_denied", userID, map[string]interface{}{
			"patient_id": patientID,
			"role":       role,
		})
	}
	return granted
}

func (e *Engine) canViewPatient(user *types.User, patientID string) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case types.RoleAdministrator:
		return true
	case types.RoleDoctor:
		return e.rel.IsPatientAssignedTo(patientID, user.ID)
	case types.RoleAuxiliaryNurse:
		return true
	default:
		return false
	}
}

// CanViewEMR reports whether the user may view a single EMR record
func (e *Engine) CanViewEMR(user *types.User, emrID string) bool {
	granted := e.canViewEMR(user, emrID)
	role := "none"
	if user != nil {
		role = string(user.Role)
	}
	monitoring.RecordPHIAccess(role, "emr", granted)
	return granted
}

func (e *Engine) canViewEMR(user *types.User, emrID string) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case types.RoleAdministrator:
		return true
	case types.RoleDoctor:
		return e.rel.IsEMRCreatedBy(emrID, user.ID)
	default:
		return false
	}
}
