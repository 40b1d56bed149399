package authz

import "github.com/caresuite/hms-portal/pkg/types"

// triageEventTypes are the activity types auxiliary nurses may see
var triageEventTypes = map[types.ActivityType]bool{
	types.ActivityTriage:      true,
	types.ActivityAdmission:   true,
	types.ActivityScheduling:  true,
	types.ActivityAppointment: true,
}

// hospitalWideEventTypes pass for a doctor when the event carries no
// department at all (hospital-wide announcements).
var hospitalWideEventTypes = map[types.ActivityType]bool{
	types.ActivityPatient:     true,
	types.ActivityTriage:      true,
	types.ActivityAppointment: true,
	types.ActivityScheduling:  true,
	types.ActivityAdmission:   true,
}

// FilterActivity returns the activity feed items visible to the user
func (e *Engine) FilterActivity(user *types.User, events []types.ActivityEvent) []types.ActivityEvent {
	if user == nil {
		return []types.ActivityEvent{}
	}
	filtered := make([]types.ActivityEvent, 0, len(events))
	for _, event := range events {
		if e.CanViewActivity(user, event) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// CanViewActivity decides whether a single activity event is visible
// to the user.
//
// The rule order is load-bearing: the payment check runs before any
// department or doctor match. A payment event must never pass the
// generic department-match path for a non-administrator.
func (e *Engine) CanViewActivity(user *types.User, event types.ActivityEvent) bool {
	if user == nil {
		return false
	}

	if user.Role == types.RoleAdministrator {
		return true
	}

	// Financial events are administrator-only, unconditionally.
	if event.Type == types.ActivityPayment {
		return false
	}

	switch user.Role {
	case types.RoleDoctor:
		if event.Department != "" && event.Department == user.Department {
			return true
		}
		if event.DoctorID != "" && event.DoctorID == user.ID {
			return true
		}
		if hospitalWideEventTypes[event.Type] {
			return event.Department == "" || event.Department == user.Department
		}
		if event.Type == types.ActivityLab {
			// Lab events require a department match; two empty
			// departments are not a match.
			return event.Department != "" && event.Department == user.Department
		}
		return false

	case types.RoleAuxiliaryNurse:
		return triageEventTypes[event.Type]

	default:
		return false
	}
}
