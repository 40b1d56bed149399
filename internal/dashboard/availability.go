package dashboard

import (
	"strings"

	"github.com/caresuite/hms-portal/pkg/types"
)

// AvailableDoctors returns the doctors available today, matching the
// current weekday name against each doctor's availability list.
func (s *Service) AvailableDoctors() []types.DoctorAvailability {
	return s.AvailableDoctorsToday("")
}

// AvailableDoctorsToday returns the doctors available today in the
// given department, or hospital-wide when department is empty. "Today"
// comes from the service clock.
func (s *Service) AvailableDoctorsToday(department string) []types.DoctorAvailability {
	return s.AvailableDoctorsForDay(department, s.now().Weekday().String())
}

// AvailableDoctorsForDay returns the doctors available on the given
// weekday, optionally limited to a department. Day names match
// case-insensitively; an unknown day yields no doctors.
func (s *Service) AvailableDoctorsForDay(department, day string) []types.DoctorAvailability {
	available := make([]types.DoctorAvailability, 0, len(s.data.Doctors))
	for _, doc := range s.data.Doctors {
		if department != "" && !strings.EqualFold(doc.Department, department) {
			continue
		}
		if availableOn(doc, day) {
			available = append(available, doc)
		}
	}
	return available
}

func availableOn(doc types.DoctorAvailability, day string) bool {
	for _, d := range doc.AvailableDays {
		if strings.EqualFold(d, day) {
			return true
		}
	}
	return false
}
