package types

// DashboardStats represents the per-role dashboard summary. Fields not
// meaningful for a role are left at zero.
type DashboardStats struct {
	TotalPatients     int     `json:"total_patients"`
	TotalAppointments int     `json:"total_appointments"`
	TodayAppointments int     `json:"today_appointments"`
	AdmittedPatients  int     `json:"admitted_patients"`
	AvailableDoctors  int     `json:"available_doctors"`
	PendingEMRs       int     `json:"pending_emrs"`
	LabOrders         int     `json:"lab_orders"`
	TriageToday       int     `json:"triage_today"`
	PendingTriage     int     `json:"pending_triage"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
}

// ChartPoint represents one labelled value in a dashboard chart series
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DoctorAvailability represents a doctor's weekly availability entry
type DoctorAvailability struct {
	DoctorID      string   `json:"doctor_id"`
	Name          string   `json:"name"`
	Department    string   `json:"department"`
	AvailableDays []string `json:"available_days"`
	TimeSlots     []string `json:"time_slots"`
}
