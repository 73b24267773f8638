package models

import "time"

type MembershipPlan struct {
	ID             int64   `json:"plan_id"`
	Name           string  `json:"nombre"`
	Description    string  `json:"descripcion"`
	Price          float64 `json:"precio"`
	DurationMonths int     `json:"duracion_meses"`
}

type Membership struct {
	ID        int64     `json:"membresia_id"`
	MemberID  int64     `json:"miembro_id"`
	PlanID    int64     `json:"plan_id"`
	StartDate time.Time `json:"fecha_inicio"`
	EndDate   time.Time `json:"fecha_fin"`
}

// MembershipEndDate derives the end date as start date plus the plan duration
// in calendar months. Computed once at insert time when no explicit end date
// is supplied.
func MembershipEndDate(start time.Time, durationMonths int) time.Time {
	return start.AddDate(0, durationMonths, 0)
}
