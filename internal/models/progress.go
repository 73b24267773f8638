package models

import (
	"math"
	"time"
)

type ProgressRecord struct {
	ID             int64     `json:"registro_id"`
	MemberID       int64     `json:"miembro_id"`
	Date           time.Time `json:"fecha"`
	WeightKG       float64   `json:"peso"`
	BodyFatPercent float64   `json:"porcentaje_grasa_corporal"`
	BMI            float64   `json:"imc"`
}

// ComputeBMI derives body-mass index from weight in kilograms and height in
// centimeters, rounded to two decimals. Returns 0 when either input is not
// positive, so callers can store the record without a derived value rather
// than fail the whole insert.
func ComputeBMI(weightKG, heightCM float64) float64 {
	if weightKG <= 0 || heightCM <= 0 {
		return 0
	}
	heightM := heightCM / 100
	return math.Round(weightKG/(heightM*heightM)*100) / 100
}
