package models

import "time"

// TrainingSession is immutable once created; the member's total_sesiones
// counter is bumped in the same transaction that inserts it.
type TrainingSession struct {
	ID       int64     `json:"sesion_id"`
	Date     time.Time `json:"fecha"`
	Time     string    `json:"hora"`
	MemberID int64     `json:"miembro_id"`
	CoachID  int64     `json:"entrenador_id"`
}

type SessionDetail struct {
	ID              int64   `json:"detalle_id"`
	SessionID       int64   `json:"sesion_id"`
	ExerciseID      int64   `json:"ejercicio_id"`
	Sets            int     `json:"series"`
	Reps            int     `json:"repeticiones"`
	WeightKG        float64 `json:"peso"`
	DurationMinutes int     `json:"duracion_minutos"`
}
