package models

type Coach struct {
	ID             int64  `json:"entrenador_id"`
	Name           string `json:"nombre"`
	Specialization string `json:"especializacion"`
}

type CoachContact struct {
	ID          int64  `json:"contacto_id"`
	CoachID     int64  `json:"entrenador_id"`
	ContactType string `json:"tipo_contacto"`
	Value       string `json:"valor"`
}
