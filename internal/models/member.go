package models

import "time"

type Member struct {
	ID            int64     `json:"miembro_id"`
	Name          string    `json:"nombre"`
	BirthDate     time.Time `json:"fecha_nacimiento"`
	Gender        string    `json:"genero"`
	HeightCM      float64   `json:"altura"`
	JoinDate      time.Time `json:"fecha_ingreso"`
	TotalSessions int       `json:"total_sesiones"`
}

type MemberContact struct {
	ID          int64  `json:"contacto_id"`
	MemberID    int64  `json:"miembro_id"`
	ContactType string `json:"tipo_contacto"`
	Value       string `json:"valor"`
}
