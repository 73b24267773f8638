package repository

import (
	"context"

	"github.com/skemono/Proyecto-3-BD/internal/models"
)

type CoachRepository struct {
	db DBTX
}

func NewCoachRepository(db DBTX) *CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) Create(ctx context.Context, name, specialization string) (*models.Coach, error) {
	query := `
		INSERT INTO entrenadores (nombre, especializacion)
		VALUES ($1, $2)
		RETURNING entrenador_id
	`
	coach := models.Coach{Name: name, Specialization: specialization}
	if err := r.db.QueryRow(ctx, query, name, specialization).Scan(&coach.ID); err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) AddContact(ctx context.Context, coachID int64, contactType, value string) error {
	query := `
		INSERT INTO contactos_entrenador (entrenador_id, tipo_contacto, valor)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, coachID, contactType, value)
	return err
}
