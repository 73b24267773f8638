package repository

import (
	"context"

	"github.com/skemono/Proyecto-3-BD/internal/models"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, name, exerciseType string) (*models.Exercise, error) {
	query := `
		INSERT INTO ejercicios (nombre, tipo)
		VALUES ($1, $2)
		RETURNING ejercicio_id
	`
	exercise := models.Exercise{Name: name, Type: exerciseType}
	if err := r.db.QueryRow(ctx, query, name, exerciseType).Scan(&exercise.ID); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) AddMuscleGroup(ctx context.Context, exerciseID int64, muscleGroup string) error {
	query := `
		INSERT INTO ejercicio_grupo_muscular (ejercicio_id, grupo_muscular)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, exerciseID, muscleGroup)
	return err
}

func (r *ExerciseRepository) CreateEquipment(ctx context.Context, name, equipmentType, location string) (*models.Equipment, error) {
	query := `
		INSERT INTO equipos (nombre, tipo, ubicacion)
		VALUES ($1, $2, $3)
		RETURNING equipo_id
	`
	equipment := models.Equipment{Name: name, Type: equipmentType, Location: location}
	if err := r.db.QueryRow(ctx, query, name, equipmentType, location).Scan(&equipment.ID); err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *ExerciseRepository) LinkEquipment(ctx context.Context, exerciseID, equipmentID int64) error {
	query := `
		INSERT INTO equipo_ejercicio (ejercicio_id, equipo_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, exerciseID, equipmentID)
	return err
}
