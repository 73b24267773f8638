package repository

import (
	"context"
	"time"

	"github.com/skemono/Proyecto-3-BD/internal/models"
)

type CreateProgressInput struct {
	MemberID       int64
	Date           time.Time
	WeightKG       float64
	BodyFatPercent float64
}

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create inserts a progress record with its BMI derived from the weight and
// the member's stored height. BMI is never supplied by callers.
func (r *ProgressRepository) Create(ctx context.Context, input CreateProgressInput) (*models.ProgressRecord, error) {
	var height float64
	heightQuery := `SELECT altura FROM miembros WHERE miembro_id = $1`
	if err := r.db.QueryRow(ctx, heightQuery, input.MemberID).Scan(&height); err != nil {
		return nil, err
	}

	record := models.ProgressRecord{
		MemberID:       input.MemberID,
		Date:           input.Date,
		WeightKG:       input.WeightKG,
		BodyFatPercent: input.BodyFatPercent,
		BMI:            models.ComputeBMI(input.WeightKG, height),
	}
	insertQuery := `
		INSERT INTO registro_progreso (miembro_id, fecha, peso, porcentaje_grasa_corporal, imc)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING registro_id
	`
	err := r.db.QueryRow(ctx, insertQuery,
		record.MemberID, record.Date, record.WeightKG, record.BodyFatPercent, record.BMI,
	).Scan(&record.ID)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
