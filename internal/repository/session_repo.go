package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skemono/Proyecto-3-BD/internal/models"
)

type CreateSessionInput struct {
	Date     time.Time
	Time     string
	MemberID int64
	CoachID  int64
}

type AddDetailInput struct {
	SessionID       int64
	ExerciseID      int64
	Sets            int
	Reps            int
	WeightKG        float64
	DurationMinutes int
}

// SessionRepository holds the pool rather than a DBTX because Create must
// run the insert and the member counter bump in one transaction.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a training session and increments the member's running
// session count in the same transaction. Sessions are immutable once
// created and the counter is never decremented.
func (r *SessionRepository) Create(ctx context.Context, input CreateSessionInput) (*models.TrainingSession, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	session := models.TrainingSession{
		Date:     input.Date,
		Time:     input.Time,
		MemberID: input.MemberID,
		CoachID:  input.CoachID,
	}
	insertQuery := `
		INSERT INTO sesiones_entrenamiento (fecha, hora, miembro_id, entrenador_id)
		VALUES ($1, $2, $3, $4)
		RETURNING sesion_id
	`
	if err := tx.QueryRow(ctx, insertQuery, input.Date, input.Time, input.MemberID, input.CoachID).
		Scan(&session.ID); err != nil {
		return nil, err
	}

	bumpQuery := `UPDATE miembros SET total_sesiones = total_sesiones + 1 WHERE miembro_id = $1`
	if _, err := tx.Exec(ctx, bumpQuery, input.MemberID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) AddDetail(ctx context.Context, input AddDetailInput) (*models.SessionDetail, error) {
	query := `
		INSERT INTO detalle_entrenamiento (sesion_id, ejercicio_id, series, repeticiones, peso, duracion_minutos)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING detalle_id
	`
	detail := models.SessionDetail{
		SessionID:       input.SessionID,
		ExerciseID:      input.ExerciseID,
		Sets:            input.Sets,
		Reps:            input.Reps,
		WeightKG:        input.WeightKG,
		DurationMinutes: input.DurationMinutes,
	}
	err := r.db.QueryRow(ctx, query,
		input.SessionID, input.ExerciseID, input.Sets, input.Reps, input.WeightKG, input.DurationMinutes,
	).Scan(&detail.ID)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
