package repository

import (
	"context"
	"time"

	"github.com/skemono/Proyecto-3-BD/internal/models"
)

type CreateMembershipInput struct {
	MemberID  int64
	PlanID    int64
	StartDate time.Time
	// EndDate may be nil; it is then derived from the plan duration.
	EndDate *time.Time
}

type MembershipRepository struct {
	db DBTX
}

func NewMembershipRepository(db DBTX) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) CreatePlan(ctx context.Context, plan models.MembershipPlan) (*models.MembershipPlan, error) {
	query := `
		INSERT INTO planes_membresia (nombre, descripcion, precio, duracion_meses)
		VALUES ($1, $2, $3, $4)
		RETURNING plan_id
	`
	created := plan
	err := r.db.QueryRow(ctx, query, plan.Name, plan.Description, plan.Price, plan.DurationMonths).
		Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Create inserts a membership. When no end date is supplied it is derived
// once, at insert time, as start date plus the plan duration in months.
func (r *MembershipRepository) Create(ctx context.Context, input CreateMembershipInput) (*models.Membership, error) {
	endDate := input.EndDate
	if endDate == nil {
		var durationMonths int
		durationQuery := `SELECT duracion_meses FROM planes_membresia WHERE plan_id = $1`
		if err := r.db.QueryRow(ctx, durationQuery, input.PlanID).Scan(&durationMonths); err != nil {
			return nil, err
		}
		derived := models.MembershipEndDate(input.StartDate, durationMonths)
		endDate = &derived
	}

	membership := models.Membership{
		MemberID:  input.MemberID,
		PlanID:    input.PlanID,
		StartDate: input.StartDate,
		EndDate:   *endDate,
	}
	insertQuery := `
		INSERT INTO membresias (miembro_id, plan_id, fecha_inicio, fecha_fin)
		VALUES ($1, $2, $3, $4)
		RETURNING membresia_id
	`
	err := r.db.QueryRow(ctx, insertQuery,
		membership.MemberID, membership.PlanID, membership.StartDate, membership.EndDate,
	).Scan(&membership.ID)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
