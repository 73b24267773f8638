package repository

import (
	"context"
	"time"
)

// DashboardRepository returns the raw numbers behind the dashboard summary.
// The month-over-month math and the zero-denominator policy live in the
// service layer so they stay testable without a database.
type DashboardRepository struct {
	db DBTX
}

func NewDashboardRepository(db DBTX) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountMembers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM miembros`)
}

func (r *DashboardRepository) CountSessions(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM sesiones_entrenamiento`)
}

// CountExercisesUsed counts distinct exercises that appear in at least one
// session detail, not the size of the exercise catalog.
func (r *DashboardRepository) CountExercisesUsed(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT ejercicio_id) FROM detalle_entrenamiento`)
}

func (r *DashboardRepository) CountCoaches(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM entrenadores`)
}

func (r *DashboardRepository) CountActiveMemberships(ctx context.Context, asOf time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM membresias WHERE fecha_fin >= $1`
	var count int64
	err := r.db.QueryRow(ctx, query, asOf).Scan(&count)
	return count, err
}

// MonthlyRenewals counts distinct members whose membership ends inside the
// month containing the given date.
func (r *DashboardRepository) MonthlyRenewals(ctx context.Context, month time.Time) (int64, error) {
	start, end := monthBounds(month)
	query := `
		SELECT COUNT(DISTINCT miembro_id)
		FROM membresias
		WHERE fecha_fin >= $1 AND fecha_fin < $2
	`
	var count int64
	err := r.db.QueryRow(ctx, query, start, end).Scan(&count)
	return count, err
}

func (r *DashboardRepository) MonthlyNewMemberships(ctx context.Context, month time.Time) (int64, error) {
	start, end := monthBounds(month)
	query := `
		SELECT COUNT(*)
		FROM membresias
		WHERE fecha_inicio >= $1 AND fecha_inicio < $2
	`
	var count int64
	err := r.db.QueryRow(ctx, query, start, end).Scan(&count)
	return count, err
}

// MonthlyRevenue sums the plan prices of memberships started in the month.
func (r *DashboardRepository) MonthlyRevenue(ctx context.Context, month time.Time) (float64, error) {
	start, end := monthBounds(month)
	query := `
		SELECT COALESCE(SUM(pm.precio), 0)::float8
		FROM membresias mb
		JOIN planes_membresia pm ON mb.plan_id = pm.plan_id
		WHERE mb.fecha_inicio >= $1 AND mb.fecha_inicio < $2
	`
	var total float64
	err := r.db.QueryRow(ctx, query, start, end).Scan(&total)
	return total, err
}

// MonthlyAvgSessionDuration averages session-detail durations, in minutes,
// over sessions held in the month. Zero when the month has no sessions.
func (r *DashboardRepository) MonthlyAvgSessionDuration(ctx context.Context, month time.Time) (float64, error) {
	start, end := monthBounds(month)
	query := `
		SELECT COALESCE(AVG(dt.duracion_minutos), 0)::float8
		FROM sesiones_entrenamiento se
		JOIN detalle_entrenamiento dt ON se.sesion_id = dt.sesion_id
		WHERE se.fecha >= $1 AND se.fecha < $2
	`
	var avg float64
	err := r.db.QueryRow(ctx, query, start, end).Scan(&avg)
	return avg, err
}

func (r *DashboardRepository) count(ctx context.Context, query string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	return count, err
}

func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
