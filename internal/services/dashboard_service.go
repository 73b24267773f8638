package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/skemono/Proyecto-3-BD/internal/models"
	"github.com/skemono/Proyecto-3-BD/internal/repository"
)

type dashboardReader interface {
	CountMembers(ctx context.Context) (int64, error)
	CountSessions(ctx context.Context) (int64, error)
	CountExercisesUsed(ctx context.Context) (int64, error)
	CountCoaches(ctx context.Context) (int64, error)
	CountActiveMemberships(ctx context.Context, asOf time.Time) (int64, error)
	MonthlyRenewals(ctx context.Context, month time.Time) (int64, error)
	MonthlyNewMemberships(ctx context.Context, month time.Time) (int64, error)
	MonthlyRevenue(ctx context.Context, month time.Time) (float64, error)
	MonthlyAvgSessionDuration(ctx context.Context, month time.Time) (float64, error)
}

type DashboardService struct {
	repo dashboardReader
}

func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Summary computes the dashboard totals and the four month-over-month pairs
// for the calendar month containing now versus the month before it. When a
// prior-month denominator is zero, both the rate and the change are zero.
func (s *DashboardService) Summary(ctx context.Context, now time.Time) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	var err error
	if summary.Members, err = s.repo.CountMembers(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	if summary.Sessions, err = s.repo.CountSessions(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	if summary.Exercises, err = s.repo.CountExercisesUsed(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	if summary.Trainers, err = s.repo.CountCoaches(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	if summary.ActiveMemberships, err = s.repo.CountActiveMemberships(ctx, now); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	// Step back from the month start, not from now: subtracting a month from
	// e.g. March 31 would normalize forward into March again.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth := monthStart
	lastMonth := monthStart.AddDate(0, -1, 0)

	renewalsThis, err := s.repo.MonthlyRenewals(ctx, thisMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	renewalsLast, err := s.repo.MonthlyRenewals(ctx, lastMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	summary.Retention, summary.RetentionChange = monthOverMonth(float64(renewalsThis), float64(renewalsLast))

	newThis, err := s.repo.MonthlyNewMemberships(ctx, thisMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	newLast, err := s.repo.MonthlyNewMemberships(ctx, lastMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	summary.GrowthRate, summary.GrowthChange = monthOverMonth(float64(newThis), float64(newLast))

	revenueThis, err := s.repo.MonthlyRevenue(ctx, thisMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	revenueLast, err := s.repo.MonthlyRevenue(ctx, lastMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	summary.Revenue = round1(revenueThis)
	if revenueLast == 0 {
		summary.RevenueChange = 0
	} else {
		summary.RevenueChange = round1((revenueThis - revenueLast) / revenueLast * 100)
	}

	durationThis, err := s.repo.MonthlyAvgSessionDuration(ctx, thisMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	durationLast, err := s.repo.MonthlyAvgSessionDuration(ctx, lastMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	summary.AvgDuration = round1(durationThis)
	// Duration change is an absolute delta in minutes, not a percentage.
	summary.DurationChange = round1(durationThis - durationLast)

	return summary, nil
}

// monthOverMonth returns the current value as a percentage of the prior one
// and the percent change, both zero when the prior value is zero.
func monthOverMonth(current, prior float64) (rate, change float64) {
	if prior == 0 {
		return 0, 0
	}
	return round1(current / prior * 100), round1((current - prior) / prior * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
