package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skemono/Proyecto-3-BD/internal/models"
	"github.com/skemono/Proyecto-3-BD/internal/reports"
	"github.com/skemono/Proyecto-3-BD/internal/repository"
)

// ErrQueryExecution wraps any data-store failure while running a report.
// Validation failures never carry it; they short-circuit before execution.
var ErrQueryExecution = errors.New("report query execution failed")

type reportExecutor interface {
	Execute(ctx context.Context, q reports.Query) (*models.ResultSet, error)
}

type ReportService struct {
	executor reportExecutor
}

func NewReportService(executor *repository.ReportRepository) *ReportService {
	return &ReportService{executor: executor}
}

// Generate validates the filters, builds the parameterized query and runs
// it. No query is executed when validation fails.
func (s *ReportService) Generate(
	ctx context.Context,
	kind reports.ReportKind,
	filters map[string]string,
) (*models.ResultSet, error) {
	query, err := reports.Build(kind, filters)
	if err != nil {
		return nil, err
	}

	result, err := s.executor.Execute(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	return result, nil
}
