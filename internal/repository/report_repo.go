package repository

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/skemono/Proyecto-3-BD/internal/models"
	"github.com/skemono/Proyecto-3-BD/internal/reports"
)

type ReportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// Execute runs a built report query and materializes the rows in select-list
// order. Column names come from the field descriptions, so even a zero-row
// result carries its column set.
func (r *ReportRepository) Execute(ctx context.Context, q reports.Query) (*models.ResultSet, error) {
	rows, err := r.db.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name
	}

	result := &models.ResultSet{Columns: columns, Rows: make([][]any, 0)}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make([]any, len(values))
		for i, value := range values {
			row[i] = normalizeValue(fields[i].DataTypeOID, value)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// normalizeValue maps pgx scan types onto plain JSON/CSV-friendly values:
// dates and times become strings, numerics become float64.
func normalizeValue(oid uint32, v any) any {
	if v == nil {
		return nil
	}
	switch oid {
	case pgtype.DateOID:
		if t, ok := v.(time.Time); ok {
			return t.Format("2006-01-02")
		}
	case pgtype.TimeOID:
		if t, ok := v.(pgtype.Time); ok {
			seconds := t.Microseconds / 1_000_000
			return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
		}
	case pgtype.TimestampOID, pgtype.TimestamptzOID:
		if t, ok := v.(time.Time); ok {
			return t.Format(time.RFC3339)
		}
	case pgtype.NumericOID:
		if n, ok := v.(pgtype.Numeric); ok {
			f, err := n.Float64Value()
			if err == nil && f.Valid && !math.IsNaN(f.Float64) && !math.IsInf(f.Float64, 0) {
				return f.Float64
			}
			// NaN and the infinities have no JSON number form; render the
			// numeric's own textual form instead of the raw struct.
			if b, err := n.MarshalJSON(); err == nil {
				return strings.Trim(string(b), `"`)
			}
		}
	}
	return v
}
