package reports

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilterCombination guards against a definition binding the same
// filter key more than once. Unreachable with the shipped definitions since
// filters are independent and conjunctive.
var ErrInvalidFilterCombination = errors.New("invalid filter combination")

// Query is an executable report query: SQL text with positional placeholders
// and the parameter values in placeholder order.
type Query struct {
	SQL  string
	Args []any
}

// ValidateFilters checks every recognized filter of the report kind against
// its declared value kind. Absent and empty values are valid. The first
// failure is returned as a *ValidationError.
func ValidateFilters(kind ReportKind, filters map[string]string) error {
	def, ok := definitions[kind]
	if !ok {
		return fmt.Errorf("unknown report kind %q", kind)
	}

	for _, key := range []string{startDateKey, endDateKey} {
		if raw := strings.TrimSpace(filters[key]); raw != "" {
			if _, err := ParseValue(key, KindDate, raw); err != nil {
				return err
			}
		}
	}

	specs := def.Filters
	if def.Having != nil {
		specs = append(append([]FilterSpec{}, def.Filters...), *def.Having)
	}
	for _, spec := range specs {
		if raw := strings.TrimSpace(filters[spec.Key]); raw != "" {
			if _, err := ParseValue(spec.Key, spec.Kind, raw); err != nil {
				return err
			}
		}
	}
	return nil
}

// Build composes the executable query for a report kind from a sparse filter
// map. Every present filter contributes exactly one conjunctive predicate
// bound through a positional parameter; raw values are never interpolated
// into the query text. A date range is applied as soon as either bound is
// supplied, substituting the default for the missing side.
func Build(kind ReportKind, filters map[string]string) (Query, error) {
	def, ok := definitions[kind]
	if !ok {
		return Query{}, fmt.Errorf("unknown report kind %q", kind)
	}
	if err := ValidateFilters(kind, filters); err != nil {
		return Query{}, err
	}

	seen := map[string]bool{startDateKey: true, endDateKey: true}
	for _, spec := range def.Filters {
		if seen[spec.Key] {
			return Query{}, ErrInvalidFilterCombination
		}
		seen[spec.Key] = true
	}
	if def.Having != nil && seen[def.Having.Key] {
		return Query{}, ErrInvalidFilterCombination
	}

	var conditions []string
	var args []any

	start := strings.TrimSpace(filters[startDateKey])
	end := strings.TrimSpace(filters[endDateKey])
	if start != "" || end != "" {
		if start == "" {
			start = DefaultStartDate
		}
		if end == "" {
			end = DefaultEndDate
		}
		conditions = append(conditions, fmt.Sprintf("%s BETWEEN $%d AND $%d", def.DateColumn, len(args)+1, len(args)+2))
		args = append(args, start, end)
	}

	for _, spec := range def.Filters {
		raw := strings.TrimSpace(filters[spec.Key])
		if raw == "" {
			raw = spec.Default
		}
		if raw == "" {
			continue
		}
		value, err := ParseValue(spec.Key, spec.Kind, raw)
		if err != nil {
			return Query{}, err
		}
		conditions = append(conditions, fmt.Sprintf(spec.Predicate, len(args)+1))
		args = append(args, value)
	}

	sql := def.BaseQuery
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	if def.GroupBy != "" {
		sql += " GROUP BY " + def.GroupBy
	}
	if def.Having != nil {
		if raw := strings.TrimSpace(filters[def.Having.Key]); raw != "" {
			value, err := ParseValue(def.Having.Key, def.Having.Kind, raw)
			if err != nil {
				return Query{}, err
			}
			sql += " HAVING " + fmt.Sprintf(def.Having.Predicate, len(args)+1)
			args = append(args, value)
		}
	}
	if def.OrderBy != "" {
		sql += " ORDER BY " + def.OrderBy
	}

	return Query{SQL: sql, Args: args}, nil
}
