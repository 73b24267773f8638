package reports

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Kind classifies a filter value. Every recognized filter key declares one,
// and the raw input must satisfy it before it may be bound as a query
// parameter. Absent or empty values always mean "no filter".
type Kind string

const (
	KindDate          Kind = "date"
	KindPositiveInt   Kind = "positive_integer"
	KindPositiveFloat Kind = "positive_float"
	KindTimeHHMM      Kind = "time_hhmm"
	KindText          Kind = "text"
)

// ValidationError identifies the offending filter field. The message is safe
// to surface to the client verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var timeHHMMPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseValue validates raw against kind and returns the typed value used as
// a bound parameter: string for dates, times and text, int64 and float64 for
// the numeric kinds.
func ParseValue(field string, kind Kind, raw string) (any, error) {
	switch kind {
	case KindDate:
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return nil, &ValidationError{Field: field, Message: fmt.Sprintf("Invalid %s format", field)}
		}
		return raw, nil
	case KindPositiveInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return nil, &ValidationError{Field: field, Message: fmt.Sprintf("%s must be a positive integer", field)}
		}
		return n, nil
	case KindPositiveFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			return nil, &ValidationError{Field: field, Message: fmt.Sprintf("%s must be a positive number", field)}
		}
		return f, nil
	case KindTimeHHMM:
		if !timeHHMMPattern.MatchString(raw) {
			return nil, &ValidationError{Field: field, Message: fmt.Sprintf("%s must be in HH:MM format", field)}
		}
		return raw, nil
	case KindText:
		return raw, nil
	default:
		return nil, &ValidationError{Field: field, Message: fmt.Sprintf("%s has an unknown filter kind", field)}
	}
}
