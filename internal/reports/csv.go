package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/skemono/Proyecto-3-BD/internal/models"
)

// WriteCSV renders a result set as RFC 4180 delimited text: the column order
// becomes the header line, each row one line below it. A zero-row result
// still gets its header; a result with no columns at all writes nothing.
func WriteCSV(w io.Writer, rs *models.ResultSet) error {
	if rs == nil || len(rs.Columns) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rs.Columns); err != nil {
		return err
	}
	for _, row := range rs.Rows {
		record := make([]string, len(rs.Columns))
		for i := range rs.Columns {
			if i < len(row) {
				record[i] = formatValue(row[i])
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int64:
		return strconv.FormatInt(value, 10)
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case time.Time:
		return value.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", value)
	}
}
