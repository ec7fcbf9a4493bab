package geom

import (
	"encoding/json"
	"fmt"
)

// Attributes lays the feature properties out as a table: the columns are
// Fields, one row per feature. Missing values are empty strings.
func (d Data) Attributes() (cols []string, rows [][]string) {
	if len(d.Fields) == 0 || len(d.Properties) == 0 {
		return nil, nil
	}
	rows = make([][]string, 0, len(d.Properties))
	for _, props := range d.Properties {
		vals := make([]string, len(d.Fields))
		for i, k := range d.Fields {
			vals[i] = formatValue(props[k])
		}
		rows = append(rows, vals)
	}
	return d.Fields, rows
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
