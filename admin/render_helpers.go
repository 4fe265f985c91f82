package admin

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

type countingWriter struct {
	w     io.Writer
	count int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.count += int64(n)
	return n, err
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func normalizeFieldType(fieldType string) string {
	switch strings.ToLower(strings.TrimSpace(fieldType)) {
	case "int", "integer", "int64":
		return "int"
	case "float", "float64", "decimal", "number":
		return "float"
	case "bool", "boolean":
		return "bool"
	case "date":
		return "date"
	case "datetime", "timestamp":
		return "datetime"
	case "time":
		return "time"
	case "string", "text":
		return "string"
	default:
		return ""
	}
}

func defaultLayoutForType(fieldType string) string {
	switch fieldType {
	case "date":
		return "2006-01-02"
	case "time":
		return "15:04:05"
	default:
		return time.RFC3339
	}
}

// formatTextValue renders a cell value for text output, honoring the
// field's declared type.
func formatTextValue(field Field, value any) (string, error) {
	if value == nil {
		return "", nil
	}
	switch normalizeFieldType(field.Type) {
	case "date", "datetime", "time":
		timeValue, ok := coerceTime(value)
		if !ok {
			return "", NewError(KindValidation, fmt.Sprintf("invalid time for field %q", field.Name), nil)
		}
		return timeValue.Format(defaultLayoutForType(normalizeFieldType(field.Type))), nil
	case "bool":
		boolValue, ok := coerceBool(value)
		if !ok {
			return "", NewError(KindValidation, fmt.Sprintf("invalid bool for field %q", field.Name), nil)
		}
		return strconv.FormatBool(boolValue), nil
	case "int":
		intValue, ok := coerceInt(value)
		if !ok {
			return "", NewError(KindValidation, fmt.Sprintf("invalid int for field %q", field.Name), nil)
		}
		return strconv.FormatInt(intValue, 10), nil
	case "float":
		floatValue, ok := coerceFloat(value)
		if !ok {
			return "", NewError(KindValidation, fmt.Sprintf("invalid number for field %q", field.Name), nil)
		}
		return strconv.FormatFloat(floatValue, 'f', -1, 64), nil
	default:
		return stringify(value), nil
	}
}

func coerceBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return parsed, true
	case int, int8, int16, int32, int64:
		n, _ := coerceInt(v)
		return n != 0, true
	default:
		return false, false
	}
}

func coerceInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float32:
		return coerceIntFromFloat(float64(v))
	case float64:
		return coerceIntFromFloat(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func coerceIntFromFloat(v float64) (int64, bool) {
	if v != math.Trunc(v) {
		return 0, false
	}
	return int64(v), true
}

func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, ok := coerceInt(v)
		if !ok {
			return 0, false
		}
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func coerceTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
