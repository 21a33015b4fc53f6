package conform

import (
	"encoding/json"
	"math"
	"strconv"
)

type intValidator struct{}

// Int accepts numbers with an integral value and normalizes them to int64.
// JSON decoding hands numbers over as float64 or json.Number; both are
// accepted as long as the value carries no fractional part.
func Int() Validator { return intValidator{} }

func (intValidator) Validate(v any) (any, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, reportf("value %d overflows an integer", x)
		}
		return int64(x), nil
	case float32:
		return intFromFloat(float64(x))
	case float64:
		return intFromFloat(x)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			f, ferr := x.Float64()
			if ferr != nil {
				return nil, reportf("value %s is not an integer", x)
			}
			return intFromFloat(f)
		}
		return i, nil
	}
	return nil, kindErr("number", v)
}

func intFromFloat(f float64) (any, error) {
	if math.Trunc(f) != f || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, reportf("value %s is not an integer",
			strconv.FormatFloat(f, 'g', -1, 64))
	}
	return int64(f), nil
}

type floatValidator struct{}

// Float accepts any number and normalizes it to float64.
func Float() Validator { return floatValidator{} }

func (floatValidator) Validate(v any) (any, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, reportf("value %s is not a number", x)
		}
		return f, nil
	}
	return nil, kindErr("number", v)
}
