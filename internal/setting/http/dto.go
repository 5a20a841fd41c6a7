package http

import (
	"encoding/json"
	"fmt"
)

// stringify renders a JSON value the way it is stored: strings as-is,
// scalars in their literal form and objects or arrays as compact JSON.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool, float64, json.Number:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
