package power

import (
	"encoding/json"
	"fmt"
)

// DispatchEventJSON dispatches a CustomEvent whose detail is v encoded as
// JSON.
//
//	frag, err := power.DispatchEventJSON("#cart", "cart:updated", map[string]any{"count": 3})
//
// json.Marshal escapes <, > and & inside strings, so the detail cannot close
// the surrounding template.
func DispatchEventJSON(targets, name string, v any) (string, error) {
	detail, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s event detail: %w", name, err)
	}
	return DispatchEvent(targets, name, string(detail)), nil
}
