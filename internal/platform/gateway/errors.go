package gateway

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// GenericFailure is the display message for errors that carry no structured
// detail.
const GenericFailure = "operation failed"

// APIError is a non-2xx response from a backend service.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// IsValidation reports whether the error is a 4xx with a structured body.
func (e *APIError) IsValidation() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Message flattens the error body into a single display string.
func (e *APIError) Message() string {
	return Flatten(e.Body)
}

// Flatten converts an error payload into one human-readable string. The
// backends emit either an object of field -> [messages], an object with a
// "detail" string, or a bare string. Field errors are joined as
// "field: message" pairs separated by "; ", with fields in sorted order so
// the output is stable.
func Flatten(body []byte) string {
	body = []byte(strings.TrimSpace(string(body)))
	if len(body) == 0 {
		return GenericFailure
	}

	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		if asString == "" {
			return GenericFailure
		}
		return asString
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(body, &asObject); err != nil {
		return GenericFailure
	}

	if raw, ok := asObject["detail"]; ok {
		var detail string
		if err := json.Unmarshal(raw, &detail); err == nil && detail != "" {
			return detail
		}
	}

	keys := make([]string, 0, len(asObject))
	for k := range asObject {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, field := range keys {
		raw := asObject[field]

		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err == nil {
			if len(msgs) > 0 {
				parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, ", ")))
			}
			continue
		}

		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	if len(parts) == 0 {
		return GenericFailure
	}
	return strings.Join(parts, "; ")
}

