package repository

import (
	"encoding/json"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// decodeRecord unmarshals a stored JSON document. A JSON null decodes
// without error but is still treated as absent.
func decodeRecord(raw string, v any) bool {
	if raw == "" || raw == "null" {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

func encodeRecord(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
