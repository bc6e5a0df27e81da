package model

import (
	"database/sql"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("record not found")

// ParseRecipients parses a JSON array string into a string slice.
func ParseRecipients(raw string) []string {
	var recipients []string
	_ = json.Unmarshal([]byte(raw), &recipients)
	return recipients
}

// EncodeRecipients serializes recipients for storage.
func EncodeRecipients(recipients []string) string {
	b, _ := json.Marshal(recipients)
	return string(b)
}

// NullStringValue returns the string value or empty string.
func NullStringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
