package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSONB-backed ordered list of strings.
type StringList []string

// Value serialises the list for storage, never writing SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan reads the list back from its JSONB representation.
func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// CourseList is a JSONB-backed list of courses.
type CourseList []Course

// Value serialises the courses for storage.
func (l CourseList) Value() (driver.Value, error) {
	if l == nil {
		l = CourseList{}
	}
	return json.Marshal(l)
}

// Scan reads the courses back from their JSONB representation.
func (l *CourseList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// ContactDetails groups a university's public contact channels.
type ContactDetails struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Address string `json:"address"`
}

// Value serialises the contact block for storage.
func (d ContactDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan reads the contact block back from its JSONB representation.
func (d *ContactDetails) Scan(src interface{}) error {
	return scanJSON(src, d)
}

func scanJSON(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
