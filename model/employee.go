package model

import (
	"encoding/json"
	"time"
)

// Employee represents an employee record imported from a roster file
type Employee struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id,omitempty"`
	Name           string    `json:"name"`
	Role           string    `json:"role,omitempty"`
	Email          string    `json:"email,omitempty"`
	Salary         string    `json:"salary,omitempty"`
	StartDate      string    `json:"start_date,omitempty"` // YYYY-MM-DD
	Nationality    string    `json:"nationality,omitempty"`
	PassportNumber string    `json:"passport_number,omitempty"`
	AdditionalData string    `json:"additional_data,omitempty"` // JSON object string for unmapped columns
	CreatedAt      time.Time `json:"created_at"`
}

// AdditionalDataMap parses the serialized additional data field.
// Malformed JSON degrades to an empty map.
func (e *Employee) AdditionalDataMap() map[string]string {
	if e.AdditionalData == "" {
		return map[string]string{}
	}
	var data map[string]string
	if err := json.Unmarshal([]byte(e.AdditionalData), &data); err != nil {
		return map[string]string{}
	}
	return data
}
