package model

import (
	"encoding/json"
	"time"
)

// Clause represents an atomic unit of legal or policy text
type Clause struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	ClauseType string    `json:"clause_type"`
	Country    string    `json:"country,omitempty"`
	Variables  string    `json:"variables"` // JSON object string, e.g. {"notice_period":"30"}
	SourceID   string    `json:"source_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Clause type constants
const (
	TypeProbation       = "probation"
	TypeTermination     = "termination"
	TypeCompensation    = "compensation"
	TypeLeave           = "leave"
	TypeConfidentiality = "confidentiality"
	TypeNonCompete      = "non_compete"
	TypeWorkingHours    = "working_hours"
	TypeDuties          = "duties"
	TypeGeneral         = "general"
)

// VariablesMap parses the serialized variables field.
// Malformed JSON degrades to an empty map rather than an error.
func (c *Clause) VariablesMap() map[string]any {
	if c.Variables == "" {
		return map[string]any{}
	}
	var vars map[string]any
	if err := json.Unmarshal([]byte(c.Variables), &vars); err != nil {
		return map[string]any{}
	}
	return vars
}

// SetVariablesMap serializes the map into the variables field
func (c *Clause) SetVariablesMap(vars map[string]any) error {
	data, err := json.Marshal(vars)
	if err != nil {
		return err
	}
	c.Variables = string(data)
	return nil
}
