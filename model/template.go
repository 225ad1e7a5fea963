package model

import (
	"encoding/json"
)

// TemplateItem is one element of a contract draft: either a literal text
// block carrying placeholders, or a reference to a stored clause.
type TemplateItem struct {
	Text      string         `json:"text,omitempty"`
	ClauseID  string         `json:"clause_id,omitempty"`
	Variables map[string]any `json:"variables,omitempty"` // resolved during an earlier assembly pass
}

// IsLiteral reports whether the item is a raw text block rather than a
// clause reference.
func (t *TemplateItem) IsLiteral() bool {
	return t.ClauseID == ""
}

// UnmarshalJSON accepts the inconsistent shapes the drafting collaborator
// produces: a bare string, an object with a clause id, or an object that is
// only a {"text": ...} wrapper around a string. The wrapper case is
// normalized to a literal here so downstream code sees exactly two variants.
func (t *TemplateItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TemplateItem{Text: s}
		return nil
	}

	var raw struct {
		Text      string         `json:"text"`
		ClauseID  string         `json:"clause_id"`
		ID        string         `json:"id"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	clauseID := raw.ClauseID
	if clauseID == "" {
		clauseID = raw.ID
	}

	*t = TemplateItem{
		Text:      raw.Text,
		ClauseID:  clauseID,
		Variables: raw.Variables,
	}
	return nil
}

// MarshalJSON writes literals back as bare strings and clause references as
// objects, matching the stored contract content layout.
func (t TemplateItem) MarshalJSON() ([]byte, error) {
	if t.IsLiteral() {
		return json.Marshal(t.Text)
	}
	type ref struct {
		ClauseID  string         `json:"clause_id"`
		Variables map[string]any `json:"variables,omitempty"`
	}
	return json.Marshal(ref{ClauseID: t.ClauseID, Variables: t.Variables})
}
