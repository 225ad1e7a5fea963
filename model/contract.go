package model

import (
	"encoding/json"
	"time"
)

// Contract represents a generated contract document
type Contract struct {
	ID               string    `json:"id"`
	ContractType     string    `json:"contract_type"` // legal, employment
	Status           string    `json:"status"`        // draft, generated, amended, renewed
	CompanyID        string    `json:"company_id,omitempty"`
	CandidateName    string    `json:"candidate_name,omitempty"`
	Content          string    `json:"content"` // JSON array string of text blocks or template items
	Version          int       `json:"version"`
	ParentContractID string    `json:"parent_contract_id,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Contract type constants
const (
	ContractTypeLegal      = "legal"
	ContractTypeEmployment = "employment"
)

// Contract status constants
const (
	StatusDraft     = "draft"
	StatusGenerated = "generated"
	StatusAmended   = "amended"
	StatusRenewed   = "renewed"
)

// ContentBlocks parses the serialized content as a list of final text blocks.
// Content that is not a JSON array degrades to a single raw block.
func (c *Contract) ContentBlocks() []string {
	var blocks []string
	if err := json.Unmarshal([]byte(c.Content), &blocks); err != nil {
		return []string{c.Content}
	}
	return blocks
}

// SetContentBlocks serializes the block list into the content field
func (c *Contract) SetContentBlocks(blocks []string) error {
	data, err := json.Marshal(blocks)
	if err != nil {
		return err
	}
	c.Content = string(data)
	return nil
}
