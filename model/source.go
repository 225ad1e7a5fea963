package model

import (
	"time"
)

// Source represents an ingested source document (law or policy)
type Source struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Category   string    `json:"category"` // law, policy
	Country    string    `json:"country,omitempty"`
	CompanyID  string    `json:"company_id,omitempty"`
	ObjectName string    `json:"object_name,omitempty"`
	Status     string    `json:"status"` // pending, processed, failed
	ErrorMsg   string    `json:"error_msg,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Source category constants
const (
	CategoryLaw    = "law"
	CategoryPolicy = "policy"
)

// Source status constants
const (
	SourcePending   = "pending"
	SourceProcessed = "processed"
	SourceFailed    = "failed"
)
