package model

import (
	"testing"
	"time"
)

func TestContractStruct(t *testing.T) {
	contract := &Contract{
		ID:           "test-id",
		ContractType: ContractTypeLegal,
		Status:       StatusDraft,
		CompanyID:    "acme",
		Content:      `["block one","block two"]`,
		Version:      1,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if contract.ID != "test-id" {
		t.Errorf("Expected ID 'test-id', got '%s'", contract.ID)
	}
	if contract.Status != StatusDraft {
		t.Errorf("Expected status '%s', got '%s'", StatusDraft, contract.Status)
	}
}

func TestContractStatusConstants(t *testing.T) {
	statuses := []string{StatusDraft, StatusGenerated, StatusAmended, StatusRenewed}
	expected := []string{"draft", "generated", "amended", "renewed"}

	for i, status := range statuses {
		if status != expected[i] {
			t.Errorf("Expected '%s', got '%s'", expected[i], status)
		}
	}
}

func TestContractContentBlocks(t *testing.T) {
	contract := &Contract{Content: `["first clause","second clause"]`}

	blocks := contract.ContentBlocks()
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0] != "first clause" {
		t.Errorf("Expected 'first clause', got '%s'", blocks[0])
	}
}

func TestContractContentBlocksMalformed(t *testing.T) {
	// Non-array content degrades to a single raw block
	contract := &Contract{Content: "plain text, not json"}

	blocks := contract.ContentBlocks()
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0] != "plain text, not json" {
		t.Errorf("Expected raw content back, got '%s'", blocks[0])
	}
}

func TestContractSetContentBlocks(t *testing.T) {
	contract := &Contract{}
	if err := contract.SetContentBlocks([]string{"a", "b"}); err != nil {
		t.Fatalf("SetContentBlocks failed: %v", err)
	}

	blocks := contract.ContentBlocks()
	if len(blocks) != 2 || blocks[0] != "a" || blocks[1] != "b" {
		t.Errorf("Round trip mismatch: %v", blocks)
	}
}
