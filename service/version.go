package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sreejith97/hireai/model"
)

// AmendContract archives the source contract and creates its successor with
// the amendment entries applied as literal whole-document replacements. The
// replacement is not placeholder-aware: each key is replaced wherever it
// occurs in the stored content.
func AmendContract(store *ContractStore, contractID string, amendments map[string]string) (*model.Contract, error) {
	original := store.Get(contractID)
	if original == nil {
		return nil, fmt.Errorf("amend %s: %w", contractID, ErrContractNotFound)
	}

	// Archive original
	original.IsActive = false
	store.Save(original)

	newContent := original.Content
	for k, v := range amendments {
		newContent = strings.ReplaceAll(newContent, k, v)
	}

	now := time.Now()
	amended := &model.Contract{
		ID:               uuid.New().String(),
		ContractType:     original.ContractType,
		Status:           model.StatusAmended,
		CompanyID:        original.CompanyID,
		CandidateName:    original.CandidateName,
		Content:          newContent,
		Version:          original.Version + 1,
		ParentContractID: original.ID,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	store.Save(amended)

	return amended, nil
}

// RenewContract creates the next version of a contract with the content
// copied as is. Date-bearing clauses are NOT recomputed here; renewals keep
// the original dates and rely on a follow-up amendment to adjust them.
func RenewContract(store *ContractStore, contractID string) (*model.Contract, error) {
	original := store.Get(contractID)
	if original == nil {
		return nil, fmt.Errorf("renew %s: %w", contractID, ErrContractNotFound)
	}

	now := time.Now()
	renewed := &model.Contract{
		ID:               uuid.New().String(),
		ContractType:     original.ContractType,
		Status:           model.StatusRenewed,
		CompanyID:        original.CompanyID,
		CandidateName:    original.CandidateName,
		Content:          original.Content,
		Version:          original.Version + 1,
		ParentContractID: original.ID,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	store.Save(renewed)

	return renewed, nil
}
