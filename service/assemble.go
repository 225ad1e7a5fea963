package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sreejith97/hireai/model"
)

// Assembler turns the template items of a draft contract into final text
// blocks by resolving variables and rewriting placeholders.
type Assembler struct {
	clauses *ClauseStore
}

func NewAssembler(clauses *ClauseStore) *Assembler {
	return &Assembler{clauses: clauses}
}

// Assemble resolves every template item of a parent contract against the
// candidate data and returns the final text blocks plus a new employment
// contract record. The parent is never modified. Individual item failures
// degrade to visible sentinel blocks; the batch itself always succeeds.
func (a *Assembler) Assemble(parent *model.Contract, items []model.TemplateItem, candidate map[string]any) ([]string, *model.Contract) {
	companyName := parent.CompanyID
	if companyName == "" {
		companyName = "Employer"
	}

	blocks := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsLiteral() {
			blocks = append(blocks, a.assembleLiteral(item.Text, companyName, candidate))
		} else {
			blocks = append(blocks, a.assembleClauseRef(item, candidate))
		}
	}

	candidateName, _ := candidate["name"].(string)

	now := time.Now()
	contract := &model.Contract{
		ID:            uuid.New().String(),
		ContractType:  model.ContractTypeEmployment,
		Status:        model.StatusGenerated,
		CompanyID:     parent.CompanyID,
		CandidateName: candidateName,
		Version:       1,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := contract.SetContentBlocks(blocks); err != nil {
		// A []string always marshals; keep the record usable anyway
		slog.Error("failed to serialize contract content", "error", err)
		contract.Content = "[]"
	}

	return blocks, contract
}

// assembleLiteral resolves a free-text block over the base defaults plus
// candidate data. Candidate values win over every default.
func (a *Assembler) assembleLiteral(text, companyName string, candidate map[string]any) string {
	vars := ResolveVariables(BaseDefaults(companyName), candidate)
	return RewriteText(text, vars)
}

// assembleClauseRef looks the clause up in the store and resolves its
// declared defaults, then any assembly-pass overrides, then candidate data.
// A missing clause id produces a named sentinel block instead of aborting.
func (a *Assembler) assembleClauseRef(item model.TemplateItem, candidate map[string]any) string {
	clause := a.clauses.Get(item.ClauseID)
	if clause == nil {
		slog.Warn("clause referenced by contract draft not found", "clause_id", item.ClauseID)
		return fmt.Sprintf("[Clause %s missing]", item.ClauseID)
	}

	vars := ResolveVariables(clause.VariablesMap(), item.Variables, candidate)
	return RewriteText(clause.Text, vars)
}
