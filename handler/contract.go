package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sreejith97/hireai/model"
	"github.com/sreejith97/hireai/pkg/logger"
	"github.com/sreejith97/hireai/service"
)

type ContractHandler struct {
	contracts *service.ContractStore
	clauses   *service.ClauseStore
	sources   *service.SourceStore
	llm       *service.LLMService
	assembler *service.Assembler
}

func NewContractHandler(llmSvc *service.LLMService) *ContractHandler {
	clauses := service.GetClauseStore()
	return &ContractHandler{
		contracts: service.GetContractStore(),
		clauses:   clauses,
		sources:   service.GetSourceStore(),
		llm:       llmSvc,
		assembler: service.NewAssembler(clauses),
	}
}

// GenerateLegalRequest is the payload for legal contract generation
type GenerateLegalRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

// GenerateEmploymentRequest is the payload for employment contract generation
type GenerateEmploymentRequest struct {
	LegalContractID string         `json:"legal_contract_id" binding:"required"`
	Candidate       map[string]any `json:"candidate" binding:"required"`
}

// GenerateLegal drafts a legal contract structure from the stored law and
// policy clauses, without candidate data
func (h *ContractHandler) GenerateLegal(c *gin.Context) {
	var req GenerateLegalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Law clauses for the country plus all company policy clauses
	lawClauses := h.clauses.Find(req.Country, "")

	var policyIDs []string
	for _, src := range h.sources.ListByCategory(model.CategoryPolicy) {
		policyIDs = append(policyIDs, src.ID)
	}
	policyClauses := h.clauses.FindBySourceIDs(policyIDs)

	allClauses := append(lawClauses, policyClauses...)
	if len(allClauses) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No relevant clauses found"})
		return
	}

	items, err := h.draftItems(c, allClauses, req)
	if err != nil {
		logger.Error(c.Request.Context(), "contract drafting failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Drafting failed: " + err.Error()})
		return
	}

	content, err := json.Marshal(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize draft: " + err.Error()})
		return
	}

	now := time.Now()
	contract := &model.Contract{
		ID:           uuid.New().String(),
		ContractType: model.ContractTypeLegal,
		Status:       model.StatusDraft,
		CompanyID:    req.CompanyID,
		Content:      string(content),
		Version:      1,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	h.contracts.Save(contract)

	logger.Info(c.Request.Context(), "legal contract drafted",
		"contract_id", contract.ID,
		"clauses", len(allClauses),
		"items", len(items),
	)

	c.JSON(http.StatusOK, gin.H{
		"legal_contract_id": contract.ID,
		"clauses":           items,
	})
}

// draftItems asks the LLM collaborator to assemble the draft; when drafting
// is disabled the stored clauses are referenced directly in order.
func (h *ContractHandler) draftItems(c *gin.Context, clauses []*model.Clause, req GenerateLegalRequest) ([]model.TemplateItem, error) {
	if h.llm == nil {
		items := make([]model.TemplateItem, 0, len(clauses))
		for _, clause := range clauses {
			items = append(items, model.TemplateItem{ClauseID: clause.ID})
		}
		return items, nil
	}

	requirements := map[string]string{
		"country":    req.Country,
		"company_id": req.CompanyID,
	}
	return h.llm.Draft(c.Request.Context(), clauses, requirements)
}

// GenerateEmployment injects candidate data into a drafted legal contract
func (h *ContractHandler) GenerateEmployment(c *gin.Context) {
	var req GenerateEmploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	parent := h.contracts.Get(req.LegalContractID)
	if parent == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	var items []model.TemplateItem
	if err := json.Unmarshal([]byte(parent.Content), &items); err != nil {
		// Unparseable content degrades to a single literal block
		logger.Warn(c.Request.Context(), "contract content not a template list, using raw text",
			"contract_id", parent.ID, "error", err)
		items = []model.TemplateItem{{Text: parent.Content}}
	}

	blocks, contract := h.assembler.Assemble(parent, items, req.Candidate)
	h.contracts.Save(contract)

	logger.Info(c.Request.Context(), "employment contract generated",
		"contract_id", contract.ID,
		"parent_id", parent.ID,
		"blocks", len(blocks),
	)

	c.JSON(http.StatusOK, gin.H{
		"employment_contract_id": contract.ID,
		"final_text":             strings.Join(blocks, "\n\n"),
	})
}

// List returns contracts, optionally filtered by type
func (h *ContractHandler) List(c *gin.Context) {
	contractType := c.Query("contract_type")
	contracts := h.contracts.List(contractType)

	result := make([]gin.H, len(contracts))
	for i, contract := range contracts {
		result[i] = gin.H{
			"id":                 contract.ID,
			"contract_type":      contract.ContractType,
			"status":             contract.Status,
			"company_id":         contract.CompanyID,
			"candidate_name":     contract.CandidateName,
			"version":            contract.Version,
			"parent_contract_id": contract.ParentContractID,
			"is_active":          contract.IsActive,
			"created_at":         contract.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{"contracts": result})
}

// Get returns a single contract with its content
func (h *ContractHandler) Get(c *gin.Context) {
	id := c.Param("id")

	contract := h.contracts.Get(id)
	if contract == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// Amend creates a new contract version with the amendments applied and
// archives the current one
func (h *ContractHandler) Amend(c *gin.Context) {
	id := c.Param("id")

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	amendments := make(map[string]string, len(body))
	for k, v := range body {
		amendments[k] = fmt.Sprint(v)
	}

	amended, err := service.AmendContract(h.contracts, id, amendments)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	logger.Info(c.Request.Context(), "contract amended",
		"contract_id", id,
		"new_contract_id", amended.ID,
		"version", amended.Version,
	)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Contract amended",
		"new_contract_id": amended.ID,
		"version":         amended.Version,
	})
}

// Renew creates the next contract version with the content carried over
func (h *ContractHandler) Renew(c *gin.Context) {
	id := c.Param("id")

	renewed, err := service.RenewContract(h.contracts, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	logger.Info(c.Request.Context(), "contract renewed",
		"contract_id", id,
		"new_contract_id", renewed.ID,
		"version", renewed.Version,
	)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Contract renewed",
		"new_contract_id": renewed.ID,
		"version":         renewed.Version,
	})
}
