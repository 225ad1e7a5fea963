package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sreejith97/hireai/service"
)

type ClauseHandler struct {
	clauses *service.ClauseStore
}

func NewClauseHandler() *ClauseHandler {
	return &ClauseHandler{clauses: service.GetClauseStore()}
}

// List returns extracted clauses with optional country and type filters.
// Variables are returned as a parsed object for frontend consumption, with
// malformed variable blobs degrading to an empty object.
func (h *ClauseHandler) List(c *gin.Context) {
	country := c.Query("country")
	clauseType := c.Query("clause_type")

	clauses := h.clauses.Find(country, clauseType)

	result := make([]gin.H, len(clauses))
	for i, clause := range clauses {
		result[i] = gin.H{
			"id":          clause.ID,
			"text":        clause.Text,
			"clause_type": clause.ClauseType,
			"country":     clause.Country,
			"variables":   clause.VariablesMap(),
			"source_id":   clause.SourceID,
			"created_at":  clause.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, result)
}
