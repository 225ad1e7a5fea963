package handler

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sreejith97/hireai/model"
	"github.com/sreejith97/hireai/pkg/logger"
	"github.com/sreejith97/hireai/service"
)

type SourceHandler struct {
	minioService   *service.MinioService
	extractService *service.ExtractService
	sources        *service.SourceStore
	clauses        *service.ClauseStore
}

func NewSourceHandler(minioSvc *service.MinioService, extractSvc *service.ExtractService) *SourceHandler {
	return &SourceHandler{
		minioService:   minioSvc,
		extractService: extractSvc,
		sources:        service.GetSourceStore(),
		clauses:        service.GetClauseStore(),
	}
}

// UploadLaw handles upload of a legal document (e.g. labor law) for a country
func (h *SourceHandler) UploadLaw(c *gin.Context) {
	country := c.PostForm("country")
	if country == "" {
		country = "Unknown"
	}
	h.upload(c, model.CategoryLaw, country, "")
}

// UploadPolicy handles upload of a company policy document
func (h *SourceHandler) UploadPolicy(c *gin.Context) {
	companyID := c.PostForm("company_id")
	if companyID == "" {
		companyID = "Unknown"
	}
	h.upload(c, model.CategoryPolicy, "", companyID)
}

// upload stores the raw document, extracts its text, and persists the
// segmented clauses. Policy clauses carry no country tag; law clauses
// inherit the upload's country.
func (h *SourceHandler) upload(c *gin.Context, category, country, companyID string) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	// PDF and DOCX allowed
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".docx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF and DOCX files are allowed"})
		return
	}

	contentType := "application/pdf"
	if ext == ".docx" {
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}

	payload, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	sourceID := uuid.New().String()
	objectName := h.minioService.ObjectName(category, sourceID, header.Filename)

	if err := h.minioService.UploadDocument(c.Request.Context(), objectName, bytes.NewReader(payload), int64(len(payload)), contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store document: " + err.Error()})
		return
	}

	source := &model.Source{
		ID:         sourceID,
		Filename:   header.Filename,
		Category:   category,
		Country:    country,
		CompanyID:  companyID,
		ObjectName: objectName,
		Status:     model.SourcePending,
		CreatedAt:  time.Now(),
	}
	h.sources.Save(source)

	text, err := h.extractService.ExtractText(c.Request.Context(), header.Filename, payload)
	if err != nil {
		h.sources.UpdateStatus(sourceID, model.SourceFailed, err.Error())
		logger.Error(c.Request.Context(), "text extraction failed",
			"source_id", sourceID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Text extraction failed: " + err.Error()})
		return
	}

	clauses := service.SegmentText(text, category+": "+header.Filename)
	for i := range clauses {
		clauses[i].ID = uuid.New().String()
		clauses[i].SourceID = sourceID
		if category == model.CategoryLaw {
			clauses[i].Country = country
		}
		h.clauses.Save(&clauses[i])
	}

	h.sources.UpdateStatus(sourceID, model.SourceProcessed, "")

	logger.Info(c.Request.Context(), "source document processed",
		"source_id", sourceID,
		"category", category,
		"clauses_count", len(clauses),
	)

	c.JSON(http.StatusOK, gin.H{
		"message":       "Document uploaded and processed",
		"source_id":     sourceID,
		"filename":      header.Filename,
		"clauses_count": len(clauses),
	})
}

// List returns all source documents
func (h *SourceHandler) List(c *gin.Context) {
	category := c.Query("category")
	sources := h.sources.ListByCategory(category)

	result := make([]gin.H, len(sources))
	for i, src := range sources {
		result[i] = gin.H{
			"id":         src.ID,
			"filename":   src.Filename,
			"category":   src.Category,
			"country":    src.Country,
			"company_id": src.CompanyID,
			"status":     src.Status,
			"created_at": src.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{"sources": result})
}
