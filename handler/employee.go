package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sreejith97/hireai/pkg/logger"
	"github.com/sreejith97/hireai/service"
)

type EmployeeHandler struct {
	employees *service.EmployeeStore
}

func NewEmployeeHandler() *EmployeeHandler {
	return &EmployeeHandler{employees: service.GetEmployeeStore()}
}

// Upload handles an employee roster CSV upload. Rows with a known employee
// id update the existing record; everything else is created fresh.
func (h *EmployeeHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only CSV files are allowed"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	parsed, err := service.ParseEmployeeCSV(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file: " + err.Error()})
		return
	}

	savedCount := 0
	var errors []string

	for _, emp := range parsed {
		// Simple upsert keyed by the roster employee id
		if emp.EmployeeID != "" {
			if existing := h.employees.FindByEmployeeID(emp.EmployeeID); existing != nil {
				existing.Name = emp.Name
				existing.Role = emp.Role
				existing.Email = emp.Email
				existing.Salary = emp.Salary
				existing.StartDate = emp.StartDate
				h.employees.Save(existing)
				savedCount++
				continue
			}
		}

		record := emp
		record.ID = uuid.New().String()
		record.CreatedAt = time.Now()
		if record.Name == "" {
			errors = append(errors, fmt.Sprintf("Skipping row without name (employee id %q)", record.EmployeeID))
			continue
		}
		h.employees.Save(&record)
		savedCount++
	}

	logger.Info(c.Request.Context(), "employee roster processed",
		"saved_count", savedCount,
		"total_parsed", len(parsed),
		"errors", len(errors),
	)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Employees processed",
		"saved_count":  savedCount,
		"total_parsed": len(parsed),
		"errors":       errors,
	})
}

// List returns all employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees := h.employees.List()

	result := make([]gin.H, len(employees))
	for i, emp := range employees {
		result[i] = gin.H{
			"id":          emp.ID,
			"employee_id": emp.EmployeeID,
			"name":        emp.Name,
			"role":        emp.Role,
			"email":       emp.Email,
			"salary":      emp.Salary,
			"start_date":  emp.StartDate,
			"nationality": emp.Nationality,
			"additional":  emp.AdditionalDataMap(),
		}
	}

	c.JSON(http.StatusOK, gin.H{"employees": result})
}
