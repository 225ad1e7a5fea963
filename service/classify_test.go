package service

import (
	"testing"

	"github.com/sreejith97/hireai/model"
)

func TestClassifyClause(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		header   string
		expected string
	}{
		{"probation", "The employee serves a probation period of six months.", "", model.TypeProbation},
		{"termination by keyword", "Termination of this agreement requires written cause.", "", model.TypeTermination},
		{"termination by notice period", "A notice period of thirty days applies.", "", model.TypeTermination},
		{"compensation", "The monthly salary shall be paid in arrears.", "", model.TypeCompensation},
		{"leave", "Annual vacation entitlement is thirty days.", "", model.TypeLeave},
		{"confidentiality", "All company information is strictly confidential.", "", model.TypeConfidentiality},
		{"non-compete", "The employee agrees not to engage in competition.", "", model.TypeNonCompete},
		{"working hours", "The standard working hour arrangement is eight per day.", "", model.TypeWorkingHours},
		{"duties", "The employee shall carry out every duty assigned.", "", model.TypeDuties},
		{"general fallback", "This agreement is governed by the laws of the jurisdiction.", "", model.TypeGeneral},
		{"header drives match", "The details are described below.", "Article 3. Probation", model.TypeProbation},
		{"case insensitive", "PROBATION applies for six months.", "", model.TypeProbation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyClause(tt.text, tt.header)
			if got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestClassifyClauseTieBreak(t *testing.T) {
	// Text mentioning both salary and termination resolves to termination
	// because it comes first in the priority order
	text := "Upon termination the final salary settlement becomes due."

	got := ClassifyClause(text, "")
	if got != model.TypeTermination {
		t.Errorf("Expected tie-break to 'termination', got '%s'", got)
	}
}
