package service

import (
	"strings"
	"testing"

	"github.com/sreejith97/hireai/model"
)

func TestSegmentTextWithHeaders(t *testing.T) {
	text := "Article 1. Probation\nEmployee serves six months probation period as standard practice across all roles and departments.\n\nArticle 2. Termination\nEither party may terminate with thirty days written notice as required under applicable law."

	clauses := SegmentText(text, "Legal Document: labor_law.pdf")

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
	if clauses[0].ClauseType != model.TypeProbation {
		t.Errorf("Expected first clause type 'probation', got '%s'", clauses[0].ClauseType)
	}
	if clauses[1].ClauseType != model.TypeTermination {
		t.Errorf("Expected second clause type 'termination', got '%s'", clauses[1].ClauseType)
	}
	if !strings.HasPrefix(clauses[0].Text, "Article 1.") {
		t.Errorf("Expected header as first line, got '%s'", clauses[0].Text)
	}
	if !strings.HasPrefix(clauses[1].Text, "Article 2.") {
		t.Errorf("Expected header as first line, got '%s'", clauses[1].Text)
	}
}

func TestSegmentTextPreamble(t *testing.T) {
	text := "This agreement is entered into by the parties named below and sets out the terms of engagement.\nSection 1. Scope\nThe scope of this agreement covers all services rendered by the contractor during the engagement period."

	clauses := SegmentText(text, "test")

	if len(clauses) != 2 {
		t.Fatalf("Expected preamble plus one section, got %d clauses", len(clauses))
	}
	if strings.HasPrefix(clauses[0].Text, "Section 1.") {
		t.Error("Expected first clause to be the preamble, not the section")
	}
	if !strings.HasPrefix(clauses[1].Text, "Section 1.") {
		t.Errorf("Expected second clause to start with header, got '%s'", clauses[1].Text)
	}
}

func TestSegmentTextRomanNumerals(t *testing.T) {
	text := "Clause IV. Confidentiality\nThe employee shall keep all company information confidential during and after the term of employment."

	clauses := SegmentText(text, "test")

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].ClauseType != model.TypeConfidentiality {
		t.Errorf("Expected 'confidentiality', got '%s'", clauses[0].ClauseType)
	}
}

func TestSegmentTextParagraphFallback(t *testing.T) {
	long := "All employees must follow the company dress code at all times while on the premises or representing the company at external events and functions."
	short := "Short paragraph."
	text := long + "\n\n" + short

	clauses := SegmentText(text, "test")

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause from paragraph fallback, got %d", len(clauses))
	}
	if clauses[0].Text != long {
		t.Errorf("Expected the long paragraph, got '%s'", clauses[0].Text)
	}
}

func TestSegmentTextShortSegmentsDiscarded(t *testing.T) {
	// Both sections are at or below the 50-char threshold after joining
	text := "Article 1. Short\nTiny.\nArticle 2. Also\nTiny."

	clauses := SegmentText(text, "test")

	if len(clauses) != 0 {
		t.Errorf("Expected short segments discarded, got %d clauses", len(clauses))
	}
}

func TestSegmentTextEmptyInput(t *testing.T) {
	clauses := SegmentText("", "test")
	if len(clauses) != 0 {
		t.Errorf("Expected empty clause list for empty input, got %d", len(clauses))
	}
}

func TestSegmentTextSingleHeaderOnly(t *testing.T) {
	// A lone header line over 50 chars still becomes its own clause
	text := "Article 1. General Provisions Concerning The Employment Relationship"

	clauses := SegmentText(text, "test")

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Text != text {
		t.Errorf("Expected header line as clause text, got '%s'", clauses[0].Text)
	}
}

func TestSegmentTextVariablesInitialized(t *testing.T) {
	text := "Article 1. Compensation\nThe employee shall receive a monthly salary of {salary} {currency} payable on the last working day."

	clauses := SegmentText(text, "test")

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Variables != "{}" {
		t.Errorf("Expected empty variables object, got '%s'", clauses[0].Variables)
	}
	if clauses[0].Country != "" {
		t.Errorf("Expected no country tag, got '%s'", clauses[0].Country)
	}
}

func TestSegmentTextContentPreserved(t *testing.T) {
	// Concatenating emitted clauses reproduces the header-delimited
	// substructure of the source
	text := "Article 1. Duties\nThe employee shall perform the duties assigned by the employer with due care and diligence at all times.\nArticle 2. Working Hours\nNormal working hours are eight hours per day with one rest day per week as mandated by the schedule."

	clauses := SegmentText(text, "test")

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}

	var joined []string
	for _, c := range clauses {
		joined = append(joined, c.Text)
	}
	if strings.Join(joined, "\n") != text {
		t.Errorf("Concatenated clauses do not reproduce source:\n%s", strings.Join(joined, "\n"))
	}
}
