package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/sreejith97/hireai/model"
)

// headerLinePattern matches structural legal headers like "Article 1." or
// "Section IV" at the start of a line.
var (
	headerLinePattern = regexp.MustCompile(`^(?:Article|Section|Rule|Clause)\s+(?:\d+|[IVX]+)\.?`)
	headerAnyPattern  = regexp.MustCompile(`(?m)^(?:Article|Section|Rule|Clause)\s+(?:\d+|[IVX]+)\.?`)
)

const (
	// Segments shorter than these are noise from extraction, not clauses
	minHeaderSegmentLen    = 50
	minParagraphSegmentLen = 100
)

const preambleHeader = "Preamble"

// SegmentText splits raw extracted text into typed clause records without an
// LLM. Documents with recognizable legal headers are split at each header
// line; anything else falls back to blank-line paragraphs.
func SegmentText(text, sourceLabel string) []model.Clause {
	var clauses []model.Clause

	if headerAnyPattern.MatchString(text) {
		var current []string
		currentHeader := preambleHeader

		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if headerLinePattern.MatchString(line) {
				// Close the open accumulation before starting a new clause
				if clause, ok := buildClause(current, currentHeader, minHeaderSegmentLen); ok {
					clauses = append(clauses, clause)
				}
				currentHeader = line
				current = []string{line}
			} else {
				current = append(current, line)
			}
		}

		if clause, ok := buildClause(current, currentHeader, minHeaderSegmentLen); ok {
			clauses = append(clauses, clause)
		}
	} else {
		// No headers anywhere: fall back to paragraph splitting
		for _, para := range strings.Split(text, "\n\n") {
			para = strings.TrimSpace(para)
			if len(para) > minParagraphSegmentLen {
				clauses = append(clauses, model.Clause{
					Text:       para,
					ClauseType: ClassifyClause(para, ""),
					Variables:  "{}",
					CreatedAt:  time.Now(),
				})
			}
		}
	}

	return clauses
}

// buildClause joins accumulated lines into a clause record, discarding
// accumulations at or below the substance threshold.
func buildClause(lines []string, header string, minLen int) (model.Clause, bool) {
	if len(lines) == 0 {
		return model.Clause{}, false
	}

	fullText := strings.Join(lines, "\n")
	if len(fullText) <= minLen {
		return model.Clause{}, false
	}

	return model.Clause{
		Text:       fullText,
		ClauseType: ClassifyClause(fullText, header),
		Variables:  "{}",
		CreatedAt:  time.Now(),
	}, true
}
