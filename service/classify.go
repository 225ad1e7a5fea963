package service

import (
	"strings"

	"github.com/sreejith97/hireai/model"
)

// typeRule pairs a clause type with the keywords that signal it
type typeRule struct {
	clauseType string
	keywords   []string
}

// typeRules is checked in order and the first match wins. Raw legal text
// often mentions several categories at once (a termination clause that talks
// about salary), so the order is the tie-break and must not be reshuffled.
var typeRules = []typeRule{
	{model.TypeProbation, []string{"probation"}},
	{model.TypeTermination, []string{"termination", "notice period", "resign"}},
	{model.TypeCompensation, []string{"salary", "remuneration", "pay"}},
	{model.TypeLeave, []string{"leave", "vacation", "holiday"}},
	{model.TypeConfidentiality, []string{"confidential", "secrecy"}},
	{model.TypeNonCompete, []string{"non-compete", "competition"}},
	{model.TypeWorkingHours, []string{"working hour", "schedule"}},
	{model.TypeDuties, []string{"duty", "responsibility", "role"}},
}

// ClassifyClause guesses the clause type from keywords in the header and
// body. Returns "general" when nothing matches.
func ClassifyClause(text, header string) string {
	combined := strings.ToLower(header) + " " + strings.ToLower(text)

	for _, rule := range typeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(combined, keyword) {
				return rule.clauseType
			}
		}
	}

	return model.TypeGeneral
}
