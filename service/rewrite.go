package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// insertPattern catches any instructional placeholder left after targeted
// substitution. Segmented and LLM-authored text uses placeholder names we
// cannot enumerate in advance, so a catch-all sweep has to follow the
// per-variable pass.
var insertPattern = regexp.MustCompile(`\[Insert .*?\]`)

// InsertBlank replaces unresolved instructional placeholders in the final
// document.
const InsertBlank = "_______________"

// RewriteText substitutes resolved variables into template text. Each
// variable is applied under three spellings before moving to the next key:
// {key}, [Insert key], and [Insert Key Name] with underscores spaced and
// words capitalized. A final sweep blanks any [Insert ...] bracket that no
// variable claimed.
func RewriteText(text string, vars map[string]any) string {
	titleCaser := cases.Title(language.English)

	// Sorted keys keep repeated rewrites deterministic
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		val := fmt.Sprint(vars[k])
		text = strings.ReplaceAll(text, "{"+k+"}", val)
		text = strings.ReplaceAll(text, "[Insert "+k+"]", val)

		titled := titleCaser.String(strings.ReplaceAll(k, "_", " "))
		text = strings.ReplaceAll(text, "[Insert "+titled+"]", val)
	}

	return insertPattern.ReplaceAllString(text, InsertBlank)
}
