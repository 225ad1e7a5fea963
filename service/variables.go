package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/sreejith97/hireai/config"
)

// EndDateSentinel is the visible blank written when the end date cannot be
// computed. Downstream rewriting relies on the key being present, so a
// failed computation must still produce a value.
const EndDateSentinel = "________________"

const defaultTermYears = 2

// BaseDefaults returns the jurisdiction defaults applied to free-text
// template items. Deployment config may override individual keys; the
// company name comes from the contract being assembled.
func BaseDefaults(companyName string) map[string]any {
	defaults := map[string]any{
		"probation_period": "6",  // months
		"notice_period":    "30", // days
		"annual_leave":     "30", // days
		"working_hours":    "8",
		"rest_days":        "1",
		"currency":         "AED",
		"term":             "2", // years
		"company_address":  "Dubai, United Arab Emirates",
		"company_name":     "Employer",
	}

	if config.GlobalConfig != nil {
		for k, v := range config.GlobalConfig.Defaults {
			defaults[k] = v
		}
	}

	if companyName != "" {
		defaults["company_name"] = companyName
	}

	return defaults
}

// MergeLayers folds variable layers left to right, each layer overriding
// keys of the previous ones. Nil layers are skipped.
func MergeLayers(layers ...map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// ResolveVariables merges the given layers in precedence order and computes
// derived fields. It never fails: per-field computation errors degrade to
// sentinel values and are logged.
func ResolveVariables(layers ...map[string]any) map[string]any {
	merged := MergeLayers(layers...)
	computeEndDate(merged)
	return merged
}

// computeEndDate derives end_date from start_date plus the contract term.
// A start date of 29 Feb landing on a non-leap year clamps to 28 Feb.
func computeEndDate(vars map[string]any) {
	rawStart, ok := vars["start_date"]
	if !ok {
		return
	}

	start, err := time.Parse("2006-01-02", fmt.Sprint(rawStart))
	if err != nil {
		slog.Warn("failed to parse start_date for end date computation",
			"start_date", fmt.Sprint(rawStart), "error", err)
		vars["end_date"] = EndDateSentinel
		return
	}

	years := defaultTermYears
	if rawTerm, ok := vars["term"]; ok {
		f, err := strconv.ParseFloat(fmt.Sprint(rawTerm), 64)
		if err != nil {
			slog.Warn("failed to parse term for end date computation",
				"term", fmt.Sprint(rawTerm), "error", err)
			vars["end_date"] = EndDateSentinel
			return
		}
		years = int(f)
	}

	end := time.Date(start.Year()+years, start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	if end.Month() != start.Month() {
		// time.Date normalized an invalid day (leap day) into the next
		// month; clamp to the 28th instead
		end = time.Date(start.Year()+years, start.Month(), 28, 0, 0, 0, 0, time.UTC)
	}

	vars["end_date"] = end.Format("2006-01-02")
}
