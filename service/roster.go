package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sreejith97/hireai/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseEmployeeCSV parses an employee roster CSV into employee records.
// Header names are matched case-insensitively against the known column
// aliases; unmapped columns land in the additional data blob.
func ParseEmployeeCSV(data []byte) ([]model.Employee, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var employees []model.Employee
	for _, row := range rows[1:] {
		emp, ok := mapEmployeeRow(headers, row)
		if ok {
			employees = append(employees, emp)
		}
	}

	return employees, nil
}

// mapEmployeeRow maps one CSV row onto an employee record. Rows without a
// resolvable name are skipped.
func mapEmployeeRow(headers []string, row []string) (model.Employee, bool) {
	var emp model.Employee
	additional := make(map[string]string)
	var firstName, lastName string
	titleCaser := cases.Title(language.English)

	for i, raw := range row {
		if i >= len(headers) {
			break
		}
		val := strings.TrimSpace(raw)
		if val == "" {
			continue
		}
		header := headers[i]

		// Strip currency formatting from salary columns
		if strings.Contains(header, "salary") {
			val = strings.NewReplacer("$", "", ",", "").Replace(val)
		}

		switch header {
		case "employee id", "id", "emp_id":
			emp.EmployeeID = val
		case "first name", "firstname":
			firstName = val
		case "last name", "lastname":
			lastName = val
		case "name", "full name":
			emp.Name = val
		case "job title", "role", "position", "designation":
			emp.Role = val
		case "email", "email address":
			emp.Email = val
		case "salary (monthly)", "salary", "gross salary", "monthly salary":
			emp.Salary = val
		case "date of joining", "joining date", "start date":
			emp.StartDate = val
		case "country", "nationality":
			emp.Nationality = val
		case "passport number", "passport no":
			emp.PassportNumber = val
		default:
			// Title-cased key for display in downstream views
			key := titleCaser.String(strings.ReplaceAll(header, "_", " "))
			additional[key] = val
		}
	}

	if firstName != "" || lastName != "" {
		emp.Name = strings.TrimSpace(firstName + " " + lastName)
	}
	if emp.Name == "" {
		return model.Employee{}, false
	}

	if len(additional) > 0 {
		if data, err := json.Marshal(additional); err == nil {
			emp.AdditionalData = string(data)
		}
	}

	return emp, true
}
