package service

import (
	"testing"
)

func TestParseEmployeeCSV(t *testing.T) {
	csvData := `Employee ID,First Name,Last Name,Job Title,Email,Salary (Monthly),Date of Joining,Nationality,Department
EMP001,Jordan,Lee,Engineer,jordan@example.com,"$12,000",2024-03-01,British,Platform
EMP002,Sam,Khan,Designer,sam@example.com,9500,2024-04-15,Pakistani,Design`

	employees, err := ParseEmployeeCSV([]byte(csvData))
	if err != nil {
		t.Fatalf("ParseEmployeeCSV failed: %v", err)
	}

	if len(employees) != 2 {
		t.Fatalf("Expected 2 employees, got %d", len(employees))
	}

	first := employees[0]
	if first.EmployeeID != "EMP001" {
		t.Errorf("Expected EMP001, got '%s'", first.EmployeeID)
	}
	if first.Name != "Jordan Lee" {
		t.Errorf("Expected 'Jordan Lee', got '%s'", first.Name)
	}
	if first.Role != "Engineer" {
		t.Errorf("Expected 'Engineer', got '%s'", first.Role)
	}
	if first.Salary != "12000" {
		t.Errorf("Expected currency formatting stripped, got '%s'", first.Salary)
	}
	if first.StartDate != "2024-03-01" {
		t.Errorf("Expected start date, got '%s'", first.StartDate)
	}

	// Unmapped column goes into additional data
	additional := first.AdditionalDataMap()
	if additional["Department"] != "Platform" {
		t.Errorf("Expected Department in additional data, got %v", additional)
	}
}

func TestParseEmployeeCSVNameColumn(t *testing.T) {
	csvData := `Name,Role
Jordan Lee,Engineer`

	employees, err := ParseEmployeeCSV([]byte(csvData))
	if err != nil {
		t.Fatalf("ParseEmployeeCSV failed: %v", err)
	}
	if len(employees) != 1 || employees[0].Name != "Jordan Lee" {
		t.Errorf("Expected single employee named Jordan Lee, got %v", employees)
	}
}

func TestParseEmployeeCSVSkipsNamelessRows(t *testing.T) {
	csvData := `First Name,Last Name,Role
Jordan,Lee,Engineer
,,Orphan Role`

	employees, err := ParseEmployeeCSV([]byte(csvData))
	if err != nil {
		t.Fatalf("ParseEmployeeCSV failed: %v", err)
	}
	if len(employees) != 1 {
		t.Errorf("Expected nameless row skipped, got %d employees", len(employees))
	}
}

func TestParseEmployeeCSVNoData(t *testing.T) {
	_, err := ParseEmployeeCSV([]byte("Name,Role"))
	if err == nil {
		t.Error("Expected error for CSV without data rows")
	}
}

func TestParseEmployeeCSVMalformed(t *testing.T) {
	_, err := ParseEmployeeCSV([]byte("a,b\n\"unterminated"))
	if err == nil {
		t.Error("Expected error for malformed CSV")
	}
}
