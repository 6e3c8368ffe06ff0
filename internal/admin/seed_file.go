package admin

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Werneck0live/office-admin/internal/models"
)

//go:embed seeds/building.json
var buildingJSON []byte

// seedTime aceita data (YYYY-MM-DD, em UTC) ou RFC3339.
type seedTime struct{ time.Time }

func (t *seedTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("invalid seed time %q", s)
}

type seedService struct {
	Key               string  `json:"key"`
	ServiceCode       string  `json:"service_code"`
	ServiceName       string  `json:"service_name"`
	ServiceType       string  `json:"service_type"`
	BasePrice         float64 `json:"base_price"`
	PriceIncreaseRate float64 `json:"price_increase_rate"`
}

type seedSubscription struct {
	Service   string   `json:"service"`
	StartDate seedTime `json:"start_date"`
	UnitPrice float64  `json:"unit_price"`
}

type seedCompany struct {
	Key            string               `json:"key"`
	CompanyName    string               `json:"company_name"`
	TaxCode        string               `json:"tax_code"`
	Capital        float64              `json:"capital"`
	BusinessField  string               `json:"business_field"`
	EmployeesCount int                  `json:"employees_count"`
	OfficeAddress  models.OfficeAddress `json:"office_address"`
	Phone          string               `json:"phone"`
	RentalArea     float64              `json:"rental_area"`
	Services       []seedSubscription   `json:"services"`
}

type seedCompanyEmployee struct {
	Company      string   `json:"company"`
	EmployeeCode string   `json:"employee_code"`
	IdentityCard string   `json:"identity_card"`
	FullName     string   `json:"full_name"`
	Birthdate    seedTime `json:"birthdate"`
	Phone        string   `json:"phone"`
}

type seedEmployee struct {
	EmployeeCode string   `json:"employee_code"`
	FullName     string   `json:"full_name"`
	Birthdate    seedTime `json:"birthdate"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Level        int      `json:"level"`
	Position     string   `json:"position"`
	Services     []string `json:"services"`
	SalaryRate   float64  `json:"salary_rate"`
}

type seedUsage struct {
	Company          string   `json:"company"`
	Service          string   `json:"service"`
	StartDate        seedTime `json:"start_date"`
	UnitPrice        float64  `json:"unit_price"`
	UsageDays        int      `json:"usage_days"`
	TotalDaysInMonth int      `json:"total_days_in_month"`
}

type seedAccessLog struct {
	Employee  string   `json:"employee"` // employee_code
	EntryTime seedTime `json:"entry_time"`
	ExitTime  seedTime `json:"exit_time"`
	Location  string   `json:"location"`
}

type seedFile struct {
	Services         []seedService         `json:"services"`
	Companies        []seedCompany         `json:"companies"`
	CompanyEmployees []seedCompanyEmployee `json:"company_employees"`
	Employees        []seedEmployee        `json:"employees"`
	Usages           []seedUsage           `json:"usages"`
	AccessLogs       []seedAccessLog       `json:"access_logs"`
}

func parseSeed(data []byte) (*seedFile, error) {
	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &f, nil
}

// usageTotal é o valor cobrado proporcional aos dias de uso no mês.
func usageTotal(unitPrice float64, usageDays, daysInMonth int) float64 {
	if daysInMonth <= 0 {
		return 0
	}
	return unitPrice * float64(usageDays) / float64(daysInMonth)
}
