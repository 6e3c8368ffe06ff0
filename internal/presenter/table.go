// Package presenter formata a saída dos relatórios sem reordenar nem filtrar linhas.
package presenter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Werneck0live/office-admin/internal/report"
)

const (
	timeLayout   = "2006-01-02 15:04:05.000"
	unknownMonth = "unknown"
	noValue      = "-"
)

// Table é a forma tabular comum à saída em texto e à planilha.
// As células são string, int ou float64.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
}

// Tabulate converte o resultado de um relatório. Horários são exibidos em loc.
func Tabulate(result any, loc *time.Location) (Table, error) {
	if loc == nil {
		loc = time.Local
	}
	switch rows := result.(type) {
	case []report.CompanyCost:
		return companyCosts(rows), nil
	case []report.DailyEntries:
		return dailyEntries(rows, loc), nil
	case []report.MonthlyRevenue:
		return monthlyRevenue(rows), nil
	case []report.MonthlySalary:
		return monthlySalary(rows), nil
	default:
		return Table{}, fmt.Errorf("presenter: unsupported result %T", result)
	}
}

func companyCosts(rows []report.CompanyCost) Table {
	t := Table{
		Title:   "Total company costs",
		Headers: []string{"company_name", "total_cost", "rent", "total_service_cost"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.CompanyName, r.TotalCost, r.Rent, r.TotalServiceCost})
	}
	return t
}

// Uma linha por entrada; funcionário sem entradas aparece com as colunas da entrada vazias.
func dailyEntries(rows []report.DailyEntries, loc *time.Location) Table {
	t := Table{
		Title:   "Daily entries",
		Headers: []string{"full_name", "phone", "entry_count", "entry_time", "exit_time", "location"},
	}
	for _, r := range rows {
		if len(r.DailyEntries) == 0 {
			t.Rows = append(t.Rows, []any{r.FullName, r.Phone, r.EntryCount, noValue, noValue, noValue})
			continue
		}
		for i, e := range r.DailyEntries {
			name, phone, count := any(""), any(""), any("")
			if i == 0 {
				name, phone, count = r.FullName, r.Phone, r.EntryCount
			}
			t.Rows = append(t.Rows, []any{name, phone, count, formatTime(e.EntryTime, loc), formatTime(e.ExitTime, loc), e.Location})
		}
	}
	return t
}

func monthlyRevenue(rows []report.MonthlyRevenue) Table {
	t := Table{
		Title:   "Monthly revenue by employee",
		Headers: []string{"employee_id", "full_name", "phone", "position", "month", "total_revenue"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.EmployeeID.Hex(), r.FullName, r.Phone, r.Position, month(r.Month), r.TotalRevenue})
	}
	return t
}

func monthlySalary(rows []report.MonthlySalary) Table {
	t := Table{
		Title:   "Employees with monthly salary",
		Headers: []string{"employee_id", "full_name", "phone", "position", "month", "salary_rate", "salary"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.EmployeeID.Hex(), r.FullName, r.Phone, r.Position, month(r.Month), r.SalaryRate, r.Salary})
	}
	return t
}

func month(m string) string {
	if m == report.UnknownMonth {
		return unknownMonth
	}
	return m
}

func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return noValue
	}
	return t.In(loc).Format(timeLayout)
}

// FormatCell mantém a precisão produzida pelo cálculo (sem arredondar).
func FormatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
