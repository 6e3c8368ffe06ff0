package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/report"
	"github.com/Werneck0live/office-admin/internal/store"
)

// prédio mínimo: 1 empresa, 1 serviço faturado, 1 funcionário com 1 entrada
func buildingEngine(t *testing.T) *report.Engine {
	t.Helper()
	src := store.NewMemorySource()

	svc := models.BuildingService{ID: models.NewID[models.BuildingService](), ServiceCode: "DV001", ServiceName: "Vệ sinh"}
	company := models.Company{ID: models.NewID[models.Company](), CompanyName: "Company A", RentalArea: 50}
	emp := models.BuildingEmployee{
		ID:                 models.NewID[models.BuildingEmployee](),
		EmployeeCode:       "NVB001",
		FullName:           "Hoang Van D",
		Phone:              "0911222333",
		ServicesSupervised: []models.ServiceID{svc.ID},
		SalaryRate:         0.012,
	}
	use := models.CompanyServiceUsage{
		ID:          models.NewID[models.CompanyServiceUsage](),
		CompanyID:   company.ID,
		ServiceID:   svc.ID,
		StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: 1000000,
	}
	entry := models.AccessLog{
		ID:         models.NewID[models.AccessLog](),
		EmployeeID: emp.ID,
		EntryTime:  time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
		ExitTime:   time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC),
		Location:   "Gate 1",
	}

	require.NoError(t, src.Insert(models.CollBuildingServices, svc))
	require.NoError(t, src.Insert(models.CollCompanies, company))
	require.NoError(t, src.Insert(models.CollBuildingEmployees, emp))
	require.NoError(t, src.Insert(models.CollCompanyServiceUsages, use))
	require.NoError(t, src.Insert(models.CollAccessLogs, entry))
	return report.NewEngine(src, time.UTC)
}

func TestRunReport_Text(t *testing.T) {
	engine := buildingEngine(t)
	cases := []struct {
		opts options
		want []string
	}{
		{options{task: taskReport, report: report.NameCompanyCosts}, []string{"Total company costs: 1 row(s)", "Company A", "1050000", "50000"}},
		{options{task: taskReport, report: report.NameDailyEntries, date: "2024-01-05"}, []string{"Daily entries: 1 row(s)", "Hoang Van D", "Gate 1"}},
		{options{task: taskReport, report: report.NameMonthlyRevenue}, []string{"Monthly revenue by employee: 1 row(s)", "2024-03", "1000000"}},
		{options{task: taskReport, report: report.NameMonthlySalary}, []string{"Employees with monthly salary: 1 row(s)", "0.012", "12000"}},
	}
	for _, tc := range cases {
		t.Run(tc.opts.report, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runReport(context.Background(), &out, engine, tc.opts))
			for _, w := range tc.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRunReport_DailyBadDate(t *testing.T) {
	var out bytes.Buffer
	err := runReport(context.Background(), &out, buildingEngine(t), options{report: report.NameDailyEntries, date: "05/01/2024"})
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunReport_UnknownReport(t *testing.T) {
	var out bytes.Buffer
	err := runReport(context.Background(), &out, buildingEngine(t), options{report: "payroll"})
	require.ErrorIs(t, err, report.ErrUnknownReport)
}

func TestRunReport_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.xlsx")
	var out bytes.Buffer
	require.NoError(t, runReport(context.Background(), &out, buildingEngine(t), options{report: report.NameCompanyCosts, xlsx: path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), data[:2])
	assert.Empty(t, out.String())
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, taskNone, o.task)

	o, err = parseFlags([]string{"-task", "report", "-report", "daily", "-date", "2024-01-05", "-xlsx", "out.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, options{task: taskReport, report: "daily", date: "2024-01-05", xlsx: "out.xlsx"}, o)

	o, err = parseFlags([]string{"-task", "seed"})
	require.NoError(t, err)
	assert.Equal(t, taskSeed, o.task)

	_, err = parseFlags([]string{"-task", "migrate"})
	require.ErrorIs(t, err, errUnknownTask)

	_, err = parseFlags([]string{"-task", "report"})
	require.Error(t, err)

	_, err = parseFlags([]string{"-nope"})
	require.Error(t, err)
}
