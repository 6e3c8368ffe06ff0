package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Werneck0live/office-admin/internal/report"
)

func costsResult() []report.CompanyCost {
	return []report.CompanyCost{{CompanyName: "Công ty Alpha", TotalCost: 1500, Rent: 1000, TotalServiceCost: 500}}
}

func TestReport_JSON(t *testing.T) {
	eng := &engineMock{
		RunFn: func(_ context.Context, name string, _ time.Time) (any, error) {
			assert.Equal(t, report.NameCompanyCosts, name)
			return costsResult(), nil
		},
	}
	h := &ReportHandler{Engine: eng}

	rr := httptest.NewRecorder()
	h.Report(rr, httptest.NewRequest(http.MethodGet, "/api/reports/costs", nil))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"total_cost":1500`)
}

func TestReport_DailyDate(t *testing.T) {
	var gotDay time.Time
	eng := &engineMock{
		RunFn: func(_ context.Context, _ string, day time.Time) (any, error) {
			gotDay = day
			return []report.DailyEntries{}, nil
		},
	}
	h := &ReportHandler{Engine: eng}

	rr := httptest.NewRecorder()
	h.Report(rr, httptest.NewRequest(http.MethodGet, "/api/reports/daily?date=2024-01-05", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC).Equal(gotDay))
}

func TestReport_DailyBadDate(t *testing.T) {
	h := &ReportHandler{Engine: &engineMock{}}
	rr := httptest.NewRecorder()
	h.Report(rr, httptest.NewRequest(http.MethodGet, "/api/reports/daily?date=05/01/2024", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReport_Unknown(t *testing.T) {
	eng := &engineMock{
		RunFn: func(_ context.Context, name string, _ time.Time) (any, error) {
			return nil, fmt.Errorf("%w: %q", report.ErrUnknownReport, name)
		},
	}
	h := &ReportHandler{Engine: eng}
	rr := httptest.NewRecorder()
	h.Report(rr, httptest.NewRequest(http.MethodGet, "/api/reports/payroll", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReport_StoreError(t *testing.T) {
	eng := &engineMock{
		RunFn: func(context.Context, string, time.Time) (any, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := &ReportHandler{Engine: eng}
	rr := httptest.NewRecorder()
	h.Report(rr, httptest.NewRequest(http.MethodGet, "/api/reports/salary", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestReport_XLSX(t *testing.T) {
	eng := &engineMock{
		RunFn: func(context.Context, string, time.Time) (any, error) { return costsResult(), nil },
	}
	h := &ReportHandler{Engine: eng}

	rr := httptest.NewRecorder()
	h.Report(rr, httptest.NewRequest(http.MethodGet, "/api/reports/costs?format=xlsx", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, xlsxContentType, rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "costs.xlsx")
	// xlsx é um zip
	assert.Equal(t, []byte("PK"), rr.Body.Bytes()[:2])
}

func TestReport_BadFormat(t *testing.T) {
	eng := &engineMock{
		RunFn: func(context.Context, string, time.Time) (any, error) { return costsResult(), nil },
	}
	h := &ReportHandler{Engine: eng}
	rr := httptest.NewRecorder()
	h.Report(rr, httptest.NewRequest(http.MethodGet, "/api/reports/costs?format=csv", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReport_MethodNotAllowed(t *testing.T) {
	h := &ReportHandler{Engine: &engineMock{}}
	rr := httptest.NewRecorder()
	h.Report(rr, httptest.NewRequest(http.MethodPost, "/api/reports/costs", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
