package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/broker"
	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/repository"
)

var employeeID = models.NewID[models.BuildingEmployee]()

func employeePath() string { return "/api/employees/" + employeeID.Hex() }

func sampleEmployee() *models.BuildingEmployee {
	return &models.BuildingEmployee{
		ID:                 employeeID,
		EmployeeCode:       "NVB001",
		FullName:           "Hoang Van D",
		Phone:              "0911222333",
		Level:              3,
		ServicesSupervised: []models.ServiceID{},
		SalaryRate:         0.015,
	}
}

// 1) GET lista

func TestEmployees_List(t *testing.T) {
	rm := &repoMock{
		GetAllFn: func(_ context.Context, limit, skip int64) ([]models.BuildingEmployee, error) {
			assert.EqualValues(t, 10, limit)
			assert.EqualValues(t, 20, skip)
			return []models.BuildingEmployee{*sampleEmployee()}, nil
		},
	}
	h := &EmployeeHandler{Repo: rm}

	req := httptest.NewRequest(http.MethodGet, "/api/employees?limit=10&skip=20", nil)
	rr := httptest.NewRecorder()
	h.Employees(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got []models.BuildingEmployee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, employeeID, got[0].ID)
}

// Parâmetros fora da faixa caem no padrão 50/0
func TestEmployees_List_DefaultParams(t *testing.T) {
	rm := &repoMock{
		GetAllFn: func(_ context.Context, limit, skip int64) ([]models.BuildingEmployee, error) {
			assert.EqualValues(t, 50, limit)
			assert.EqualValues(t, 0, skip)
			return []models.BuildingEmployee{}, nil
		},
	}
	h := &EmployeeHandler{Repo: rm}

	rr := httptest.NewRecorder()
	h.Employees(rr, httptest.NewRequest(http.MethodGet, "/api/employees?limit=999&skip=-1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestEmployees_List_RepoError(t *testing.T) {
	rm := &repoMock{
		GetAllFn: func(context.Context, int64, int64) ([]models.BuildingEmployee, error) {
			return nil, errors.New("server selection timeout")
		},
	}
	h := &EmployeeHandler{Repo: rm}

	rr := httptest.NewRecorder()
	h.Employees(rr, httptest.NewRequest(http.MethodGet, "/api/employees", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "server selection timeout")
}

// 2) POST

func TestEmployees_Create(t *testing.T) {
	var saved *models.BuildingEmployee
	rm := &repoMock{
		CreateFn: func(_ context.Context, e *models.BuildingEmployee) (models.EmployeeID, error) {
			e.ID = employeeID
			saved = e
			return e.ID, nil
		},
	}
	events := &notifierMock{}
	h := &EmployeeHandler{Repo: rm, Events: events}

	body := `{"employee_code":"NVB009","full_name":"Tran Van E","level":4,"salary_rate":0.012}`
	rr := httptest.NewRecorder()
	h.Employees(rr, httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.NotNil(t, saved)
	assert.Equal(t, "NVB009", saved.EmployeeCode)
	assert.NotNil(t, saved.ServicesSupervised)

	require.Len(t, events.calls, 1)
	assert.Equal(t, notifyCall{broker.ActionEmployeeCreated, employeeID.Hex(), "Tran Van E"}, events.calls[0])
}

func TestEmployees_Create_Validation(t *testing.T) {
	cases := map[string]string{
		"unknown field":   `{"employee_code":"X","full_name":"Y","foo":1}`,
		"missing code":    `{"full_name":"Y"}`,
		"missing name":    `{"employee_code":"X"}`,
		"negative level":  `{"employee_code":"X","full_name":"Y","level":-1}`,
		"rate out of 0-1": `{"employee_code":"X","full_name":"Y","salary_rate":1.5}`,
		"not json":        `employee`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			h := &EmployeeHandler{Repo: &repoMock{}}
			rr := httptest.NewRecorder()
			h.Employees(rr, httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewBufferString(body)))
			assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
		})
	}
}

func TestEmployees_Create_Duplicate(t *testing.T) {
	rm := &repoMock{
		CreateFn: func(context.Context, *models.BuildingEmployee) (models.EmployeeID, error) {
			return models.EmployeeID{}, repository.ErrDuplicate
		},
	}
	events := &notifierMock{}
	h := &EmployeeHandler{Repo: rm, Events: events}

	rr := httptest.NewRecorder()
	h.Employees(rr, httptest.NewRequest(http.MethodPost, "/api/employees",
		bytes.NewBufferString(`{"employee_code":"NVB001","full_name":"Dup"}`)))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Empty(t, events.calls)
}

func TestEmployees_MethodNotAllowed(t *testing.T) {
	h := &EmployeeHandler{Repo: &repoMock{}}
	rr := httptest.NewRecorder()
	h.Employees(rr, httptest.NewRequest(http.MethodDelete, "/api/employees", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

// 3) GET por id

func TestEmployeeByID_Get(t *testing.T) {
	rm := &repoMock{
		GetByIDFn: func(_ context.Context, id models.EmployeeID) (*models.BuildingEmployee, error) {
			assert.Equal(t, employeeID, id)
			return sampleEmployee(), nil
		},
	}
	h := &EmployeeHandler{Repo: rm}

	rr := httptest.NewRecorder()
	h.EmployeeByID(rr, httptest.NewRequest(http.MethodGet, employeePath(), nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.BuildingEmployee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "NVB001", got.EmployeeCode)
}

func TestEmployeeByID_Get_NotFound(t *testing.T) {
	rm := &repoMock{
		GetByIDFn: func(context.Context, models.EmployeeID) (*models.BuildingEmployee, error) {
			return nil, repository.ErrNotFound
		},
	}
	h := &EmployeeHandler{Repo: rm}

	for _, path := range []string{employeePath(), "/api/employees/not-an-id", "/api/employees/a/b"} {
		rr := httptest.NewRecorder()
		h.EmployeeByID(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

// 4) PATCH

func TestEmployeeByID_Patch(t *testing.T) {
	rm := &repoMock{
		UpdateFn: func(_ context.Context, id models.EmployeeID, fields bson.M) (*models.BuildingEmployee, error) {
			assert.Equal(t, bson.M{"phone": "0912341111"}, fields)
			e := sampleEmployee()
			e.Phone = "0912341111"
			return e, nil
		},
	}
	events := &notifierMock{}
	h := &EmployeeHandler{Repo: rm, Events: events}

	rr := httptest.NewRecorder()
	h.EmployeeByID(rr, httptest.NewRequest(http.MethodPatch, employeePath(), bytes.NewBufferString(`{"phone":"0912341111"}`)))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "0912341111")
	require.Len(t, events.calls, 1)
	assert.Equal(t, broker.ActionEmployeeUpdated, events.calls[0].action)
}

func TestEmployeeByID_Patch_NotFound(t *testing.T) {
	rm := &repoMock{
		UpdateFn: func(context.Context, models.EmployeeID, bson.M) (*models.BuildingEmployee, error) {
			return nil, repository.ErrNotFound
		},
	}
	events := &notifierMock{}
	h := &EmployeeHandler{Repo: rm, Events: events}

	rr := httptest.NewRecorder()
	h.EmployeeByID(rr, httptest.NewRequest(http.MethodPatch, employeePath(), bytes.NewBufferString(`{"level":2}`)))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, events.calls)
}

func TestEmployeeByID_Patch_Invalid(t *testing.T) {
	h := &EmployeeHandler{Repo: &repoMock{}}
	rr := httptest.NewRecorder()
	h.EmployeeByID(rr, httptest.NewRequest(http.MethodPatch, employeePath(), bytes.NewBufferString(`{"full_name":"  "}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// 5) PUT

func TestEmployeeByID_Put(t *testing.T) {
	rm := &repoMock{
		ReplaceFn: func(_ context.Context, id models.EmployeeID, doc *models.BuildingEmployee) error {
			assert.Equal(t, employeeID, id)
			assert.Equal(t, "Nome Novo", doc.FullName)
			return nil
		},
	}
	h := &EmployeeHandler{Repo: rm}

	rr := httptest.NewRecorder()
	h.EmployeeByID(rr, httptest.NewRequest(http.MethodPut, employeePath(),
		bytes.NewBufferString(`{"employee_code":"NVB001","full_name":"Nome Novo"}`)))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got models.BuildingEmployee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, employeeID, got.ID)
}

// 6) DELETE

func TestEmployeeByID_Delete(t *testing.T) {
	deleted := false
	rm := &repoMock{
		GetByIDFn: func(context.Context, models.EmployeeID) (*models.BuildingEmployee, error) {
			return sampleEmployee(), nil
		},
		DeleteFn: func(context.Context, models.EmployeeID) error {
			deleted = true
			return nil
		},
	}
	events := &notifierMock{}
	h := &EmployeeHandler{Repo: rm, Events: events}

	rr := httptest.NewRecorder()
	h.EmployeeByID(rr, httptest.NewRequest(http.MethodDelete, employeePath(), nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, deleted)
	require.Len(t, events.calls, 1)
	assert.Equal(t, notifyCall{broker.ActionEmployeeDeleted, employeeID.Hex(), "Hoang Van D"}, events.calls[0])
}

func TestEmployeeByID_Delete_NotFound(t *testing.T) {
	rm := &repoMock{
		GetByIDFn: func(context.Context, models.EmployeeID) (*models.BuildingEmployee, error) {
			return nil, repository.ErrNotFound
		},
	}
	h := &EmployeeHandler{Repo: rm}

	rr := httptest.NewRecorder()
	h.EmployeeByID(rr, httptest.NewRequest(http.MethodDelete, employeePath(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
