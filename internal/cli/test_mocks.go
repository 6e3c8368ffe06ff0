package cli

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/report"
)

type repoMock struct {
	CreateFn  func(ctx context.Context, e *models.BuildingEmployee) (models.EmployeeID, error)
	GetByIDFn func(ctx context.Context, id models.EmployeeID) (*models.BuildingEmployee, error)
	UpdateFn  func(ctx context.Context, id models.EmployeeID, fields bson.M) (*models.BuildingEmployee, error)
	DeleteFn  func(ctx context.Context, id models.EmployeeID) error
}

func (m *repoMock) Create(ctx context.Context, e *models.BuildingEmployee) (models.EmployeeID, error) {
	if m.CreateFn == nil {
		return models.EmployeeID{}, errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, e)
}
func (m *repoMock) GetByID(ctx context.Context, id models.EmployeeID) (*models.BuildingEmployee, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, id models.EmployeeID, fields bson.M) (*models.BuildingEmployee, error) {
	if m.UpdateFn == nil {
		return nil, errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, fields)
}
func (m *repoMock) Delete(ctx context.Context, id models.EmployeeID) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}

type reportsMock struct {
	CostsFn   func(ctx context.Context) ([]report.CompanyCost, error)
	DailyFn   func(ctx context.Context, day time.Time) ([]report.DailyEntries, error)
	RevenueFn func(ctx context.Context) ([]report.MonthlyRevenue, error)
	SalaryFn  func(ctx context.Context) ([]report.MonthlySalary, error)
}

func (m *reportsMock) TotalCompanyCosts(ctx context.Context) ([]report.CompanyCost, error) {
	if m.CostsFn == nil {
		return nil, errors.New("CostsFn not set")
	}
	return m.CostsFn(ctx)
}
func (m *reportsMock) DailyEntries(ctx context.Context, day time.Time) ([]report.DailyEntries, error) {
	if m.DailyFn == nil {
		return nil, errors.New("DailyFn not set")
	}
	return m.DailyFn(ctx, day)
}
func (m *reportsMock) MonthlyRevenueByEmployee(ctx context.Context) ([]report.MonthlyRevenue, error) {
	if m.RevenueFn == nil {
		return nil, errors.New("RevenueFn not set")
	}
	return m.RevenueFn(ctx)
}
func (m *reportsMock) EmployeesWithMonthlySalary(ctx context.Context) ([]report.MonthlySalary, error) {
	if m.SalaryFn == nil {
		return nil, errors.New("SalaryFn not set")
	}
	return m.SalaryFn(ctx)
}

type notifyCall struct{ action, id, name string }

type notifierMock struct{ calls []notifyCall }

func (n *notifierMock) Notify(_ context.Context, action, id, name string) {
	n.calls = append(n.calls, notifyCall{action, id, name})
}
