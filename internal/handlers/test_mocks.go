package handlers

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/models"
)

type repoMock struct {
	GetAllFn  func(ctx context.Context, limit, skip int64) ([]models.BuildingEmployee, error)
	CreateFn  func(ctx context.Context, e *models.BuildingEmployee) (models.EmployeeID, error)
	GetByIDFn func(ctx context.Context, id models.EmployeeID) (*models.BuildingEmployee, error)
	UpdateFn  func(ctx context.Context, id models.EmployeeID, fields bson.M) (*models.BuildingEmployee, error)
	ReplaceFn func(ctx context.Context, id models.EmployeeID, doc *models.BuildingEmployee) error
	DeleteFn  func(ctx context.Context, id models.EmployeeID) error
}

func (m *repoMock) GetAll(ctx context.Context, limit, skip int64) ([]models.BuildingEmployee, error) {
	if m.GetAllFn == nil {
		return nil, errors.New("GetAllFn not set")
	}
	return m.GetAllFn(ctx, limit, skip)
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
func (m *repoMock) Replace(ctx context.Context, id models.EmployeeID, doc *models.BuildingEmployee) error {
	if m.ReplaceFn == nil {
		return errors.New("ReplaceFn not set")
	}
	return m.ReplaceFn(ctx, id, doc)
}
func (m *repoMock) Delete(ctx context.Context, id models.EmployeeID) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}

type notifyCall struct{ action, id, name string }

type notifierMock struct{ calls []notifyCall }

func (n *notifierMock) Notify(_ context.Context, action, id, name string) {
	n.calls = append(n.calls, notifyCall{action, id, name})
}

type engineMock struct {
	RunFn func(ctx context.Context, name string, day time.Time) (any, error)
	loc   *time.Location
}

func (m *engineMock) Run(ctx context.Context, name string, day time.Time) (any, error) {
	if m.RunFn == nil {
		return nil, errors.New("RunFn not set")
	}
	return m.RunFn(ctx, name, day)
}

func (m *engineMock) Location() *time.Location {
	if m.loc == nil {
		return time.UTC
	}
	return m.loc
}
