package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/store"
)

func newMemory(t *testing.T) *store.MemorySource {
	t.Helper()
	return store.NewMemorySource()
}

func insert(t *testing.T, src *store.MemorySource, coll string, docs ...any) {
	t.Helper()
	require.NoError(t, src.Insert(coll, docs...))
}

func employee(name string, rate float64, services ...models.ServiceID) models.BuildingEmployee {
	return models.BuildingEmployee{
		ID:                 models.NewID[models.BuildingEmployee](),
		EmployeeCode:       "NV-" + name,
		FullName:           name,
		Phone:              "09" + name,
		Position:           "Kỹ thuật",
		ServicesSupervised: services,
		SalaryRate:         rate,
	}
}

func service(code string) models.BuildingService {
	return models.BuildingService{ID: models.NewID[models.BuildingService](), ServiceCode: code, ServiceName: code}
}

func usage(company models.CompanyID, svc models.ServiceID, start time.Time, amount float64) models.CompanyServiceUsage {
	return models.CompanyServiceUsage{
		ID:          models.NewID[models.CompanyServiceUsage](),
		CompanyID:   company,
		ServiceID:   svc,
		StartDate:   start,
		TotalAmount: amount,
	}
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// failingSource simula o banco fora do ar.
type failingSource struct{ err error }

func (f failingSource) Find(context.Context, string, store.Filter) ([]bson.Raw, error) {
	return nil, f.err
}

var errStoreDown = errors.New("store down")
