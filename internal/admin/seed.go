package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/repository"
)

// SeedBuilding carrega os dados de exemplo do prédio. Idempotente pelos
// códigos naturais: o que já existe é reaproveitado; usos e logs só são
// inseridos para empresas e funcionários criados nesta execução.
func SeedBuilding(ctx context.Context, repos *repository.Repositories, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("cmp", "admin.seed")
	f, err := parseSeed(buildingJSON)
	if err != nil {
		return err
	}
	s := &seeder{repos: repos, log: log,
		services:  map[string]models.ServiceID{},
		companies: map[string]seeded[models.Company]{},
		employees: map[string]seeded[models.BuildingEmployee]{},
	}

	steps := []func(context.Context, *seedFile) error{
		s.seedServices, s.seedCompanies, s.seedCompanyEmployees,
		s.seedEmployees, s.seedUsages, s.seedAccessLogs,
	}
	for _, step := range steps {
		if err := step(ctx, f); err != nil {
			return err
		}
	}
	log.Info("seed_building_done",
		"services", len(f.Services), "companies", len(f.Companies), "employees", len(f.Employees))
	return nil
}

type seeded[T any] struct {
	id      models.ID[T]
	created bool
}

type seeder struct {
	repos     *repository.Repositories
	log       *slog.Logger
	services  map[string]models.ServiceID
	companies map[string]seeded[models.Company]
	employees map[string]seeded[models.BuildingEmployee]
}

// timeout curto por item pra não travar
func itemCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 3*time.Second)
}

func (s *seeder) seedServices(ctx context.Context, f *seedFile) error {
	for _, item := range f.Services {
		ictx, cancel := itemCtx(ctx)
		id, _, err := findOrCreate(ictx, s.repos.Services, bson.M{"service_code": item.ServiceCode}, &models.BuildingService{
			ServiceCode:       item.ServiceCode,
			ServiceName:       item.ServiceName,
			ServiceType:       item.ServiceType,
			BasePrice:         item.BasePrice,
			PriceIncreaseRate: item.PriceIncreaseRate,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("seed service %s: %w", item.ServiceCode, err)
		}
		s.services[item.Key] = id
		s.log.Debug("seed_service", "code", item.ServiceCode, "id", id.Hex())
	}
	return nil
}

func (s *seeder) seedCompanies(ctx context.Context, f *seedFile) error {
	for _, item := range f.Companies {
		subs := make([]models.CompanySubscription, 0, len(item.Services))
		for _, sub := range item.Services {
			subs = append(subs, models.CompanySubscription{
				ServiceID: s.services[sub.Service],
				StartDate: sub.StartDate.Time,
				UnitPrice: sub.UnitPrice,
			})
		}
		ictx, cancel := itemCtx(ctx)
		id, created, err := findOrCreate(ictx, s.repos.Companies, bson.M{"tax_code": item.TaxCode}, &models.Company{
			CompanyName:    item.CompanyName,
			TaxCode:        item.TaxCode,
			Capital:        item.Capital,
			BusinessField:  item.BusinessField,
			EmployeesCount: item.EmployeesCount,
			OfficeAddress:  item.OfficeAddress,
			Phone:          item.Phone,
			RentalArea:     item.RentalArea,
			Services:       subs,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("seed company %s: %w", item.TaxCode, err)
		}
		if !created {
			s.log.Info("seed_company_exists", "tax_code", item.TaxCode)
		}
		s.companies[item.Key] = seeded[models.Company]{id: id, created: created}
	}
	return nil
}

func (s *seeder) seedCompanyEmployees(ctx context.Context, f *seedFile) error {
	for _, item := range f.CompanyEmployees {
		company := s.companies[item.Company]
		ictx, cancel := itemCtx(ctx)
		_, _, err := findOrCreate(ictx, s.repos.CompanyEmployees,
			bson.M{"company_id": company.id, "employee_code": item.EmployeeCode},
			&models.CompanyEmployee{
				CompanyID:    company.id,
				EmployeeCode: item.EmployeeCode,
				IdentityCard: item.IdentityCard,
				FullName:     item.FullName,
				Birthdate:    item.Birthdate.Time,
				Phone:        item.Phone,
			})
		cancel()
		if err != nil {
			return fmt.Errorf("seed company employee %s: %w", item.EmployeeCode, err)
		}
	}
	return nil
}

func (s *seeder) seedEmployees(ctx context.Context, f *seedFile) error {
	for _, item := range f.Employees {
		supervised := make([]models.ServiceID, 0, len(item.Services))
		for _, key := range item.Services {
			supervised = append(supervised, s.services[key])
		}
		ictx, cancel := itemCtx(ctx)
		id, created, err := findOrCreate(ictx, s.repos.Employees, bson.M{"employee_code": item.EmployeeCode}, &models.BuildingEmployee{
			EmployeeCode:       item.EmployeeCode,
			FullName:           item.FullName,
			Birthdate:          item.Birthdate.Time,
			Address:            item.Address,
			Phone:              item.Phone,
			Level:              item.Level,
			Position:           item.Position,
			ServicesSupervised: supervised,
			SalaryRate:         item.SalaryRate,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", item.EmployeeCode, err)
		}
		if !created {
			s.log.Info("seed_employee_exists", "employee_code", item.EmployeeCode)
		}
		s.employees[item.EmployeeCode] = seeded[models.BuildingEmployee]{id: id, created: created}
	}
	return nil
}

func (s *seeder) seedUsages(ctx context.Context, f *seedFile) error {
	for _, item := range f.Usages {
		company := s.companies[item.Company]
		if !company.created {
			continue
		}
		ictx, cancel := itemCtx(ctx)
		_, err := s.repos.Usages.Create(ictx, &models.CompanyServiceUsage{
			CompanyID:        company.id,
			ServiceID:        s.services[item.Service],
			StartDate:        item.StartDate.Time,
			UnitPrice:        item.UnitPrice,
			TotalAmount:      usageTotal(item.UnitPrice, item.UsageDays, item.TotalDaysInMonth),
			UsageDays:        item.UsageDays,
			TotalDaysInMonth: item.TotalDaysInMonth,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("seed usage %s/%s: %w", item.Company, item.Service, err)
		}
	}
	return nil
}

func (s *seeder) seedAccessLogs(ctx context.Context, f *seedFile) error {
	for _, item := range f.AccessLogs {
		emp := s.employees[item.Employee]
		if !emp.created {
			continue
		}
		ictx, cancel := itemCtx(ctx)
		_, err := s.repos.AccessLogs.Create(ictx, &models.AccessLog{
			EmployeeID: emp.id,
			EntryTime:  item.EntryTime.Time,
			ExitTime:   item.ExitTime.Time,
			Location:   item.Location,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("seed access log %s: %w", item.Employee, err)
		}
	}
	return nil
}

type seedRepo[T any] interface {
	FindOne(ctx context.Context, filter bson.M) (*T, error)
	Create(ctx context.Context, doc *T) (models.ID[T], error)
}

// findOrCreate devolve o id existente para filter ou cria doc.
func findOrCreate[T any, PT interface {
	*T
	EntityID() models.ID[T]
}](ctx context.Context, repo seedRepo[T], filter bson.M, doc PT) (models.ID[T], bool, error) {
	existing, err := repo.FindOne(ctx, filter)
	if err == nil {
		return PT(existing).EntityID(), false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return models.ID[T]{}, false, err
	}
	id, err := repo.Create(ctx, doc)
	if err != nil {
		return models.ID[T]{}, false, err
	}
	return id, true, nil
}
