package repository

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Werneck0live/office-admin/internal/models"
)

type (
	EmployeeRepository            = Collection[models.BuildingEmployee, *models.BuildingEmployee]
	AccessLogRepository           = Collection[models.AccessLog, *models.AccessLog]
	ServiceRepository             = Collection[models.BuildingService, *models.BuildingService]
	CompanyRepository             = Collection[models.Company, *models.Company]
	CompanyEmployeeRepository     = Collection[models.CompanyEmployee, *models.CompanyEmployee]
	CompanyServiceUsageRepository = Collection[models.CompanyServiceUsage, *models.CompanyServiceUsage]
)

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return newCollection[models.BuildingEmployee, *models.BuildingEmployee](db, models.CollBuildingEmployees)
}

func NewAccessLogRepository(db *mongo.Database) *AccessLogRepository {
	return newCollection[models.AccessLog, *models.AccessLog](db, models.CollAccessLogs)
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return newCollection[models.BuildingService, *models.BuildingService](db, models.CollBuildingServices)
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return newCollection[models.Company, *models.Company](db, models.CollCompanies)
}

func NewCompanyEmployeeRepository(db *mongo.Database) *CompanyEmployeeRepository {
	return newCollection[models.CompanyEmployee, *models.CompanyEmployee](db, models.CollCompanyEmployees)
}

func NewCompanyServiceUsageRepository(db *mongo.Database) *CompanyServiceUsageRepository {
	return newCollection[models.CompanyServiceUsage, *models.CompanyServiceUsage](db, models.CollCompanyServiceUsages)
}

// Repositories agrupa os seis repositórios sobre o mesmo banco.
type Repositories struct {
	Employees        *EmployeeRepository
	AccessLogs       *AccessLogRepository
	Services         *ServiceRepository
	Companies        *CompanyRepository
	CompanyEmployees *CompanyEmployeeRepository
	Usages           *CompanyServiceUsageRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Employees:        NewEmployeeRepository(db),
		AccessLogs:       NewAccessLogRepository(db),
		Services:         NewServiceRepository(db),
		Companies:        NewCompanyRepository(db),
		CompanyEmployees: NewCompanyEmployeeRepository(db),
		Usages:           NewCompanyServiceUsageRepository(db),
	}
}
