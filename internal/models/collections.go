package models

const (
	CollBuildingEmployees    = "buildingemployees"
	CollAccessLogs           = "accesslogs"
	CollBuildingServices     = "buildingservices"
	CollCompanies            = "companies"
	CollCompanyEmployees     = "companyemployees"
	CollCompanyServiceUsages = "companyserviceusages"
)
