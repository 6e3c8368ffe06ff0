package models

import "time"

type OfficeAddress struct {
	Floor      int    `bson:"floor" json:"floor"`
	RoomNumber string `bson:"room_number" json:"room_number"`
}

// CompanySubscription é o serviço contratado, embutido no documento da empresa.
type CompanySubscription struct {
	ServiceID ServiceID `bson:"service_id" json:"service_id"`
	StartDate time.Time `bson:"start_date" json:"start_date"`
	UnitPrice float64   `bson:"unit_price" json:"unit_price"`
}

type Company struct {
	ID             CompanyID             `bson:"_id,omitempty" json:"id"`
	CompanyName    string                `bson:"company_name" json:"company_name"`
	TaxCode        string                `bson:"tax_code" json:"tax_code"`
	Capital        float64               `bson:"capital" json:"capital"`
	BusinessField  string                `bson:"business_field" json:"business_field"`
	EmployeesCount int                   `bson:"employees_count" json:"employees_count"`
	OfficeAddress  OfficeAddress         `bson:"office_address" json:"office_address"`
	Phone          string                `bson:"phone" json:"phone"`
	RentalArea     float64               `bson:"rental_area" json:"rental_area"`
	Services       []CompanySubscription `bson:"services" json:"services"`
}

type CompanyEmployee struct {
	ID           CompanyEmployeeID `bson:"_id,omitempty" json:"id"`
	CompanyID    CompanyID         `bson:"company_id" json:"company_id"`
	EmployeeCode string            `bson:"employee_code" json:"employee_code"`
	IdentityCard string            `bson:"identity_card" json:"identity_card"`
	FullName     string            `bson:"full_name" json:"full_name"`
	Birthdate    time.Time         `bson:"birthdate" json:"birthdate"`
	Phone        string            `bson:"phone" json:"phone"`
}

// CompanyServiceUsage liga Company e BuildingService a um período de cobrança.
// TotalAmount já vem calculado; os relatórios apenas somam.
type CompanyServiceUsage struct {
	ID               UsageID   `bson:"_id,omitempty" json:"id"`
	CompanyID        CompanyID `bson:"company_id" json:"company_id"`
	ServiceID        ServiceID `bson:"service_id" json:"service_id"`
	StartDate        time.Time `bson:"start_date" json:"start_date"`
	UnitPrice        float64   `bson:"unit_price" json:"unit_price"`
	TotalAmount      float64   `bson:"total_amount" json:"total_amount"`
	UsageDays        int       `bson:"usage_days" json:"usage_days"`
	TotalDaysInMonth int       `bson:"total_days_in_month" json:"total_days_in_month"`
}
