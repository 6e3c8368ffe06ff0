package handlers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/models"
)

// somente os campos do contrato; o _id é gerado no servidor
type EmployeeCreateDTO struct {
	EmployeeCode       string             `json:"employee_code"`
	FullName           string             `json:"full_name"`
	Birthdate          time.Time          `json:"birthdate"`
	Address            string             `json:"address"`
	Phone              string             `json:"phone"`
	Level              int                `json:"level"`
	Position           string             `json:"position"`
	ServicesSupervised []models.ServiceID `json:"services_supervised"`
	SalaryRate         float64            `json:"salary_rate"`
}

// PUT substitui o documento inteiro, mesmo contrato do create.
type EmployeePutDTO = EmployeeCreateDTO

// Update parcial; ponteiros distinguem "omitido" de "informado".
type EmployeePatchDTO struct {
	EmployeeCode       *string             `json:"employee_code,omitempty"`
	FullName           *string             `json:"full_name,omitempty"`
	Birthdate          *time.Time          `json:"birthdate,omitempty"`
	Address            *string             `json:"address,omitempty"`
	Phone              *string             `json:"phone,omitempty"`
	Level              *int                `json:"level,omitempty"`
	Position           *string             `json:"position,omitempty"`
	ServicesSupervised *[]models.ServiceID `json:"services_supervised,omitempty"`
	SalaryRate         *float64            `json:"salary_rate,omitempty"`
}

func (d EmployeeCreateDTO) model() models.BuildingEmployee {
	services := d.ServicesSupervised
	if services == nil {
		services = []models.ServiceID{}
	}
	return models.BuildingEmployee{
		EmployeeCode:       d.EmployeeCode,
		FullName:           d.FullName,
		Birthdate:          d.Birthdate,
		Address:            d.Address,
		Phone:              d.Phone,
		Level:              d.Level,
		Position:           d.Position,
		ServicesSupervised: services,
		SalaryRate:         d.SalaryRate,
	}
}

// fields monta o $set com os campos presentes, usando os nomes bson.
func (d EmployeePatchDTO) fields() bson.M {
	f := bson.M{}
	if d.EmployeeCode != nil {
		f["employee_code"] = *d.EmployeeCode
	}
	if d.FullName != nil {
		f["full_name"] = *d.FullName
	}
	if d.Birthdate != nil {
		f["birthdate"] = *d.Birthdate
	}
	if d.Address != nil {
		f["address"] = *d.Address
	}
	if d.Phone != nil {
		f["phone"] = *d.Phone
	}
	if d.Level != nil {
		f["level"] = *d.Level
	}
	if d.Position != nil {
		f["position"] = *d.Position
	}
	if d.ServicesSupervised != nil {
		f["services_supervised"] = *d.ServicesSupervised
	}
	if d.SalaryRate != nil {
		f["salary_rate"] = *d.SalaryRate
	}
	return f
}
