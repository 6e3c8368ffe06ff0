package models

import "time"

type BuildingEmployee struct {
	ID                 EmployeeID  `bson:"_id,omitempty" json:"id"`
	EmployeeCode       string      `bson:"employee_code" json:"employee_code"`
	FullName           string      `bson:"full_name" json:"full_name"`
	Birthdate          time.Time   `bson:"birthdate" json:"birthdate"`
	Address            string      `bson:"address" json:"address"`
	Phone              string      `bson:"phone" json:"phone"`
	Level              int         `bson:"level" json:"level"`
	Position           string      `bson:"position" json:"position"`
	ServicesSupervised []ServiceID `bson:"services_supervised" json:"services_supervised"`
	SalaryRate         float64     `bson:"salary_rate" json:"salary_rate"` // multiplicador (0..1), não é valor monetário
}

type AccessLog struct {
	ID         AccessLogID `bson:"_id,omitempty" json:"id"`
	EmployeeID EmployeeID  `bson:"employee_id" json:"employee_id"`
	EntryTime  time.Time   `bson:"entry_time" json:"entry_time"`
	ExitTime   time.Time   `bson:"exit_time" json:"exit_time"`
	Location   string      `bson:"location" json:"location"`
}

type BuildingService struct {
	ID                ServiceID `bson:"_id,omitempty" json:"id"`
	ServiceCode       string    `bson:"service_code" json:"service_code"`
	ServiceName       string    `bson:"service_name" json:"service_name"`
	ServiceType       string    `bson:"service_type" json:"service_type"`
	BasePrice         float64   `bson:"base_price" json:"base_price"`
	PriceIncreaseRate float64   `bson:"price_increase_rate" json:"price_increase_rate"`
}
