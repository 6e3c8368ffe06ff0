package report

import (
	"cmp"
	"context"
	"slices"

	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/store"
)

// UnknownMonth é a chave dos grupos sem uso faturado (ou sem data de início).
// Ordena antes de qualquer mês real.
const UnknownMonth = ""

const monthLayout = "2006-01"

type MonthlyRevenue struct {
	EmployeeID   models.EmployeeID `json:"employee_id"`
	FullName     string            `json:"full_name"`
	Phone        string            `json:"phone"`
	Position     string            `json:"position"`
	Month        string            `json:"month"`
	TotalRevenue float64           `json:"total_revenue"`
}

type MonthlySalary struct {
	EmployeeID models.EmployeeID `json:"employee_id"`
	FullName   string            `json:"full_name"`
	Phone      string            `json:"phone"`
	Position   string            `json:"position"`
	Month      string            `json:"month"`
	SalaryRate float64           `json:"salary_rate"`
	Salary     float64           `json:"salary"`
}

// supervision é uma linha (funcionário, serviço supervisionado, uso).
// Service e Usage são nil quando a junção não casou nada.
type supervision = store.Pair[store.Pair[models.BuildingEmployee, models.BuildingService], models.CompanyServiceUsage]

type monthKey struct {
	employee models.EmployeeID
	month    string
}

type monthGroup struct {
	employeeID   models.EmployeeID
	fullName     string
	phone        string
	position     string
	salaryRate   float64
	month        string
	totalRevenue float64
}

// MonthlyRevenueByEmployee soma o total_amount dos usos dos serviços que cada
// funcionário supervisiona, por mês de início do uso.
func (e *Engine) MonthlyRevenueByEmployee(ctx context.Context) ([]MonthlyRevenue, error) {
	groups, err := e.monthlyGroups(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MonthlyRevenue, 0, len(groups))
	for _, g := range groups {
		out = append(out, MonthlyRevenue{
			EmployeeID:   g.employeeID,
			FullName:     g.fullName,
			Phone:        g.phone,
			Position:     g.position,
			Month:        g.month,
			TotalRevenue: g.totalRevenue,
		})
	}
	slices.SortStableFunc(out, func(a, b MonthlyRevenue) int {
		return byMonthThenName(a.Month, a.FullName, b.Month, b.FullName)
	})
	return out, nil
}

// EmployeesWithMonthlySalary usa os mesmos grupos da receita mensal e
// projeta salary = total_revenue * salary_rate.
func (e *Engine) EmployeesWithMonthlySalary(ctx context.Context) ([]MonthlySalary, error) {
	groups, err := e.monthlyGroups(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MonthlySalary, 0, len(groups))
	for _, g := range groups {
		out = append(out, MonthlySalary{
			EmployeeID: g.employeeID,
			FullName:   g.fullName,
			Phone:      g.phone,
			Position:   g.position,
			Month:      g.month,
			SalaryRate: g.salaryRate,
			Salary:     g.totalRevenue * g.salaryRate,
		})
	}
	slices.SortStableFunc(out, func(a, b MonthlySalary) int {
		return byMonthThenName(a.Month, a.FullName, b.Month, b.FullName)
	})
	return out, nil
}

func byMonthThenName(monthA, nameA, monthB, nameB string) int {
	if c := cmp.Compare(monthA, monthB); c != 0 {
		return c
	}
	return cmp.Compare(nameA, nameB)
}

func (e *Engine) monthlyGroups(ctx context.Context) ([]monthGroup, error) {
	employees, err := store.FindAll[models.BuildingEmployee](ctx, e.src, models.CollBuildingEmployees, nil)
	if err != nil {
		return nil, err
	}

	var serviceIDs []models.ServiceID
	for _, emp := range employees {
		serviceIDs = append(serviceIDs, emp.ServicesSupervised...)
	}
	services, err := store.FindAll[models.BuildingService](ctx, e.src, models.CollBuildingServices,
		store.Filter{"_id": store.In(serviceIDs...)})
	if err != nil {
		return nil, err
	}

	foundIDs := make([]models.ServiceID, 0, len(services))
	for _, s := range services {
		foundIDs = append(foundIDs, s.ID)
	}
	usages, err := store.FindAll[models.CompanyServiceUsage](ctx, e.src, models.CollCompanyServiceUsages,
		store.Filter{"service_id": store.In(foundIDs...)})
	if err != nil {
		return nil, err
	}

	supervised := store.Unwind(store.LeftJoin(employees, services,
		func(emp models.BuildingEmployee) []models.ServiceID { return emp.ServicesSupervised },
		func(s models.BuildingService) models.ServiceID { return s.ID }))

	rows := store.Unwind(store.LeftJoin(supervised, usages,
		store.Key(func(p store.Pair[models.BuildingEmployee, models.BuildingService]) models.ServiceID {
			if p.Child == nil {
				return models.ServiceID{}
			}
			return p.Child.ID
		}),
		func(u models.CompanyServiceUsage) models.ServiceID { return u.ServiceID }))

	employee := func(r supervision) models.BuildingEmployee { return r.Parent.Parent }

	return store.GroupBy(rows,
		func(r supervision) monthKey {
			return monthKey{employee: r.Parent.Parent.ID, month: usageMonth(r.Child)}
		},
		func(k monthKey, rs []supervision) monthGroup {
			return monthGroup{
				employeeID:   k.employee,
				month:        k.month,
				fullName:     store.First(rs, func(r supervision) string { return employee(r).FullName }),
				phone:        store.First(rs, func(r supervision) string { return employee(r).Phone }),
				position:     store.First(rs, func(r supervision) string { return employee(r).Position }),
				salaryRate:   store.First(rs, func(r supervision) float64 { return employee(r).SalaryRate }),
				totalRevenue: store.Sum(rs, usageAmount),
			}
		}), nil
}

// usageMonth formata o mês em UTC, como o $dateToString do Mongo.
func usageMonth(u *models.CompanyServiceUsage) string {
	if u == nil || u.StartDate.IsZero() {
		return UnknownMonth
	}
	return u.StartDate.UTC().Format(monthLayout)
}

func usageAmount(r supervision) float64 {
	if r.Child == nil {
		return 0
	}
	return r.Child.TotalAmount
}
