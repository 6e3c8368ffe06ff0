package report

import (
	"context"
	"slices"

	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/store"
)

// RentPerArea é o aluguel por unidade de área locada.
const RentPerArea = 1000

type CompanyCost struct {
	CompanyID        models.CompanyID `json:"company_id"`
	CompanyName      string           `json:"company_name"`
	TotalCost        float64          `json:"total_cost"`
	Rent             float64          `json:"rent"`
	TotalServiceCost float64          `json:"total_service_cost"`
}

// TotalCompanyCosts soma aluguel e uso de serviços de cada empresa, do maior
// custo para o menor. Empates mantêm a ordem do banco.
func (e *Engine) TotalCompanyCosts(ctx context.Context) ([]CompanyCost, error) {
	companies, err := store.FindAll[models.Company](ctx, e.src, models.CollCompanies, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]models.CompanyID, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}
	usages, err := store.FindAll[models.CompanyServiceUsage](ctx, e.src, models.CollCompanyServiceUsages,
		store.Filter{"company_id": store.In(ids...)})
	if err != nil {
		return nil, err
	}

	joined := store.LeftJoin(companies, usages,
		store.Key(func(c models.Company) models.CompanyID { return c.ID }),
		func(u models.CompanyServiceUsage) models.CompanyID { return u.CompanyID })

	out := make([]CompanyCost, 0, len(joined))
	for _, j := range joined {
		rent := j.Parent.RentalArea * RentPerArea
		services := store.Sum(j.Children, func(u models.CompanyServiceUsage) float64 { return u.TotalAmount })
		out = append(out, CompanyCost{
			CompanyID:        j.Parent.ID,
			CompanyName:      j.Parent.CompanyName,
			TotalCost:        rent + services,
			Rent:             rent,
			TotalServiceCost: services,
		})
	}

	slices.SortStableFunc(out, func(a, b CompanyCost) int {
		switch {
		case a.TotalCost > b.TotalCost:
			return -1
		case a.TotalCost < b.TotalCost:
			return 1
		}
		return 0
	})
	return out, nil
}
