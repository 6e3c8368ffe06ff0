// Package report calcula os relatórios fixos do prédio: custo total por
// empresa, entradas do dia por funcionário e receita/salário mensal por
// funcionário. Toda leitura passa por store.Source; o resto é puro.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Werneck0live/office-admin/internal/store"
)

var ErrUnknownReport = errors.New("unknown report")

// Nomes usados pela task de relatório e pela API.
const (
	NameCompanyCosts   = "costs"
	NameDailyEntries   = "daily"
	NameMonthlyRevenue = "revenue"
	NameMonthlySalary  = "salary"
)

type Engine struct {
	src store.Source
	loc *time.Location
}

// NewEngine usa loc para os limites do dia; nil significa horário local.
func NewEngine(src store.Source, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{src: src, loc: loc}
}

func (e *Engine) Location() *time.Location { return e.loc }

// Run executa um relatório pelo nome. day só é usado pelo relatório diário.
func (e *Engine) Run(ctx context.Context, name string, day time.Time) (any, error) {
	switch name {
	case NameCompanyCosts:
		return e.TotalCompanyCosts(ctx)
	case NameDailyEntries:
		return e.DailyEntries(ctx, day)
	case NameMonthlyRevenue:
		return e.MonthlyRevenueByEmployee(ctx)
	case NameMonthlySalary:
		return e.EmployeesWithMonthlySalary(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, name)
	}
}
