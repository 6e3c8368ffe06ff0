package cli

import (
	"context"
	"fmt"

	"github.com/Werneck0live/office-admin/internal/presenter"
	"github.com/Werneck0live/office-admin/internal/report"
)

func (m *Menu) totalCompanyCosts(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	rows, err := m.Reports.TotalCompanyCosts(ctx)
	if err != nil {
		return fmt.Errorf("total company costs: %w", err)
	}
	return presenter.WriteText(m.out, rows, m.Location)
}

func (m *Menu) dailyEntries(ctx context.Context, rawDate string) error {
	day, err := report.ParseDay(rawDate, m.Location)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid date, expected YYYY-MM-DD.")
		return nil
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	rows, err := m.Reports.DailyEntries(ctx, day)
	if err != nil {
		return fmt.Errorf("daily entries: %w", err)
	}
	fmt.Fprintf(m.out, "Daily entries for %s\n", day.Format(report.DayLayout))
	return presenter.WriteText(m.out, rows, m.Location)
}

func (m *Menu) monthlyRevenue(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	rows, err := m.Reports.MonthlyRevenueByEmployee(ctx)
	if err != nil {
		return fmt.Errorf("monthly revenue: %w", err)
	}
	return presenter.WriteText(m.out, rows, m.Location)
}

func (m *Menu) monthlySalary(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	rows, err := m.Reports.EmployeesWithMonthlySalary(ctx)
	if err != nil {
		return fmt.Errorf("monthly salary: %w", err)
	}
	return presenter.WriteText(m.out, rows, m.Location)
}
